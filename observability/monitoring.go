//go:generate go run go.uber.org/mock/mockgen -source=monitoring.go -destination=../mocks/mock_observer.go -package=mocks
package observability

import "log/slog"

// LoadOutcome tells how a store obtained its initial state.
type LoadOutcome string

const (
	LoadAbsent    LoadOutcome = "absent"
	LoadRestored  LoadOutcome = "restored"
	LoadMalformed LoadOutcome = "malformed"
	// LoadFailed means the backend could not be read; the prior record may
	// still be intact.
	LoadFailed LoadOutcome = "failed"
)

// Observer receives the failures the chat core swallows on purpose so they
// can still be seen from outside. Implementations must not call back into
// the store that reported the event.
type Observer interface {
	StateLoaded(namespace string, outcome LoadOutcome)
	PersistenceFailed(namespace string, err error)
	NotificationSuppressed(namespace string, depth int)
	NamespacesChanged(count int)
}

type NoopObserver struct{}

func (NoopObserver) StateLoaded(string, LoadOutcome)    {}
func (NoopObserver) PersistenceFailed(string, error)    {}
func (NoopObserver) NotificationSuppressed(string, int) {}
func (NoopObserver) NamespacesChanged(int)              {}

// LogObserver reports every event through slog.
type LogObserver struct {
	log *slog.Logger
}

func NewLogObserver(log *slog.Logger) LogObserver {
	return LogObserver{log: log}
}

func (l LogObserver) StateLoaded(namespace string, outcome LoadOutcome) {
	l.log.Debug("Chat state loaded", "namespace", namespace, "outcome", outcome)
}

func (l LogObserver) PersistenceFailed(namespace string, err error) {
	l.log.Error("Chat state not persisted", "namespace", namespace, "error", err)
}

func (l LogObserver) NotificationSuppressed(namespace string, depth int) {
	l.log.Warn("Nested notification suppressed", "namespace", namespace, "depth", depth)
}

func (l LogObserver) NamespacesChanged(count int) {
	l.log.Debug("Namespaces registered", "count", count)
}

// MultiObserver fans every event out to each observer in order.
type MultiObserver []Observer

func (m MultiObserver) StateLoaded(namespace string, outcome LoadOutcome) {
	for _, o := range m {
		o.StateLoaded(namespace, outcome)
	}
}

func (m MultiObserver) PersistenceFailed(namespace string, err error) {
	for _, o := range m {
		o.PersistenceFailed(namespace, err)
	}
}

func (m MultiObserver) NotificationSuppressed(namespace string, depth int) {
	for _, o := range m {
		o.NotificationSuppressed(namespace, depth)
	}
}

func (m MultiObserver) NamespacesChanged(count int) {
	for _, o := range m {
		o.NamespacesChanged(count)
	}
}
