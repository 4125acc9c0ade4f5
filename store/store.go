package store

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"slices"
	"supachat/errors"
	"supachat/observability"
	"sync"
	"sync/atomic"
)

// Cloner is satisfied by state types able to deep copy themselves.
type Cloner[S any] interface {
	Clone() S
}

// PersistenceAdapter is the load/save capability a store persists through.
// Load returns ok=false when nothing was stored for the key. An error wrapping
// errors.ErrMalformedState means the prior record is unusable; any other error
// means it could not be read.
type PersistenceAdapter[S any] interface {
	Load(key string) (S, bool, error)
	Save(key string, state S) error
}

// Change is delivered to listeners after every mutation. State is shared by
// every listener of the same change and must be treated as read-only.
type Change[S any] struct {
	Key     string
	Version uint64
	State   S
}

type Listener[S any] func(Change[S])

type subscription[S any] struct {
	fn     Listener[S]
	since  uint64
	active atomic.Bool
}

type queued[S any] struct {
	change     Change[S]
	generation int
}

// Store is a reactive, persisted container for one state value.
//
// Mutations are serialized and stamped with an increasing version. A committed
// state is saved through the adapter, queued, and delivered to every
// subscriber in version order. Only one goroutine delivers at a time, so
// listeners never run concurrently. A mutator returns once its own change has
// been delivered, whichever goroutine delivered it.
//
// Listeners may mutate the store they listen to. Such a nested change is
// queued behind the one being delivered, tagged one generation deeper, and
// the nested mutator returns without waiting. Once the generation reaches the
// max notify depth the change is still applied and saved but not delivered,
// and the drop is reported. Listeners must not wait on other goroutines
// writing to the same store.
//
// When the adapter cannot be read at construction, the store starts from
// defaults but saves nothing: every mutation first retries the load, and
// saving resumes once a load succeeds.
type Store[S Cloner[S]] struct {
	key      string
	defaults func() S
	adapter  PersistenceAdapter[S]
	log      *slog.Logger
	observer observability.Observer
	maxDepth int

	mu         sync.RWMutex
	state      S
	version    uint64
	loadFailed bool

	persistMu    sync.Mutex
	savedVersion uint64

	subMu sync.Mutex
	subs  []*subscription[S]

	queueMu   sync.Mutex
	drained   *sync.Cond
	queue     []queued[S]
	draining  bool
	drainer   uint64
	current   int
	enqueued  uint64
	delivered uint64
}

// New builds a store for key, seeded from the adapter when it holds a usable
// record and from defaults otherwise. A nil adapter gives a memory-only store.
func New[S Cloner[S]](key string, defaults func() S, adapter PersistenceAdapter[S], opts ...Option) *Store[S] {
	o := newOptions(opts)
	s := &Store[S]{
		key:      key,
		defaults: defaults,
		adapter:  adapter,
		log:      o.log.With("namespace", key),
		observer: o.observer,
		maxDepth: o.maxDepth,
	}
	s.drained = sync.NewCond(&s.queueMu)
	if adapter == nil {
		s.state = defaults()
		return s
	}
	s.state, s.loadFailed = s.load()
	return s
}

// load reads the prior record. failed is true when the backend could not be
// read, as opposed to holding nothing usable.
func (s *Store[S]) load() (state S, failed bool) {
	prior, ok, err := s.adapter.Load(s.key)
	switch {
	case err != nil && stderrors.Is(err, errors.ErrMalformedState):
		s.log.Warn("Discarding persisted state, starting from defaults", "error", err)
		s.observer.StateLoaded(s.key, observability.LoadMalformed)
		return s.defaults(), false
	case err != nil:
		s.log.Error("Persisted state unreadable, saving suspended", "error", err)
		s.observer.StateLoaded(s.key, observability.LoadFailed)
		return s.defaults(), true
	case !ok:
		s.observer.StateLoaded(s.key, observability.LoadAbsent)
		return s.defaults(), false
	default:
		s.observer.StateLoaded(s.key, observability.LoadRestored)
		return prior, false
	}
}

func (s *Store[S]) Key() string {
	return s.key
}

// Persistent reports whether the store has a durable backend behind it.
func (s *Store[S]) Persistent() bool {
	return s.adapter != nil
}

// Get returns a copy of the current state.
func (s *Store[S]) Get() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

func (s *Store[S]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// view runs fn against the live state under the read lock. fn must not retain
// or modify anything it reads.
func (s *Store[S]) view(fn func(state *S)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Update replaces the state with fn(current). fn runs under the store lock and
// must not call back into the store.
func (s *Store[S]) Update(fn func(S) S) {
	s.UpdateIf(func(state S) (S, bool) {
		return fn(state), true
	})
}

// UpdateIf is Update for conditional writes: when fn reports false nothing is
// committed, saved or notified. It returns whether a change was committed.
func (s *Store[S]) UpdateIf(fn func(S) (S, bool)) bool {
	s.mu.Lock()
	if s.loadFailed {
		s.state, s.loadFailed = s.load()
	}
	next, changed := fn(s.state)
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.state = next
	s.version++
	change := Change[S]{Key: s.key, Version: s.version, State: next.Clone()}
	durable := !s.loadFailed
	nested := s.enqueue(change)
	s.mu.Unlock()

	if durable {
		s.persist(change)
	} else {
		s.skipPersist(change)
	}
	if !nested {
		s.dispatch(change.Version)
	}
	return true
}

// Reset restores the defaults the store was built with.
func (s *Store[S]) Reset() {
	s.Update(func(S) S {
		return s.defaults()
	})
}

// persist saves change unless a newer version already reached the adapter.
// Failures are reported, never returned: memory stays authoritative.
func (s *Store[S]) persist(change Change[S]) {
	if s.adapter == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if change.Version <= s.savedVersion {
		return
	}
	if err := s.adapter.Save(s.key, change.State); err != nil {
		err = fmt.Errorf("%w: %w", errors.ErrPersistenceWrite, err)
		s.log.Error("Chat state save failed, keeping in-memory state", "version", change.Version, "error", err)
		s.observer.PersistenceFailed(s.key, err)
		return
	}
	s.savedVersion = change.Version
}

// skipPersist reports a change kept in memory only because the prior record
// could not be read; saving it would overwrite that record.
func (s *Store[S]) skipPersist(change Change[S]) {
	err := fmt.Errorf("%w: %w", errors.ErrPersistenceWrite, errors.ErrBackendRead)
	s.log.Warn("Chat state not saved, prior record still unreadable", "version", change.Version)
	s.observer.PersistenceFailed(s.key, err)
}

// enqueue runs under the state lock so the queue stays in version order. It
// reports whether the change was made by a listener of this store, on the
// delivering goroutine.
func (s *Store[S]) enqueue(change Change[S]) (nested bool) {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()
	s.enqueued = change.Version
	generation := 0
	if s.draining && s.drainer == goroutineID() {
		nested = true
		generation = s.current + 1
	}
	if generation >= s.maxDepth {
		s.log.Warn("Notification dropped", "version", change.Version, "depth", generation+1,
			"error", errors.ErrNotifyDepthExceeded)
		s.observer.NotificationSuppressed(s.key, generation+1)
		return nested
	}
	s.queue = append(s.queue, queued[S]{change: change, generation: generation})
	return nested
}

// dispatch returns once version has been delivered. The calling goroutine
// drains the queue itself unless another one already does, in which case it
// waits for that one.
func (s *Store[S]) dispatch(version uint64) {
	s.queueMu.Lock()
	for s.draining && s.delivered < version {
		s.drained.Wait()
	}
	if s.delivered >= version {
		s.queueMu.Unlock()
		return
	}
	s.draining = true
	s.drainer = goroutineID()
	s.queueMu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			s.queueMu.Lock()
			s.queue = nil
			s.delivered = s.enqueued
			s.draining = false
			s.drainer = 0
			s.drained.Broadcast()
			s.queueMu.Unlock()
			panic(r)
		}
	}()

	for {
		s.queueMu.Lock()
		if len(s.queue) == 0 {
			s.delivered = s.enqueued
			s.draining = false
			s.drainer = 0
			s.drained.Broadcast()
			s.queueMu.Unlock()
			return
		}
		next := s.queue[0]
		s.queue = s.queue[1:]
		s.current = next.generation
		s.queueMu.Unlock()

		s.subMu.Lock()
		subs := s.subs
		s.subMu.Unlock()
		for _, sub := range subs {
			if sub.active.Load() && next.change.Version > sub.since {
				sub.fn(next.change)
			}
		}

		s.queueMu.Lock()
		s.delivered = next.change.Version
		s.drained.Broadcast()
		s.queueMu.Unlock()
	}
}

// Subscribe registers fn for every future change, in registration order.
// The returned function removes the subscription; it is safe to call more
// than once and from within fn.
func (s *Store[S]) Subscribe(fn Listener[S]) (unsubscribe func()) {
	sub := &subscription[S]{fn: fn, since: s.Version()}
	sub.active.Store(true)

	s.subMu.Lock()
	s.subs = append(slices.Clip(s.subs), sub)
	s.subMu.Unlock()

	return func() {
		if !sub.active.CompareAndSwap(true, false) {
			return
		}
		s.subMu.Lock()
		defer s.subMu.Unlock()
		s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(candidate *subscription[S]) bool {
			return candidate == sub
		})
	}
}

// Subscribers returns how many listeners are registered.
func (s *Store[S]) Subscribers() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.subs)
}
