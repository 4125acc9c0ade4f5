// Package session drives the lifecycle of the session identifier kept in a
// chat store: generated on first mount, restored across reloads, cleared on
// demand.
package session

import (
	"fmt"
	"log/slog"
	"supachat/domain"
	"supachat/errors"
	"supachat/store"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type State string

const (
	NoSession       State = "no_session"
	NewSession      State = "new_session"
	RestoredSession State = "restored_session"
)

// Generator returns a fresh session identifier.
type Generator func() (string, error)

// NewSessionID returns a random (version 4) UUID read from crypto/rand.
func NewSessionID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type Option func(*Manager)

func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

func WithGenerator(generate Generator) Option {
	return func(m *Manager) {
		if generate != nil {
			m.generate = generate
		}
	}
}

// WithAutoReconcile makes the manager reconcile again whenever any writer
// leaves the store without a usable session id.
func WithAutoReconcile() Option {
	return func(m *Manager) {
		m.autoReconcile = true
	}
}

// Manager reconciles the session id of one chat store. It only references the
// store: several managers may share one.
type Manager struct {
	store         *store.ChatStore
	log           *slog.Logger
	generate      Generator
	autoReconcile bool

	mu          sync.Mutex
	state       State
	unsubscribe func()
}

// NewManager attaches a manager to chatStore and runs the first reconciliation.
func NewManager(chatStore *store.ChatStore, opts ...Option) (*Manager, error) {
	m := Attach(chatStore, opts...)
	if err := m.RestoreSession(); err != nil {
		m.Close()
		return nil, err
	}
	return m, nil
}

// Attach binds a manager to chatStore without reconciling, leaving the store
// untouched. Its state is NoSession until RestoreSession or ClearSession runs.
func Attach(chatStore *store.ChatStore, opts ...Option) *Manager {
	m := &Manager{
		store:    chatStore,
		log:      slog.Default(),
		generate: NewSessionID,
		state:    NoSession,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With("namespace", chatStore.Key())
	if m.autoReconcile && chatStore.Persistent() {
		m.unsubscribe = chatStore.Subscribe(m.onChange)
	}
	return m
}

// RestoreSession keeps a present, non-empty session id and otherwise stores a
// newly generated one. It is a no-op on a store without persistence.
func (m *Manager) RestoreSession() error {
	if !m.store.Persistent() {
		m.log.Debug("No persistence backend, session left untouched")
		return nil
	}
	id, created, err := m.store.EnsureSessionID(m.generate)
	if err != nil {
		err = fmt.Errorf("%w: %w", errors.ErrSessionIDGeneration, err)
		m.log.Error("Cannot create session", "error", err)
		return err
	}
	if created {
		m.setState(NewSession)
		m.log.Info("New session created", "session_id", id)
		return nil
	}
	m.setState(RestoredSession)
	m.log.Debug("Session restored", "session_id", id)
	return nil
}

// ClearSession sets the session id to the empty sentinel so the next
// RestoreSession generates a fresh one. It is a no-op on a store without
// persistence.
func (m *Manager) ClearSession() {
	if !m.store.Persistent() {
		m.log.Debug("No persistence backend, session left untouched")
		return
	}
	m.setState(NewSession)
	m.store.SetSessionID(lo.ToPtr(""))
	m.log.Info("Session cleared")
}

// SessionID returns the id held by the store; see store.ChatStore.SessionID.
func (m *Manager) SessionID() (string, bool) {
	return m.store.SessionID()
}

func (m *Manager) IsNewSession() bool {
	return m.State() == NewSession
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Close detaches the auto reconciliation listener, if any.
func (m *Manager) Close() {
	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

func (m *Manager) setState(state State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}

func (m *Manager) onChange(change store.Change[domain.ChatState]) {
	if change.State.HasSession() {
		return
	}
	if err := m.RestoreSession(); err != nil {
		m.log.Warn("Automatic session reconciliation failed", "version", change.Version, "error", err)
	}
}
