package runtime

import (
	"log/slog"
	"slices"
	"supachat/domain"
	"supachat/observability"
	"supachat/store"
	"sync"

	"github.com/samber/lo"
)

// StoreFactory builds the store for a namespace the registry has not seen yet.
type StoreFactory func(key string) *store.ChatStore

// Registry hands out exactly one ChatStore per namespace key. Every widget
// addressing the same key shares the instance for as long as the registry
// holds it. Stores are built outside the registry lock, so a namespace whose
// backend is slow to load never holds up the others.
type Registry struct {
	mu       sync.RWMutex
	stores   map[string]*entry
	factory  StoreFactory
	log      *slog.Logger
	observer observability.Observer
}

// entry is published before its store is built; ready closes once store is
// set, or left nil when the factory panicked.
type entry struct {
	ready chan struct{}
	store *store.ChatStore
}

func NewRegistry(log *slog.Logger, factory StoreFactory, observer observability.Observer) *Registry {
	if observer == nil {
		observer = observability.NoopObserver{}
	}
	return &Registry{
		stores:   make(map[string]*entry),
		factory:  factory,
		log:      log,
		observer: observer,
	}
}

// NewPersistentRegistry builds stores persisting through adapter. A nil
// adapter yields memory-only stores.
func NewPersistentRegistry(log *slog.Logger, adapter store.PersistenceAdapter[domain.ChatState],
	observer observability.Observer, opts ...store.Option) *Registry {
	storeOpts := append([]store.Option{store.WithLogger(log), store.WithObserver(observer)}, opts...)
	return NewRegistry(log, func(key string) *store.ChatStore {
		return store.NewChatStore(key, adapter, storeOpts...)
	}, observer)
}

// GetOrCreate returns the store registered under key, creating it on first use.
// Two goroutines racing on a new key observe the same instance.
func (r *Registry) GetOrCreate(key string) *store.ChatStore {
	for {
		r.mu.RLock()
		e, ok := r.stores[key]
		r.mu.RUnlock()
		if !ok {
			r.mu.Lock()
			if e, ok = r.stores[key]; !ok {
				e = &entry{ready: make(chan struct{})}
				r.stores[key] = e
				r.mu.Unlock()
				return r.build(key, e)
			}
			r.mu.Unlock()
		}
		<-e.ready
		if e.store != nil {
			return e.store
		}
	}
}

// build runs the factory for a freshly published entry. A panicking factory
// unpublishes the entry so the next caller retries.
func (r *Registry) build(key string, e *entry) *store.ChatStore {
	defer close(e.ready)
	defer func() {
		if e.store != nil {
			return
		}
		r.mu.Lock()
		if r.stores[key] == e {
			delete(r.stores, key)
		}
		r.mu.Unlock()
	}()

	e.store = r.factory(key)
	r.log.Debug("Chat store registered", "namespace", key, "persistent", e.store.Persistent())
	r.observer.NamespacesChanged(r.Len())
	return e.store
}

// Lookup returns the store registered under key, waiting for it when it is
// still being built.
func (r *Registry) Lookup(key string) (*store.ChatStore, bool) {
	r.mu.RLock()
	e, ok := r.stores[key]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	<-e.ready
	return e.store, e.store != nil
}

// Keys returns the registered namespaces, sorted.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	keys := lo.Keys(r.stores)
	r.mu.RUnlock()
	slices.Sort(keys)
	return keys
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}

// Clear forgets every store. Stores already handed out keep working but are no
// longer shared with later callers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stores = make(map[string]*entry)
	r.observer.NamespacesChanged(0)
}
