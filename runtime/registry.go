package runtime

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"sort"
	"sync"
)

// Registry is the single source of truth for who is connected.
// It maps a display name to the sink of the session owning it.
type Registry struct {
	mu    sync.RWMutex
	sinks map[string]contract.LineSink
}

func NewRegistry() *Registry {
	return &Registry{sinks: make(map[string]contract.LineSink)}
}

// Register inserts name if nobody holds it yet.
// The check and the insert share one critical section, so two concurrent
// handshakes for the same name cannot both succeed.
func (r *Registry) Register(name string, sink contract.LineSink) error {
	if sink == nil {
		panic("registry: nil sink registered for " + name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.sinks[name]; taken {
		return errors.ErrNameTaken
	}
	r.sinks[name] = sink
	return nil
}

// Remove is idempotent: removing an absent name is a no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sinks, name)
}

// SnapshotNames returns a sorted point-in-time copy of the registered names.
func (r *Registry) SnapshotNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sinks))
	for name := range r.sinks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Lookup(name string) (contract.LineSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sinks[name]
	return sink, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sinks)
}
