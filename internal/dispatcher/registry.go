package dispatcher

import (
	"fmt"
	"slices"
	"sync"

	"github.com/dshills/motion/internal/command"
	"github.com/dshills/motion/internal/dispatcher/handler"
)

// Registry maps command kinds to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[command.Kind]handler.Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[command.Kind]handler.Handler),
	}
}

// Register sets the handler for k, replacing any previous one. Only kinds in
// the closed command set can be registered.
func (r *Registry) Register(k command.Kind, h handler.Handler) error {
	if !k.IsValid() {
		return fmt.Errorf("%w: %q", command.ErrUnknownCommand, k)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[k] = h
	return nil
}

// Get returns the handler for k, or nil.
func (r *Registry) Get(k command.Kind) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.handlers[k]
}

// Has returns true if a handler is registered for k.
func (r *Registry) Has(k command.Kind) bool {
	return r.Get(k) != nil
}

// List returns the registered kinds in name order.
func (r *Registry) List() []command.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]command.Kind, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Missing returns the kinds of the closed command set with no handler.
func (r *Registry) Missing() []command.Kind {
	var out []command.Kind
	for _, k := range command.Kinds {
		if !r.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// Count returns the number of registered kinds.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
