package convert

import (
	"fmt"
	"reflect"
	"sync"
)

// ConverterFunc renders a single value as its string form.
type ConverterFunc func(value any) (string, error)

// Registry manages the collection of per-type string converters.
// It provides thread-safe registration and lookup keyed by concrete type.
type Registry struct {
	mu         sync.RWMutex
	converters map[reflect.Type]ConverterFunc
}

// NewRegistry creates a new converter registry.
func NewRegistry() *Registry {
	return &Registry{
		converters: make(map[reflect.Type]ConverterFunc),
	}
}

// Register adds a converter for the given concrete type, replacing any
// previous registration. It returns an error if t or fn is nil.
func (r *Registry) Register(t reflect.Type, fn ConverterFunc) error {
	if t == nil {
		return fmt.Errorf("converter type cannot be nil")
	}
	if fn == nil {
		return fmt.Errorf("converter for %s cannot be nil", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.converters[t] = fn
	return nil
}

// Lookup returns the converter registered for t, if any.
func (r *Registry) Lookup(t reflect.Type) (ConverterFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.converters[t]
	return fn, ok
}

// Count returns the number of registered converters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.converters)
}

// RegisterFor registers a typed converter with r, deriving the key from T.
func RegisterFor[T any](r *Registry, fn func(T) (string, error)) error {
	if fn == nil {
		return fmt.Errorf("converter cannot be nil")
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	return r.Register(t, func(value any) (string, error) {
		typed, ok := value.(T)
		if !ok {
			return "", fmt.Errorf("converter for %s received %T", t, value)
		}
		return fn(typed)
	})
}

// defaultRegistry backs the package-level Register and ToString functions.
var defaultRegistry = NewRegistry()

// Register adds a converter to the package-level registry.
func Register(t reflect.Type, fn ConverterFunc) error {
	return defaultRegistry.Register(t, fn)
}

// Default returns the package-level registry.
func Default() *Registry {
	return defaultRegistry
}
