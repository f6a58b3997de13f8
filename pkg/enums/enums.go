package enums

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/clientgen/go-sdk/pkg/guard"
)

// Registry holds declared string values for enum constants.
// Registration is keyed by the constant itself (type and value), so two enum
// types sharing an underlying representation never collide.
type Registry struct {
	mu     sync.RWMutex
	values map[any]string
	names  map[reflect.Type]map[string]any
}

// NewRegistry creates a new string-value registry.
func NewRegistry() *Registry {
	return &Registry{
		values: make(map[any]string),
		names:  make(map[reflect.Type]map[string]any),
	}
}

// Register declares the string value for an enum constant. Registering the
// same constant twice replaces the earlier string but keeps the first
// reverse mapping for the old string intact only if the new string differs.
func (r *Registry) Register(value any, s string) error {
	if err := guard.NotNil(value, "value"); err != nil {
		return err
	}
	t := reflect.TypeOf(value)
	if !t.Comparable() {
		return fmt.Errorf("enum type %s is not comparable", t)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.values[value]; ok && old != s {
		delete(r.names[t], old)
	}
	r.values[value] = s
	if r.names[t] == nil {
		r.names[t] = make(map[string]any)
	}
	r.names[t][s] = value
	return nil
}

// StringValue returns the declared string for an enum constant. A nil or
// unregistered constant fails with a guard.ArgumentError for parameter
// "value".
func (r *Registry) StringValue(value any) (string, error) {
	if err := guard.NotNil(value, "value"); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.values[value]
	if !ok {
		return "", guard.NewArgumentError("value",
			fmt.Sprintf("%s has no declared string value", describe(value)))
	}
	return s, nil
}

// describe renders a constant for error messages without invoking its
// fmt.Stringer. Enum String methods commonly delegate to StringValue, so
// formatting the value with %v here would recurse through the failing
// lookup.
func describe(value any) string {
	rv := reflect.ValueOf(value)
	var raw string
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		raw = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		raw = strconv.FormatUint(rv.Uint(), 10)
	case reflect.String:
		raw = strconv.Quote(rv.String())
	case reflect.Bool:
		raw = strconv.FormatBool(rv.Bool())
	default:
		raw = "<" + rv.Kind().String() + ">"
	}
	return rv.Type().String() + "(" + raw + ")"
}

// lookupName returns the constant of type t declared with string s.
func (r *Registry) lookupName(t reflect.Type, s string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.names[t][s]
	return v, ok
}

// ParseIn recovers the E constant declared with string s in reg.
func ParseIn[E comparable](reg *Registry, s string) (E, bool) {
	var zero E
	v, ok := reg.lookupName(reflect.TypeOf(zero), s)
	if !ok {
		return zero, false
	}
	return v.(E), true
}

// defaultRegistry backs the package-level functions.
var defaultRegistry = NewRegistry()

// Register declares a string value in the package-level registry.
func Register(value any, s string) error {
	return defaultRegistry.Register(value, s)
}

// MustRegister is Register for init-time use; it panics on error.
func MustRegister(value any, s string) {
	if err := defaultRegistry.Register(value, s); err != nil {
		panic(err)
	}
}

// StringValue returns the declared string from the package-level registry.
func StringValue(value any) (string, error) {
	return defaultRegistry.StringValue(value)
}

// Parse recovers the E constant declared with string s in the package-level
// registry.
func Parse[E comparable](s string) (E, bool) {
	return ParseIn[E](defaultRegistry, s)
}
