package convert

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/clientgen/go-sdk/pkg/guard"
)

// ToString renders value as a string using r's converters. A nil value —
// including a typed nil behind the interface — returns nil: absence
// propagates rather than rendering as text. Values of unregistered types
// fall back to fmt.Stringer, then strconv formatting for primitive kinds,
// then fmt's default rendering.
func (r *Registry) ToString(value any) (*string, error) {
	if guard.IsNil(value) {
		return nil, nil
	}

	if fn, ok := r.Lookup(reflect.TypeOf(value)); ok {
		s, err := fn(value)
		if err != nil {
			return nil, fmt.Errorf("converting %T: %w", value, err)
		}
		return &s, nil
	}

	s := fallbackString(value)
	return &s, nil
}

// ToString renders value through the package-level registry.
func ToString(value any) (*string, error) {
	return defaultRegistry.ToString(value)
}

// fallbackString renders a value with no registered converter.
func fallbackString(value any) string {
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}

// NonNullableType strips optional (pointer) wrapping from t. Non-pointer
// types are returned unchanged and a nil type stays nil. All pointer levels
// are removed, so the function is idempotent on its own output.
func NonNullableType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
