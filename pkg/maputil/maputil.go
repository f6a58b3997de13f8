package maputil

import (
	"reflect"

	"github.com/clientgen/go-sdk/pkg/convert"
	"github.com/clientgen/go-sdk/pkg/guard"
)

// ValueOrZero returns the value stored under key, or the zero value of V
// when the key is missing. A nil map behaves as an empty one; the function
// never fails.
func ValueOrZero[K comparable, V any](m map[K]V, key K) V {
	return m[key]
}

// StringListOrEmpty returns the string form of each element of the
// slice-like value stored under key. Nil elements stay nil so absence
// survives the conversion. A missing key, a nil value, or a value that is
// not slice-like all yield an empty list. The only failure is a nil map,
// reported as a guard.ArgumentError.
func StringListOrEmpty(m map[string]any, key string) ([]*string, error) {
	if err := guard.NotNil(m, "m"); err != nil {
		return nil, err
	}

	value, ok := m[key]
	if !ok || value == nil {
		return []*string{}, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return []*string{}, nil
	}

	out := make([]*string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		s, err := convert.ToString(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
