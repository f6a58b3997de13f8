package guard

import "reflect"

// NotNil fails with an *ArgumentError when value is nil. It sees through
// interfaces: a typed-nil pointer, map, slice, channel, or function stored in
// an interface still counts as nil.
func NotNil(value any, name string) error {
	if IsNil(value) {
		return NewArgumentError(name, "must not be nil")
	}
	return nil
}

// NotEmpty fails with an *ArgumentError when s has zero length.
func NotEmpty(s string, name string) error {
	if s == "" {
		return NewArgumentError(name, "must not be empty")
	}
	return nil
}

// NotEmptySlice fails with an *ArgumentError when items is nil or has no
// elements.
func NotEmptySlice[E any](items []E, name string) error {
	if len(items) == 0 {
		return NewArgumentError(name, "must contain at least one element")
	}
	return nil
}

// NotEmptyMap fails with an *ArgumentError when m is nil or has no entries.
func NotEmptyMap[K comparable, V any](m map[K]V, name string) error {
	if len(m) == 0 {
		return NewArgumentError(name, "must contain at least one entry")
	}
	return nil
}

// IsNil reports whether value is nil, including typed nils behind an
// interface. It is the nil test all absence checks in the SDK share.
func IsNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
