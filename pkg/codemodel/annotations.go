package codemodel

// AnnotationOf returns the first annotation of type T attached to the
// member, or the zero value and false when none is attached. Only the
// member's own annotations are searched; there is no inheritance walk. A
// nil member has no annotations.
func AnnotationOf[T any](m *Member) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	for _, a := range m.Annotations {
		if typed, ok := a.(T); ok {
			return typed, true
		}
	}
	return zero, false
}
