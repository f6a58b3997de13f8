// Package convert renders arbitrary runtime values as strings through a
// registry of per-type converters.
//
// The registry plays the role of a platform-wide type-descriptor facility:
// callers register a converter for a concrete type once, and every ToString
// call on a value of that type goes through it. Types without a registered
// converter fall back to fmt.Stringer, then strconv formatting for the
// primitive kinds, then fmt's default rendering.
//
// The package also provides NonNullableType, which strips optional (pointer)
// wrapping from a reflect.Type.
package convert
