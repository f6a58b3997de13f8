// Package enums maps enum constants to their declared string values.
//
// Constants declare a wire string by registering it, usually from an init
// function next to the constant declarations:
//
//	const FormatJSON Format = iota
//
//	func init() {
//		enums.MustRegister(FormatJSON, "json")
//	}
//
// StringValue then returns the declared string for a constant, and Parse
// recovers the constant from its string. A constant with no registration is
// a contract violation, reported as a guard.ArgumentError.
package enums
