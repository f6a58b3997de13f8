// Package guard provides argument guards and emptiness predicates shared
// across the SDK.
//
// Guards return an *ArgumentError naming the offending parameter so that
// contract violations surface to the immediate caller; they never log and
// never recover. Predicates are pure and side-effect-free, with one caveat:
// testing a lazy sequence for emptiness consumes its first element.
package guard
