// Package maputil provides safe lookups over caller-owned maps.
//
// The helpers here never mutate their inputs. ReadOnly is the one function
// that retains a reference: the view it returns shares storage with the
// source map, so caller mutations of the source stay visible through the
// view. Concurrent mutation of the source while reading through the view is
// the caller's problem, exactly as it would be for the map itself.
package maputil
