// Package codemodel describes generated type declarations as ordered
// collections of member descriptors.
//
// A TypeDecl holds the members of one generated type: fields, properties,
// methods, and nested types, in declaration order. The generator assembles
// declarations through the builder helpers and later locates members again
// with the by-name searches. Member order is significant and duplicate names
// are permitted; every search returns the first match in declaration order.
package codemodel
