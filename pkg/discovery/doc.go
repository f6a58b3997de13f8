// Package discovery loads service description documents.
//
// A description is a JSON object publishing a service's identity, features,
// schemas, and resources. Documents are immutable once loaded; local
// customizations are expressed as RFC 6902 patches applied with
// ApplyOverrides, which produces a new document and leaves the original
// untouched.
package discovery
