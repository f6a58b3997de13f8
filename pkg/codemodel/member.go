package codemodel

import "github.com/clientgen/go-sdk/pkg/enums"

// MemberKind classifies a member descriptor.
type MemberKind int

const (
	// KindField is a stored field declaration
	KindField MemberKind = iota

	// KindProperty is an accessor-backed value declaration
	KindProperty

	// KindMethod is a method declaration
	KindMethod

	// KindType is a nested type declaration
	KindType
)

func init() {
	enums.MustRegister(KindField, "field")
	enums.MustRegister(KindProperty, "property")
	enums.MustRegister(KindMethod, "method")
	enums.MustRegister(KindType, "type")
}

// String returns the declared string value for the kind.
func (k MemberKind) String() string {
	s, err := enums.StringValue(k)
	if err != nil {
		return "unknown"
	}
	return s
}

// ParseMemberKind recovers a MemberKind from its declared string value.
func ParseMemberKind(s string) (MemberKind, bool) {
	return enums.Parse[MemberKind](s)
}

// Member describes one declaration within a generated type.
type Member struct {
	// Name is the declared identifier
	Name string

	// Kind classifies the declaration
	Kind MemberKind

	// Type is the rendered type of the member; empty for nested types
	Type string

	// Doc is the doc comment emitted above the declaration, if any
	Doc string

	// Annotations carry auxiliary metadata attached by the generator
	Annotations []any
}

// TypeDecl is an ordered collection of member descriptors making up one
// generated type.
type TypeDecl struct {
	// Name is the declared type identifier
	Name string

	// Doc is the doc comment emitted above the type, if any
	Doc string

	// Members holds the declarations in order
	Members []*Member
}

// NewTypeDecl creates an empty type declaration.
func NewTypeDecl(name string) *TypeDecl {
	return &TypeDecl{Name: name}
}

// AddField appends a field declaration and returns it for further setup.
func (d *TypeDecl) AddField(name, typ string) *Member {
	return d.add(&Member{Name: name, Kind: KindField, Type: typ})
}

// AddProperty appends a property declaration and returns it.
func (d *TypeDecl) AddProperty(name, typ string) *Member {
	return d.add(&Member{Name: name, Kind: KindProperty, Type: typ})
}

// AddMethod appends a method declaration and returns it.
func (d *TypeDecl) AddMethod(name, signature string) *Member {
	return d.add(&Member{Name: name, Kind: KindMethod, Type: signature})
}

// AddNested appends a nested type declaration and returns it.
func (d *TypeDecl) AddNested(name string) *Member {
	return d.add(&Member{Name: name, Kind: KindType})
}

func (d *TypeDecl) add(m *Member) *Member {
	d.Members = append(d.Members, m)
	return m
}

// Annotate attaches an annotation to the member and returns the member so
// builder calls chain.
func (m *Member) Annotate(annotation any) *Member {
	m.Annotations = append(m.Annotations, annotation)
	return m
}
