package codemodel

import "github.com/clientgen/go-sdk/pkg/guard"

// FindMember returns the first member with the given name regardless of
// kind, or nil when no member matches. It fails with a guard.ArgumentError
// when members is nil or name is empty. Duplicate names are allowed; the
// earliest match in declaration order wins.
func FindMember(members []*Member, name string) (*Member, error) {
	return find(members, name, nil)
}

// FindField returns the first field with the given name, or nil when no
// field matches. Same contract as FindMember otherwise.
func FindField(members []*Member, name string) (*Member, error) {
	kind := KindField
	return find(members, name, &kind)
}

// FindProperty returns the first property with the given name, or nil when
// no property matches. Same contract as FindMember otherwise.
func FindProperty(members []*Member, name string) (*Member, error) {
	kind := KindProperty
	return find(members, name, &kind)
}

// FindType returns the first nested type with the given name, or nil when
// no nested type matches. Same contract as FindMember otherwise.
func FindType(members []*Member, name string) (*Member, error) {
	kind := KindType
	return find(members, name, &kind)
}

// FindMember returns the first member of the declaration with the given
// name regardless of kind. A declaration always has a (possibly empty)
// member collection, so only an empty name fails.
func (d *TypeDecl) FindMember(name string) (*Member, error) {
	return find(d.members(), name, nil)
}

// FindField returns the first field of the declaration with the given name.
func (d *TypeDecl) FindField(name string) (*Member, error) {
	kind := KindField
	return find(d.members(), name, &kind)
}

// FindProperty returns the first property of the declaration with the given
// name.
func (d *TypeDecl) FindProperty(name string) (*Member, error) {
	kind := KindProperty
	return find(d.members(), name, &kind)
}

// FindType returns the first nested type of the declaration with the given
// name.
func (d *TypeDecl) FindType(name string) (*Member, error) {
	kind := KindType
	return find(d.members(), name, &kind)
}

// members never returns nil: a fresh declaration owns an empty collection,
// not an absent one.
func (d *TypeDecl) members() []*Member {
	if d.Members == nil {
		return []*Member{}
	}
	return d.Members
}

// find scans members in order for the first name match, filtered to kind
// when one is given. A nil members slice is an absent collection and fails;
// an empty one is a valid collection with no match.
func find(members []*Member, name string, kind *MemberKind) (*Member, error) {
	if members == nil {
		return nil, guard.NewArgumentError("members", "must not be nil")
	}
	if err := guard.NotEmpty(name, "name"); err != nil {
		return nil, err
	}

	for _, m := range members {
		if m == nil || m.Name != name {
			continue
		}
		if kind == nil || m.Kind == *kind {
			return m, nil
		}
	}
	return nil, nil
}
