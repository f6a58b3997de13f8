package generator

import (
	"sort"
	"strings"

	"github.com/clientgen/go-sdk/pkg/codemodel"
	"github.com/clientgen/go-sdk/pkg/discovery"
	"github.com/clientgen/go-sdk/pkg/maputil"
)

// wireTag records the wire-format name a generated field marshals under.
type wireTag struct {
	Name string
}

// methodID records the fully qualified wire identifier of a resource
// method.
type methodID struct {
	ID string
}

// buildDecls assembles the member declarations for one service: a struct
// per schema, a resource struct per resource, and a root service struct
// tying the resources together. Output order is deterministic.
func buildDecls(doc *discovery.Document) []*codemodel.TypeDecl {
	var decls []*codemodel.TypeDecl
	decls = append(decls, schemaDecls(doc)...)
	resources, root := resourceDecls(doc)
	decls = append(decls, resources...)
	if root != nil {
		decls = append(decls, root)
	}
	return decls
}

// schemaDecls builds one struct declaration per schema definition.
func schemaDecls(doc *discovery.Document) []*codemodel.TypeDecl {
	schemas := doc.Schemas()

	names := schemas.Keys()
	sort.Strings(names)

	decls := make([]*codemodel.TypeDecl, 0, len(names))
	for _, name := range names {
		schema, _ := schemas.Value(name).(map[string]any)
		decl := codemodel.NewTypeDecl(exportName(name))
		decl.Doc = docLine(schema)

		props, _ := maputil.ValueOrZero(schema, "properties").(map[string]any)
		propNames := make([]string, 0, len(props))
		for propName := range props {
			propNames = append(propNames, propName)
		}
		sort.Strings(propNames)

		for _, propName := range propNames {
			prop, _ := props[propName].(map[string]any)
			if prop == nil {
				prop = map[string]any{}
			}
			exported := exportName(propName)
			// Distinct wire names can normalize to the same identifier;
			// the first declaration wins, matching the search contract.
			if existing, _ := decl.FindField(exported); existing != nil {
				continue
			}
			field := decl.AddField(exported, goType(prop))
			field.Doc = docLine(prop)
			field.Annotate(wireTag{Name: propName})
		}
		decls = append(decls, decl)
	}
	return decls
}

// resourceDecls builds a struct per resource carrying its method
// identifiers, plus the root service struct referencing each resource.
func resourceDecls(doc *discovery.Document) ([]*codemodel.TypeDecl, *codemodel.TypeDecl) {
	resources := doc.Resources()
	if resources.Len() == 0 {
		return nil, nil
	}

	names := resources.Keys()
	sort.Strings(names)

	service := codemodel.NewTypeDecl(exportName(doc.Name()) + "Service")
	service.Doc = "provides access to the " + doc.Name() + " service resources."

	decls := make([]*codemodel.TypeDecl, 0, len(names))
	for _, name := range names {
		resource, _ := resources.Value(name).(map[string]any)
		decl := codemodel.NewTypeDecl(exportName(name) + "Resource")
		decl.Doc = "wraps the " + name + " resource of the " + doc.Name() + " service."

		methods, _ := maputil.ValueOrZero(resource, "methods").(map[string]any)
		methodNames := make([]string, 0, len(methods))
		for methodName := range methods {
			methodNames = append(methodNames, methodName)
		}
		sort.Strings(methodNames)

		for _, methodName := range methodNames {
			method, _ := methods[methodName].(map[string]any)
			id, _ := maputil.ValueOrZero(method, "id").(string)
			if id == "" {
				id = doc.Name() + "." + name + "." + methodName
			}
			decl.AddMethod(exportName(methodName), "").Annotate(methodID{ID: id})
		}

		decls = append(decls, decl)
		service.AddField(exportName(name), "*"+decl.Name).
			Annotate(wireTag{Name: name})
	}
	return decls, service
}

// docLine extracts a description as a single comment-safe line.
func docLine(obj map[string]any) string {
	desc, _ := maputil.ValueOrZero(obj, "description").(string)
	return strings.Join(strings.Fields(desc), " ")
}
