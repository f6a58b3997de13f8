package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientgen/go-sdk/pkg/codemodel"
	"github.com/clientgen/go-sdk/pkg/discovery"
)

func TestBuildDecls(t *testing.T) {
	doc, err := discovery.Load([]byte(`{
		"name": "shelf",
		"schemas": {
			"Item": {
				"properties": {
					"name": {"type": "string", "description": "Display  name\nof the item."},
					"count": {"type": "integer"}
				}
			}
		},
		"resources": {
			"items": {"methods": {"list": {}}}
		}
	}`))
	require.NoError(t, err)

	decls := buildDecls(doc)
	require.Len(t, decls, 3)

	item := decls[0]
	assert.Equal(t, "Item", item.Name)
	require.Len(t, item.Members, 2)
	// Properties are emitted in sorted order.
	assert.Equal(t, "Count", item.Members[0].Name)
	assert.Equal(t, "int64", item.Members[0].Type)
	assert.Equal(t, "Name", item.Members[1].Name)
	assert.Equal(t, "Display name of the item.", item.Members[1].Doc)

	tag, ok := codemodel.AnnotationOf[wireTag](item.Members[1])
	require.True(t, ok)
	assert.Equal(t, "name", tag.Name)

	resource := decls[1]
	assert.Equal(t, "ItemsResource", resource.Name)
	require.Len(t, resource.Members, 1)
	assert.Equal(t, codemodel.KindMethod, resource.Members[0].Kind)
	id, ok := codemodel.AnnotationOf[methodID](resource.Members[0])
	require.True(t, ok)
	// Methods without an explicit id get the conventional one.
	assert.Equal(t, "shelf.items.list", id.ID)

	service := decls[2]
	assert.Equal(t, "ShelfService", service.Name)
	field, err := codemodel.FindField(service.Members, "Items")
	require.NoError(t, err)
	require.NotNil(t, field)
	assert.Equal(t, "*ItemsResource", field.Type)
}

func TestBuildDecls_NormalizedNameCollision(t *testing.T) {
	doc, err := discovery.Load([]byte(`{
		"name": "shelf",
		"schemas": {
			"Item": {
				"properties": {
					"max-results": {"type": "integer"},
					"maxResults": {"type": "string"}
				}
			}
		}
	}`))
	require.NoError(t, err)

	decls := buildDecls(doc)
	require.Len(t, decls, 1)
	// Both wire names normalize to MaxResults; the first sorted property
	// wins and the second is dropped instead of redeclared.
	require.Len(t, decls[0].Members, 1)
	assert.Equal(t, "MaxResults", decls[0].Members[0].Name)
	assert.Equal(t, "int64", decls[0].Members[0].Type)

	tag, ok := codemodel.AnnotationOf[wireTag](decls[0].Members[0])
	require.True(t, ok)
	assert.Equal(t, "max-results", tag.Name)
}

func TestBuildDecls_NoResources(t *testing.T) {
	doc, err := discovery.Load([]byte(`{"name": "bare", "schemas": {"Only": {}}}`))
	require.NoError(t, err)

	decls := buildDecls(doc)
	require.Len(t, decls, 1)
	assert.Equal(t, "Only", decls[0].Name)
	assert.Empty(t, decls[0].Members)
}
