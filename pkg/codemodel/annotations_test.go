package codemodel_test

import (
	"testing"

	"github.com/clientgen/go-sdk/pkg/codemodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wireName struct {
	Name string
}

type deprecation struct {
	Replacement string
}

func TestAnnotationOf(t *testing.T) {
	decl := codemodel.NewTypeDecl("Video")
	m := decl.AddField("etag", "string").
		Annotate(wireName{Name: "etag"}).
		Annotate(wireName{Name: "shadowed"}).
		Annotate(deprecation{Replacement: "fingerprint"})

	wn, ok := codemodel.AnnotationOf[wireName](m)
	require.True(t, ok)
	// First attached annotation of the requested type wins.
	assert.Equal(t, "etag", wn.Name)

	dep, ok := codemodel.AnnotationOf[deprecation](m)
	require.True(t, ok)
	assert.Equal(t, "fingerprint", dep.Replacement)
}

func TestAnnotationOf_Absent(t *testing.T) {
	m := codemodel.NewTypeDecl("Video").AddField("etag", "string")

	_, ok := codemodel.AnnotationOf[wireName](m)
	assert.False(t, ok)

	_, ok = codemodel.AnnotationOf[wireName](nil)
	assert.False(t, ok)
}
