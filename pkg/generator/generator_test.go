package generator_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clientgen/go-sdk/pkg/generator"
	"github.com/clientgen/go-sdk/pkg/guard"
)

const booksDescription = `{
	"name": "books",
	"version": "v1",
	"title": "Books API",
	"schemas": {
		"Volume": {
			"description": "A single published volume.",
			"properties": {
				"id": {"type": "string"},
				"pageCount": {"type": "integer"},
				"authors": {"type": "array", "items": {"type": "string"}},
				"bookshelf": {"$ref": "Bookshelf"}
			}
		},
		"Bookshelf": {"type": "object"}
	},
	"resources": {
		"volumes": {
			"methods": {
				"list": {"id": "books.volumes.list"},
				"get": {"id": "books.volumes.get"}
			}
		}
	}
}`

const booksOverrides = `[
	{"op": "replace", "path": "/schemas/Volume/properties/id/type", "value": "integer"}
]`

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// writeBooksFixture lays out a description, an override patch, and a run
// config in a temp dir and returns the config.
func writeBooksFixture(t *testing.T, withOverrides bool) *generator.Config {
	t.Helper()
	dir := t.TempDir()

	descPath := filepath.Join(dir, "books.json")
	require.NoError(t, os.WriteFile(descPath, []byte(booksDescription), 0o644))

	svc := generator.ServiceConfig{Description: descPath}
	if withOverrides {
		patchPath := filepath.Join(dir, "books-overrides.json")
		require.NoError(t, os.WriteFile(patchPath, []byte(booksOverrides), 0o644))
		svc.Overrides = patchPath
	}

	return &generator.Config{
		Output:   filepath.Join(dir, "gen"),
		Header:   "Source: books fixture",
		Services: []generator.ServiceConfig{svc},
	}
}

func TestGenerator_Generate(t *testing.T) {
	cfg := writeBooksFixture(t, false)
	gen, err := generator.New(cfg, quietLogger())
	require.NoError(t, err)

	res, err := gen.Generate(context.Background(), cfg.Services[0])
	require.NoError(t, err)
	assert.Equal(t, "books", res.Service)
	assert.Equal(t, "books", res.Package)
	assert.NotEmpty(t, res.InputHash)

	src, err := os.ReadFile(res.File)
	require.NoError(t, err)
	got := string(src)

	assert.Contains(t, got, "package books")
	assert.Contains(t, got, "// Source: books fixture")
	assert.Contains(t, got, "type Volume struct {")
	assert.Contains(t, got, "type Bookshelf struct")
	// gofmt aligns fields into columns, so match with flexible spacing.
	assert.Regexp(t, "Id\\s+string\\s+`json:\"id,omitempty\"`", got)
	assert.Regexp(t, "PageCount\\s+int64\\s+`json:\"pageCount,omitempty\"`", got)
	assert.Regexp(t, "Authors\\s+\\[\\]string\\s+`json:\"authors,omitempty\"`", got)
	assert.Regexp(t, "Bookshelf\\s+\\*Bookshelf\\s+`json:\"bookshelf,omitempty\"`", got)
	assert.Contains(t, got, "type VolumesResource struct")
	assert.Contains(t, got, `"books.volumes.get"`)
	assert.Contains(t, got, `"books.volumes.list"`)
	assert.Contains(t, got, "type BooksService struct {")
	assert.Regexp(t, "Volumes\\s+\\*VolumesResource\\s+`json:\"volumes,omitempty\"`", got)
}

func TestGenerator_Generate_WithOverrides(t *testing.T) {
	cfg := writeBooksFixture(t, true)
	gen, err := generator.New(cfg, quietLogger())
	require.NoError(t, err)

	res, err := gen.Generate(context.Background(), cfg.Services[0])
	require.NoError(t, err)

	src, err := os.ReadFile(res.File)
	require.NoError(t, err)
	// The patch retypes Volume.id before generation.
	assert.Regexp(t, "Id\\s+int64\\s+`json:\"id,omitempty\"`", string(src))
}

func TestGenerator_GenerateAll(t *testing.T) {
	cfg := writeBooksFixture(t, false)
	gen, err := generator.New(cfg, quietLogger())
	require.NoError(t, err)

	manifest, err := gen.GenerateAll(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, manifest.RunID)
	assert.NotEmpty(t, manifest.Toolchain)
	require.Len(t, manifest.Services, 1)
	assert.Equal(t, "books", manifest.Services[0].Service)

	_, err = os.Stat(filepath.Join(cfg.Output, generator.ManifestName))
	assert.NoError(t, err)
}

func TestGenerator_Generate_MissingName(t *testing.T) {
	dir := t.TempDir()
	descPath := filepath.Join(dir, "anon.json")
	require.NoError(t, os.WriteFile(descPath, []byte(`{"version": "v1"}`), 0o644))

	cfg := &generator.Config{
		Output:   filepath.Join(dir, "gen"),
		Services: []generator.ServiceConfig{{Description: descPath}},
	}
	gen, err := generator.New(cfg, quietLogger())
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), cfg.Services[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declares no service name")
}

func TestGenerator_Generate_CancelledContext(t *testing.T) {
	cfg := writeBooksFixture(t, false)
	gen, err := generator.New(cfg, quietLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = gen.Generate(ctx, cfg.Services[0])
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_Validation(t *testing.T) {
	_, err := generator.New(nil, nil)
	assert.ErrorIs(t, err, guard.ErrInvalidArgument)

	_, err = generator.New(&generator.Config{}, nil)
	assert.ErrorIs(t, err, guard.ErrInvalidArgument)
}
