package discovery

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/clientgen/go-sdk/pkg/guard"
	"github.com/clientgen/go-sdk/pkg/maputil"
	"github.com/zeebo/blake3"
)

// Document is a decoded service description. The zero value is not usable;
// construct documents with Load or LoadFile.
type Document struct {
	raw  []byte
	data map[string]any
}

// Load decodes a service description from JSON bytes. The top-level value
// must be a JSON object.
func Load(data []byte) (*Document, error) {
	if err := guard.NotEmptySlice(data, "data"); err != nil {
		return nil, err
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decoding service description: %w", err)
	}

	raw := make([]byte, len(data))
	copy(raw, data)
	return &Document{raw: raw, data: decoded}, nil
}

// LoadFile reads and decodes a service description from disk.
func LoadFile(path string) (*Document, error) {
	if err := guard.NotEmpty(path, "path"); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading service description: %w", err)
	}
	return Load(data)
}

// Name returns the service name, or "" when the document omits it.
func (d *Document) Name() string {
	return d.stringField("name")
}

// Version returns the service version, or "" when omitted.
func (d *Document) Version() string {
	return d.stringField("version")
}

// Title returns the human-readable service title, or "" when omitted.
func (d *Document) Title() string {
	return d.stringField("title")
}

// Description returns the service description text, or "" when omitted.
func (d *Document) Description() string {
	return d.stringField("description")
}

// Features returns the feature markers the service declares. Entries that
// are not renderable as strings are skipped.
func (d *Document) Features() []string {
	return d.stringList("features")
}

// Labels returns the publication labels the service declares.
func (d *Document) Labels() []string {
	return d.stringList("labels")
}

// Schemas returns a read-only view of the schema definitions keyed by
// schema name. The view is empty when the document declares none.
func (d *Document) Schemas() *maputil.ReadOnlyMap[string, any] {
	return d.objectField("schemas")
}

// Resources returns a read-only view of the resource definitions keyed by
// resource name.
func (d *Document) Resources() *maputil.ReadOnlyMap[string, any] {
	return d.objectField("resources")
}

// Methods returns a read-only view of the top-level method definitions.
func (d *Document) Methods() *maputil.ReadOnlyMap[string, any] {
	return d.objectField("methods")
}

// InputHash returns the hex BLAKE3 digest of the document bytes, used to
// correlate generated output with its input.
func (d *Document) InputHash() string {
	sum := blake3.Sum256(d.raw)
	return hex.EncodeToString(sum[:])
}

// Bytes returns a copy of the document's original JSON.
func (d *Document) Bytes() []byte {
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

func (d *Document) stringField(key string) string {
	s, _ := maputil.ValueOrZero(d.data, key).(string)
	return s
}

// stringList renders the slice under key, dropping entries with no string
// form. d.data is never nil for a loaded document, so the nil-map error
// path is unreachable here.
func (d *Document) stringList(key string) []string {
	rendered, err := maputil.StringListOrEmpty(d.data, key)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(rendered))
	for _, s := range rendered {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

func (d *Document) objectField(key string) *maputil.ReadOnlyMap[string, any] {
	obj, _ := maputil.ValueOrZero(d.data, key).(map[string]any)
	if obj == nil {
		obj = map[string]any{}
	}
	view, _ := maputil.ReadOnly(obj)
	return view
}
