package discovery

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/clientgen/go-sdk/pkg/guard"
)

// ApplyOverrides applies an RFC 6902 patch to the document and returns the
// patched document. The receiver is left unchanged, so a base description
// can be shared across several override sets.
func (d *Document) ApplyOverrides(patch []byte) (*Document, error) {
	if err := guard.NotEmptySlice(patch, "patch"); err != nil {
		return nil, err
	}

	decoded, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding override patch: %w", err)
	}

	patched, err := decoded.Apply(d.raw)
	if err != nil {
		return nil, fmt.Errorf("applying override patch: %w", err)
	}
	return Load(patched)
}
