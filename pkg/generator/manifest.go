package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/clientgen/go-sdk/pkg/platform"
)

// ManifestName is the file GenerateAll writes next to the generated
// packages.
const ManifestName = "manifest.json"

// Manifest records what a generation run produced and from what.
type Manifest struct {
	// RunID uniquely identifies the run
	RunID string `json:"runId"`

	// GeneratedAt is the UTC completion time
	GeneratedAt time.Time `json:"generatedAt"`

	// Toolchain identifies the Go toolchain that produced the output
	Toolchain string `json:"toolchain"`

	// Services lists the per-service outputs in configuration order
	Services []ManifestEntry `json:"services"`
}

// ManifestEntry correlates one generated file with its input.
type ManifestEntry struct {
	Service   string `json:"service"`
	Package   string `json:"package"`
	File      string `json:"file"`
	InputHash string `json:"inputHash"`
}

func newManifest(results []*Result) *Manifest {
	entries := make([]ManifestEntry, 0, len(results))
	for _, res := range results {
		entries = append(entries, ManifestEntry{
			Service:   res.Service,
			Package:   res.Package,
			File:      res.File,
			InputHash: res.InputHash,
		})
	}
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Toolchain:   platform.Current().String(),
		Services:    entries,
	}
}

// Write stores the manifest under dir.
func (m *Manifest) Write(dir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
