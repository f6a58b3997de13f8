package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/clientgen/go-sdk/pkg/discovery"
	"github.com/clientgen/go-sdk/pkg/guard"
)

// Generator runs generation for a validated configuration.
type Generator struct {
	cfg *Config
	log *logrus.Logger
}

// Result describes the output produced for one service.
type Result struct {
	// Service is the service name from the description
	Service string

	// Package is the generated package name
	Package string

	// File is the path of the generated source file
	File string

	// InputHash identifies the (patched) description the file came from
	InputHash string
}

// New creates a generator. A nil logger falls back to a default logrus
// logger.
func New(cfg *Config, log *logrus.Logger) (*Generator, error) {
	if cfg == nil {
		return nil, guard.NewArgumentError("cfg", "must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.New()
	}
	return &Generator{cfg: cfg, log: log}, nil
}

// Generate produces the source file for a single service.
func (g *Generator) Generate(ctx context.Context, svc ServiceConfig) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := discovery.LoadFile(svc.Description)
	if err != nil {
		return nil, err
	}

	if svc.Overrides != "" {
		patch, err := os.ReadFile(svc.Overrides)
		if err != nil {
			return nil, fmt.Errorf("reading overrides: %w", err)
		}
		doc, err = doc.ApplyOverrides(patch)
		if err != nil {
			return nil, err
		}
	}

	if guard.IsEmpty(doc.Name()) {
		return nil, fmt.Errorf("description %s declares no service name", svc.Description)
	}

	pkg := svc.Package
	if pkg == "" {
		pkg = packageName(doc.Name())
	}

	model := fileModel{
		Header:      g.cfg.Header,
		Package:     pkg,
		ServiceName: doc.Name(),
		Version:     doc.Version(),
		InputHash:   doc.InputHash(),
		Decls:       viewsOf(buildDecls(doc)),
	}

	src, err := render(model)
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(g.cfg.Output, pkg)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}
	file := filepath.Join(dir, pkg+"-gen.go")
	if err := os.WriteFile(file, src, 0o644); err != nil {
		return nil, fmt.Errorf("writing generated source: %w", err)
	}

	g.log.WithFields(logrus.Fields{
		"service": doc.Name(),
		"version": doc.Version(),
		"file":    file,
	}).Info("generated service package")

	return &Result{
		Service:   doc.Name(),
		Package:   pkg,
		File:      file,
		InputHash: doc.InputHash(),
	}, nil
}

// GenerateAll generates every configured service concurrently and writes
// the run manifest. Results keep configuration order regardless of
// completion order.
func (g *Generator) GenerateAll(ctx context.Context) (*Manifest, error) {
	results := make([]*Result, len(g.cfg.Services))

	eg, ctx := errgroup.WithContext(ctx)
	for i, svc := range g.cfg.Services {
		eg.Go(func() error {
			res, err := g.Generate(ctx, svc)
			if err != nil {
				return fmt.Errorf("generating %s: %w", svc.Description, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	manifest := newManifest(results)
	if err := manifest.Write(g.cfg.Output); err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"run_id":   manifest.RunID,
		"services": len(manifest.Services),
	}).Info("generation run complete")

	return manifest, nil
}

// packageName lowers a service name into a plain package identifier.
func packageName(service string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(service) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "generated"
	}
	return b.String()
}
