package scenario

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	_ "embed"
)

//go:embed data/scenarios.yaml
var defaultCatalogYAML []byte

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return LoadFromReader(bytes.NewReader(defaultCatalogYAML))
}

// Load reads and validates the YAML catalog file at path.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: open %q: %w", path, err)
	}
	defer f.Close()

	cat, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("scenario: parse %q: %w", path, err)
	}
	return cat, nil
}

// LoadFromReader decodes a YAML catalog from r and validates the result.
// Useful in tests where catalogs are constructed from string literals.
func LoadFromReader(r io.Reader) (*Catalog, error) {
	cat := &Catalog{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cat); err != nil {
		return nil, fmt.Errorf("scenario: decode yaml: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	cat.finish()
	return cat, nil
}

// LoadDir loads every *.yaml/*.yml file under dir concurrently and merges
// them into one catalog. Files are merged in lexical filename order so the
// result is deterministic regardless of load completion order. Scenario ids
// must be unique across the whole directory.
func LoadDir(ctx context.Context, dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scenario: read dir %q: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("scenario: no catalog files in %q", dir)
	}

	g, ctx := errgroup.WithContext(ctx)
	loaded := make([]*Catalog, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cat, err := Load(path)
			if err != nil {
				return err
			}
			loaded[i] = cat
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Catalog{}
	seen := make(map[string]string)
	for i, cat := range loaded {
		for _, s := range cat.Scenarios {
			if prev, ok := seen[s.ID]; ok {
				return nil, fmt.Errorf("scenario: id %q in %q duplicates one in %q", s.ID, paths[i], prev)
			}
			seen[s.ID] = paths[i]
			merged.Scenarios = append(merged.Scenarios, s)
		}
	}
	merged.finish()

	slog.Info("scenario: catalog loaded", "dir", dir, "files", len(paths), "scenarios", len(merged.Scenarios))
	return merged, nil
}
