// Package store persists catalog snapshots and their derived views as plain
// JSON files. The indexer is the single writer; the storefront and the API
// server only ever read the last durably written snapshot.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fappstore/pkg/models"
)

const (
	// CatalogFile is the human-readable snapshot.
	CatalogFile = "catalog.json"
	// CatalogMinFile is the compact snapshot the read path serves from.
	CatalogMinFile = "catalog.min.json"

	FeaturedFile = "featured.json"
	TopFile      = "top.json"
	NewFile      = "new.json"
)

// Store reads and writes snapshot files under a single directory.
type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the absolute location of a snapshot file.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Load reads the previous snapshot. A missing file is not an error: the first
// run starts from an empty catalog and returns (nil, nil).
func (s *Store) Load() (*models.Catalog, error) {
	b, err := os.ReadFile(s.Path(CatalogMinFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var c models.Catalog
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &c, nil
}

// Save persists the catalog as both the indented and the compact form. Each
// file is written to a temporary path and renamed into place, so a failed run
// never leaves a truncated snapshot behind.
func (s *Store) Save(c *models.Catalog) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("ensure snapshot dir: %w", err)
	}

	pretty, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.writeAtomic(CatalogFile, pretty); err != nil {
		return err
	}

	compact, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.writeAtomic(CatalogMinFile, compact)
}

func (s *Store) writeAtomic(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.Dir, name+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", name, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}

	if err := os.Rename(tmpName, s.Path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
