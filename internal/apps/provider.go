package apps

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"fappstore/internal/store"
	"fappstore/pkg/models"
)

// Provider serves read-only catalog data from the snapshot files the indexer
// writes. Files are re-read lazily when their mtime changes, so a running API
// server picks up a fresh sync without restarting. Safe for concurrent use.
type Provider struct {
	Store *store.Store

	mu     sync.RWMutex
	cached map[string]*cachedFile
}

type cachedFile struct {
	modTime time.Time
	data    any
}

func NewProvider(st *store.Store) *Provider {
	return &Provider{
		Store:  st,
		cached: make(map[string]*cachedFile),
	}
}

// Catalog returns the last durably persisted catalog. A missing snapshot is
// served as an empty catalog, not an error: the read path never sees sync
// failures.
func (p *Provider) Catalog() (*models.Catalog, error) {
	v, err := p.load(store.CatalogMinFile, func() any { return &models.Catalog{} })
	if err != nil {
		return nil, err
	}
	if v == nil {
		return &models.Catalog{Apps: []models.App{}}, nil
	}
	return v.(*models.Catalog), nil
}

// View returns one derived subset file (featured/top/new).
func (p *Provider) View(name string) ([]models.App, error) {
	v, err := p.load(name, func() any { return &[]models.App{} })
	if err != nil {
		return nil, err
	}
	if v == nil {
		return []models.App{}, nil
	}
	return *v.(*[]models.App), nil
}

func (p *Provider) load(name string, newTarget func() any) (any, error) {
	path := p.Store.Path(name)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stat %s: %w", name, err)
	}

	p.mu.RLock()
	entry, ok := p.cached[name]
	p.mu.RUnlock()
	if ok && entry.modTime.Equal(info.ModTime()) {
		return entry.data, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	target := newTarget()
	if err := json.Unmarshal(b, target); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	p.mu.Lock()
	p.cached[name] = &cachedFile{modTime: info.ModTime(), data: target}
	p.mu.Unlock()

	return target, nil
}
