package store

import (
	"encoding/json"
	"fmt"
	"sort"

	"fappstore/pkg/models"
)

// FeaturedApps is the curated allow-list of app IDs shown on the storefront
// hero. Order here is display order; IDs missing from the catalog are skipped.
var FeaturedApps = []string{
	"hypersub.xyz",
	"memories.nexth.dev",
	"app.farcaster-rpgf.com",
	"farville.farm",
	"gigbot.xyz",
}

// WriteViews derives the featured/top/new subsets from the catalog and
// persists each as a plain JSON array of apps.
func (s *Store) WriteViews(c *models.Catalog, topCount, newCount int) error {
	if err := s.writeView(FeaturedFile, Featured(c)); err != nil {
		return err
	}
	if err := s.writeView(TopFile, Top(c, topCount)); err != nil {
		return err
	}
	return s.writeView(NewFile, Newest(c, newCount))
}

func (s *Store) writeView(name string, apps []models.App) error {
	b, err := json.Marshal(apps)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return s.writeAtomic(name, b)
}

// Featured returns the allow-listed apps in allow-list order.
func Featured(c *models.Catalog) []models.App {
	byID := make(map[string]models.App, len(c.Apps))
	for _, app := range c.Apps {
		byID[app.ID] = app
	}

	out := make([]models.App, 0, len(FeaturedApps))
	for _, id := range FeaturedApps {
		if app, ok := byID[id]; ok {
			out = append(out, app)
		}
	}
	return out
}

// Top returns the first n apps in current catalog order.
func Top(c *models.Catalog, n int) []models.App {
	if n > len(c.Apps) {
		n = len(c.Apps)
	}
	out := make([]models.App, n)
	copy(out, c.Apps[:n])
	return out
}

// Newest returns up to n apps ordered by most recent first ingestion.
func Newest(c *models.Catalog, n int) []models.App {
	out := make([]models.App, len(c.Apps))
	copy(out, c.Apps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IndexedAt > out[j].IndexedAt
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}
