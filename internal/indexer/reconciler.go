// Package indexer reconciles the upstream frame catalog against the previous
// snapshot: merge, never delete, persist atomically, derive storefront views.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"fappstore/internal/catalog"
	"fappstore/internal/neynar"
	"fappstore/internal/store"
	"fappstore/pkg/models"
)

// Fetcher pulls the complete upstream catalog. Implemented by *neynar.Client.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (apps []models.App, skipped int, err error)
}

// Reconciler runs one catalog sync: load previous snapshot, fetch upstream,
// merge, persist, derive views. Single writer; at most one sync runs at a time.
type Reconciler struct {
	Fetcher  Fetcher
	Store    *store.Store
	TopCount int
	NewCount int

	// Now is the sync clock, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

func New(fetcher Fetcher, st *store.Store, topCount, newCount int) *Reconciler {
	return &Reconciler{
		Fetcher:  fetcher,
		Store:    st,
		TopCount: topCount,
		NewCount: newCount,
		Now:      time.Now,
	}
}

// Sync performs one reconciliation run and returns the persisted catalog plus
// an operator report.
//
// Existing apps are never removed, even when upstream stops listing them. An
// app seen both locally and upstream is merged with sticky content fields and
// gets UpdatedAt stamped with this run's time; its IndexedAt is preserved.
// Apps new to the catalog get IndexedAt = UpdatedAt = now and are appended in
// upstream rank order after the existing entries, keeping the relative order
// of unchanged entries stable.
//
// A missing API key aborts before any fetch or write. A partial pagination
// failure is a warning: whatever was fetched is still merged and persisted.
func (r *Reconciler) Sync(ctx context.Context) (*models.Catalog, models.SyncReport, error) {
	started := r.Now()
	report := models.SyncReport{
		ID:        uuid.NewString(),
		StartedAt: started,
	}

	previous, err := r.Store.Load()
	if err != nil {
		return nil, report, fmt.Errorf("load previous snapshot: %w", err)
	}
	var existing []models.App
	if previous != nil {
		existing = previous.Apps
	}

	upstream, skipped, fetchErr := r.Fetcher.FetchCatalog(ctx)
	report.Skipped = skipped
	if fetchErr != nil {
		if errors.Is(fetchErr, neynar.ErrMissingAPIKey) {
			return nil, report, fetchErr
		}
		// partial results are still worth persisting
		log.Printf("[indexer] pagination aborted early, keeping %d apps: %v", len(upstream), fetchErr)
		report.Partial = true
	}
	if len(upstream) == 0 && len(existing) > 0 {
		log.Printf("[indexer] WARNING: upstream returned zero apps against a snapshot of %d; existing entries pass through unchanged", len(existing))
	}

	now := started.Unix()
	byID := make(map[string]models.App, len(upstream))
	order := make([]string, 0, len(upstream))
	for _, app := range upstream {
		if _, ok := byID[app.ID]; ok {
			// upstream duplicates collapse onto the first-ranked record
			continue
		}
		byID[app.ID] = app
		order = append(order, app.ID)
	}

	merged := make([]models.App, 0, len(existing)+len(order))
	for _, old := range existing {
		incoming, ok := byID[old.ID]
		if !ok {
			// no longer listed upstream: keep unchanged
			merged = append(merged, old)
			continue
		}
		app := catalog.MergeApps(old, incoming)
		app.UpdatedAt = now
		merged = append(merged, app)
		report.Updated++
		delete(byID, old.ID)
	}
	for _, id := range order {
		app, ok := byID[id]
		if !ok {
			continue // consumed by the merge pass above
		}
		app.IndexedAt = now
		app.UpdatedAt = now
		merged = append(merged, app)
		report.New++
	}
	report.Total = len(merged)

	result := &models.Catalog{
		LastUpdated: started.UTC().Format(time.RFC3339),
		TotalItems:  len(merged),
		Apps:        merged,
	}

	if err := r.Store.Save(result); err != nil {
		return nil, report, fmt.Errorf("persist snapshot: %w", err)
	}
	if err := r.Store.WriteViews(result, r.TopCount, r.NewCount); err != nil {
		return nil, report, fmt.Errorf("persist derived views: %w", err)
	}

	report.Duration = r.Now().Sub(started)
	log.Printf("[indexer] catalog updated: %d total, %d new, %d updated, %d skipped",
		report.Total, report.New, report.Updated, report.Skipped)

	return result, report, nil
}
