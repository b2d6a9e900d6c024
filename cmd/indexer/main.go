package main

import (
	"context"
	"errors"
	"log"
	"time"

	"fappstore/internal/indexer"
	"fappstore/internal/neynar"
	"fappstore/internal/runlog"
	"fappstore/internal/store"
	"fappstore/pkg/database"
	"fappstore/pkg/utils"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cfg := utils.LoadConfig()

	db := database.MustOpen(database.DefaultConfig())
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	client := neynar.NewClient(cfg.NeynarAPIKey)
	client.BaseURL = cfg.NeynarBaseURL

	st := store.New(cfg.DataDir)
	rec := indexer.New(client, st, cfg.TopCount, cfg.NewCount)

	catalogData, report, err := rec.Sync(ctx)
	if err != nil {
		if errors.Is(err, neynar.ErrMissingAPIKey) {
			log.Fatalf("sync aborted, nothing written: %v", err)
		}
		log.Fatalf("sync failed: %v", err)
	}

	if err := runlog.NewRepo(db).Record(ctx, report); err != nil {
		// the snapshot is already durable, a lost run record is not fatal
		log.Printf("[indexer] could not record sync run: %v", err)
	}

	log.Printf("✅ catalog written to %s (%d apps, %d new)", st.Path(store.CatalogMinFile), catalogData.TotalItems, report.New)
}
