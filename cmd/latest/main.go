package main

import (
	"fmt"
	"log"
	"time"

	"fappstore/internal/store"
	"fappstore/pkg/models"
	"fappstore/pkg/utils"
)

func main() {
	log.Println("Fetching new Apps...")

	cfg := utils.LoadConfig()
	st := store.New(cfg.DataDir)

	catalogData, err := st.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	if catalogData == nil {
		log.Fatal("no catalog snapshot found, run the indexer first")
	}

	since := time.Now().Add(-24 * time.Hour).Unix()

	var latest []models.App
	for _, app := range catalogData.Apps {
		if app.IndexedAt > since {
			latest = append(latest, app)
		}
	}

	if len(latest) == 0 {
		log.Println("No new apps indexed...")
		return
	}

	fmt.Printf("Found %d new apps:\n\n", len(latest))

	var fromPower, categorized []models.App
	for _, app := range latest {
		if app.Author.PowerBadge || app.Author.Score > 0.9 {
			fromPower = append(fromPower, app)
		}
	}
	for _, app := range fromPower {
		if app.Category != "" {
			categorized = append(categorized, app)
		}
	}

	fmt.Printf("From power users: %d\n", len(fromPower))
	fmt.Printf("From non-power users: %d\n", len(latest)-len(fromPower))
	fmt.Printf("From categorized: %d\n", len(categorized))

	for _, app := range categorized {
		fmt.Printf("- %s @%s\n", app.Title, app.Author.Username)
	}
}
