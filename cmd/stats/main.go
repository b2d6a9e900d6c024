package main

import (
	"fmt"
	"log"
	"sort"

	"fappstore/internal/store"
	"fappstore/pkg/utils"
)

func main() {
	log.Println("Analyzing app store statistics...")

	cfg := utils.LoadConfig()
	st := store.New(cfg.DataDir)

	catalogData, err := st.Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	if catalogData == nil || len(catalogData.Apps) == 0 {
		log.Fatal("no catalog snapshot found, run the indexer first")
	}
	apps := catalogData.Apps

	fmt.Println("\n=== App Store Statistics ===")
	fmt.Printf("Total Apps: %d\n", len(apps))

	categories := make(map[string]int)
	authorCounts := make(map[string]int)
	tagFrequency := make(map[string]int)
	var hasIcon, hasImage, hasSubtitle, hasCategory, hasTags, hasScreenshots int
	var totalScore float64
	var powerBadge int

	for _, app := range apps {
		if app.Category != "" {
			categories[app.Category]++
			hasCategory++
		}
		authorCounts[app.Author.Username]++
		for _, tag := range app.Tags {
			tagFrequency[tag]++
		}
		if app.IconURL != "" {
			hasIcon++
		}
		if app.ImageURL != "" {
			hasImage++
		}
		if app.Subtitle != "" {
			hasSubtitle++
		}
		if len(app.Tags) > 0 {
			hasTags++
		}
		if len(app.ScreenshotURLs) > 0 {
			hasScreenshots++
		}
		totalScore += app.Author.Score
		if app.Author.PowerBadge {
			powerBadge++
		}
	}

	fmt.Println("\n=== Categories ===")
	for _, kv := range sortedByCount(categories) {
		fmt.Printf("%s: %d apps (%.1f%%)\n", kv.key, kv.count, percent(kv.count, len(apps)))
	}

	fmt.Println("\n=== Top Authors ===")
	for i, kv := range sortedByCount(authorCounts) {
		if i >= 10 {
			break
		}
		fmt.Printf("%s: %d apps\n", kv.key, kv.count)
	}

	fmt.Println("\n=== Popular Tags ===")
	for i, kv := range sortedByCount(tagFrequency) {
		if i >= 20 {
			break
		}
		fmt.Printf("%s: %d apps\n", kv.key, kv.count)
	}

	fmt.Println("\n=== Metadata Completeness ===")
	printCompleteness("hasIcon", hasIcon, len(apps))
	printCompleteness("hasImage", hasImage, len(apps))
	printCompleteness("hasSubtitle", hasSubtitle, len(apps))
	printCompleteness("hasCategory", hasCategory, len(apps))
	printCompleteness("hasTags", hasTags, len(apps))
	printCompleteness("hasScreenshotUrls", hasScreenshots, len(apps))

	fmt.Println("\n=== Author Metrics ===")
	fmt.Printf("Average Author Score: %.2f\n", totalScore/float64(len(apps)))
	fmt.Printf("Authors with Power Badge: %d (%.1f%%)\n", powerBadge, percent(powerBadge, len(apps)))
}

type keyCount struct {
	key   string
	count int
}

func sortedByCount(m map[string]int) []keyCount {
	out := make([]keyCount, 0, len(m))
	for k, v := range m {
		out = append(out, keyCount{k, v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].key < out[j].key
	})
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func printCompleteness(field string, n, total int) {
	fmt.Printf("%s: %d apps (%.1f%%)\n", field, n, percent(n, total))
}
