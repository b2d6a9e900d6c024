package catalog

import "fappstore/pkg/models"

// MergeApps reconciles a previously persisted app with its fresh upstream
// version. Upstream data is noisy and sometimes regresses (an empty field where
// a richer value was seen before), so content fields are sticky: a populated
// existing value is never overwritten. Fields where upstream is authoritative
// (version, index, author identity and reputation) always track incoming.
//
// - Title, subtitle, description, category, homeUrl, iconUrl, imageUrl,
//   framesUrl, backgroundColor: keep existing if non-empty, else take incoming.
// - Tags and screenshot URLs: set union, existing entries first.
// - Author: incoming wins, except bio which is sticky (bios are sometimes
//   missing from paginated responses).
// - IndexedAt: always preserved from existing (first-seen is immutable).
// - UpdatedAt: left to the caller, which stamps the current sync time.
func MergeApps(existing, incoming models.App) models.App {
	merged := incoming

	merged.Title = firstNonEmpty(existing.Title, incoming.Title)
	merged.Subtitle = firstNonEmpty(existing.Subtitle, incoming.Subtitle)
	merged.Description = firstNonEmpty(existing.Description, incoming.Description)
	merged.Category = firstNonEmpty(existing.Category, incoming.Category)
	merged.HomeURL = firstNonEmpty(existing.HomeURL, incoming.HomeURL)
	merged.IconURL = firstNonEmpty(existing.IconURL, incoming.IconURL)
	merged.ImageURL = firstNonEmpty(existing.ImageURL, incoming.ImageURL)
	merged.FramesURL = firstNonEmpty(existing.FramesURL, incoming.FramesURL)
	merged.BackgroundColor = firstNonEmpty(existing.BackgroundColor, incoming.BackgroundColor)

	merged.Tags = unionStrings(existing.Tags, incoming.Tags)
	merged.ScreenshotURLs = unionStrings(existing.ScreenshotURLs, incoming.ScreenshotURLs)

	merged.Author = incoming.Author
	merged.Author.Bio = firstNonEmpty(existing.Author.Bio, incoming.Author.Bio)

	merged.IndexedAt = existing.IndexedAt

	return merged
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// unionStrings merges two slices preserving first-seen order and dropping
// duplicates. Returns nil when both inputs are empty so the field still
// omits cleanly from JSON.
func unionStrings(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, s := range b {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
