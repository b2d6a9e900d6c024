package apps

import (
	"strings"

	"fappstore/pkg/models"
)

// ListQuery filters and pages the catalog listing.
type ListQuery struct {
	Q        string // keyword search over title/subtitle/description/author/homeUrl
	Category string
	Tag      string
	Limit    int
	Offset   int
}

// Filter applies the query to the full app list and returns the matching
// subset plus the total match count before paging.
func Filter(all []models.App, q ListQuery) ([]models.App, int) {
	matched := make([]models.App, 0, len(all))
	for _, app := range all {
		if q.Category != "" && app.Category != q.Category {
			continue
		}
		if q.Tag != "" && !containsString(app.Tags, q.Tag) {
			continue
		}
		if !matchesKeyword(app, q.Q) {
			continue
		}
		matched = append(matched, app)
	}
	total := len(matched)

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) {
		return []models.App{}, total
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total
}

func matchesKeyword(app models.App, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	fields := []string{
		app.Title,
		app.Subtitle,
		app.Description,
		app.Author.Username,
		app.Author.DisplayName,
		app.HomeURL,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func containsString(slice []string, v string) bool {
	for _, s := range slice {
		if s == v {
			return true
		}
	}
	return false
}
