package models

// Author is the Farcaster account that published a mini-app.
type Author struct {
	FID           int64   `json:"fid"`
	Username      string  `json:"username"`
	DisplayName   string  `json:"displayName"`
	PfpURL        string  `json:"pfpUrl"`
	Bio           string  `json:"bio"`
	PowerBadge    bool    `json:"powerBadge"`
	Score         float64 `json:"score"`
	FollowerCount int64   `json:"followerCount"`
}

// App is the canonical, normalized form of one catalog entry.
//
// All upstream frame records are mapped into this structure first,
// then merged against the previous snapshot before persisting.
type App struct {
	Version         string   `json:"version"`
	ID              string   `json:"id"`    // canonical ID = hostname of FramesURL
	Index           int      `json:"index"` // upstream ranking position at ingestion time
	Title           string   `json:"title"`
	Subtitle        string   `json:"subtitle,omitempty"`
	Description     string   `json:"description"`
	Category        string   `json:"category,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	HomeURL         string   `json:"homeUrl"`
	IconURL         string   `json:"iconUrl"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	FramesURL       string   `json:"framesUrl,omitempty"`
	ScreenshotURLs  []string `json:"screenshotUrls,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	Author          Author   `json:"author"`
	IndexedAt       int64    `json:"indexedAt"` // unix, set at first ingestion, never overwritten
	UpdatedAt       int64    `json:"updatedAt"` // unix, refreshed on every reconcile from upstream
}

// Catalog is the persisted snapshot of the full app directory.
type Catalog struct {
	LastUpdated string `json:"lastUpdated"` // RFC 3339 timestamp of the sync run
	TotalItems  int    `json:"totalItems"`
	Apps        []App  `json:"apps"`
}
