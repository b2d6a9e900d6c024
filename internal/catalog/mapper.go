package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"fappstore/pkg/models"
)

// Frame mirrors one raw record from the upstream catalog API. The manifest and
// HTML metadata blocks are optional: unindexed or badly published mini-apps ship
// without them, so every nested field is reached through a pointer.
type Frame struct {
	Version   string         `json:"version"`
	Image     string         `json:"image"`
	FramesURL string         `json:"frames_url"`
	Manifest  *FrameManifest `json:"manifest"`
	Metadata  *FrameMetadata `json:"metadata"`
	Author    FrameAuthor    `json:"author"`
}

type FrameManifest struct {
	Frame *ManifestFrame `json:"frame"`
}

type ManifestFrame struct {
	Name                  string   `json:"name"`
	Subtitle              string   `json:"subtitle"`
	Tagline               string   `json:"tagline"`
	PrimaryCategory       string   `json:"primary_category"`
	Tags                  []string `json:"tags"`
	HomeURL               string   `json:"home_url"`
	IconURL               string   `json:"icon_url"`
	ScreenshotURLs        []string `json:"screenshot_urls"`
	SplashBackgroundColor string   `json:"splash_background_color"`
}

type FrameMetadata struct {
	HTML *HTMLMetadata `json:"html"`
}

type HTMLMetadata struct {
	OGTitle       string `json:"ogTitle"`
	OGDescription string `json:"ogDescription"`
}

type FrameAuthor struct {
	FID           int64         `json:"fid"`
	Username      string        `json:"username"`
	DisplayName   string        `json:"display_name"`
	PfpURL        string        `json:"pfp_url"`
	PowerBadge    bool          `json:"power_badge"`
	Score         float64       `json:"score"`
	FollowerCount int64         `json:"follower_count"`
	Profile       *FrameProfile `json:"profile"`
}

type FrameProfile struct {
	Bio *FrameBio `json:"bio"`
}

type FrameBio struct {
	Text string `json:"text"`
}

// MalformedRecordError marks an upstream record that cannot be mapped into an
// App. Callers are expected to skip the record and keep going.
type MalformedRecordError struct {
	FramesURL string
	Reason    string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed frame record %q: %s", e.FramesURL, e.Reason)
}

// MapFrame normalizes one raw frame record into the canonical App shape.
// index is the record's position in the final concatenated upstream order
// (cross-page, not reset per page).
//
// Identity is the hostname of frames_url; a record whose frames_url has no
// parseable hostname fails with *MalformedRecordError. Every other field
// falls back to its zero value when the upstream block is absent. IndexedAt
// and UpdatedAt are left zero: first-seen vs last-updated depends on merge
// history, so the reconciler assigns them.
func MapFrame(f Frame, index int) (models.App, error) {
	id, err := frameID(f.FramesURL)
	if err != nil {
		return models.App{}, err
	}

	var mf ManifestFrame
	if f.Manifest != nil && f.Manifest.Frame != nil {
		mf = *f.Manifest.Frame
	}
	var html HTMLMetadata
	if f.Metadata != nil && f.Metadata.HTML != nil {
		html = *f.Metadata.HTML
	}

	title := mf.Name
	if title == "" {
		title = html.OGTitle
	}
	subtitle := mf.Subtitle
	if subtitle == "" {
		subtitle = mf.Tagline
	}

	bio := ""
	if f.Author.Profile != nil && f.Author.Profile.Bio != nil {
		bio = f.Author.Profile.Bio.Text
	}

	app := models.App{
		Version:         f.Version,
		ID:              id,
		Index:           index,
		Title:           title,
		Subtitle:        subtitle,
		Description:     html.OGDescription,
		Category:        mf.PrimaryCategory,
		Tags:            mf.Tags,
		HomeURL:         mf.HomeURL,
		IconURL:         mf.IconURL,
		ImageURL:        f.Image,
		FramesURL:       f.FramesURL,
		ScreenshotURLs:  mf.ScreenshotURLs,
		BackgroundColor: mf.SplashBackgroundColor,
		Author: models.Author{
			FID:           f.Author.FID,
			Username:      f.Author.Username,
			DisplayName:   f.Author.DisplayName,
			PfpURL:        f.Author.PfpURL,
			Bio:           bio,
			PowerBadge:    f.Author.PowerBadge,
			Score:         f.Author.Score,
			FollowerCount: f.Author.FollowerCount,
		},
	}

	if app.Category == "" {
		app.Category = InferCategory(app.Title + " " + app.Subtitle + " " + app.Description)
	}

	return app, nil
}

// frameID derives the canonical app identity from the frame URL's hostname.
func frameID(framesURL string) (string, error) {
	if strings.TrimSpace(framesURL) == "" {
		return "", &MalformedRecordError{FramesURL: framesURL, Reason: "empty frames_url"}
	}
	u, err := url.Parse(framesURL)
	if err != nil {
		return "", &MalformedRecordError{FramesURL: framesURL, Reason: err.Error()}
	}
	host := u.Hostname()
	if host == "" {
		return "", &MalformedRecordError{FramesURL: framesURL, Reason: "no hostname"}
	}
	return host, nil
}
