// Package neynar talks to the Neynar social-graph API: the cursor-paginated
// frame catalog used by the indexer, and the per-user relevant-frames feed
// used for recommendations.
package neynar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fappstore/internal/catalog"
	"fappstore/pkg/models"
)

const defaultBaseURL = "https://api.neynar.com/v2"

// recommendationWindow bounds the relevant-frames feed to recent activity.
const recommendationWindow = "7d"

// ErrMissingAPIKey is returned before any request is made when the client has
// no API key configured. A sync aborted on this error has performed zero I/O.
var ErrMissingAPIKey = errors.New("neynar: NEYNAR_API_KEY is required")

// UpstreamError is a non-success response or transport failure from the API.
type UpstreamError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("neynar: %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("neynar: %s: status %d", e.Endpoint, e.Status)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client is the upstream API client. Construct it once at process start and
// inject it into whatever needs it.
type Client struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

// NewClient creates a Client with the given API key and default base URL.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 12 * time.Second},
	}
}

type catalogResponse struct {
	Frames []catalog.Frame `json:"frames"`
	Next   *struct {
		Cursor string `json:"cursor"`
	} `json:"next"`
}

type relevantResponse struct {
	RelevantFrames []struct {
		Frame catalog.Frame `json:"frame"`
	} `json:"relevant_frames"`
}

// FetchCatalog pages through the full frame catalog and maps every record into
// the canonical App shape. The returned index is the record's position in the
// concatenated cross-page order. Malformed records are skipped and counted,
// not fatal.
//
// A page returning a non-success status aborts the loop early: the apps
// fetched so far are returned together with an *UpstreamError, so the caller
// can keep partial data and surface a warning. A missing API key fails with
// ErrMissingAPIKey before the first request.
func (c *Client) FetchCatalog(ctx context.Context) (apps []models.App, skipped int, err error) {
	if c.APIKey == "" {
		return nil, 0, ErrMissingAPIKey
	}

	cursor := ""
	index := 0
	for {
		page, pageErr := c.fetchCatalogPage(ctx, cursor)
		if pageErr != nil {
			// keep partial results: availability over strict completeness
			return apps, skipped, pageErr
		}

		for _, frame := range page.Frames {
			app, mapErr := catalog.MapFrame(frame, index)
			if mapErr != nil {
				log.Printf("[neynar] skipping record: %v", mapErr)
				skipped++
				continue
			}
			apps = append(apps, app)
			index++
		}

		if page.Next == nil || page.Next.Cursor == "" {
			return apps, skipped, nil
		}
		cursor = page.Next.Cursor
	}
}

func (c *Client) fetchCatalogPage(ctx context.Context, cursor string) (*catalogResponse, error) {
	u, err := url.Parse(c.BaseURL + "/farcaster/frame/catalog")
	if err != nil {
		return nil, &UpstreamError{Endpoint: "frame/catalog", Err: err}
	}
	if cursor != "" {
		q := u.Query()
		q.Set("cursor", cursor)
		u.RawQuery = q.Encode()
	}

	var resp catalogResponse
	if err := c.get(ctx, "frame/catalog", u.String(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recommendations fetches the personalized relevant-frames feed for one user.
// The returned apps are ephemeral, request-scoped records stamped with the
// current time; they are never merged into the persisted catalog.
//
// Recommendations are best-effort: any upstream or decode failure is logged
// and yields an empty slice, never an error. Callers must treat an empty
// result as "no recommendations available".
func (c *Client) Recommendations(ctx context.Context, fid int64) []models.App {
	if c.APIKey == "" {
		log.Printf("[neynar] recommendations unavailable: %v", ErrMissingAPIKey)
		return []models.App{}
	}

	u, err := url.Parse(c.BaseURL + "/farcaster/frame/relevant")
	if err != nil {
		log.Printf("[neynar] recommendations: %v", err)
		return []models.App{}
	}
	q := u.Query()
	q.Set("viewer_fid", strconv.FormatInt(fid, 10))
	q.Set("time_window", recommendationWindow)
	u.RawQuery = q.Encode()

	var resp relevantResponse
	if err := c.get(ctx, "frame/relevant", u.String(), &resp); err != nil {
		log.Printf("[neynar] recommendations for fid %d failed: %v", fid, err)
		return []models.App{}
	}

	now := time.Now().Unix()
	apps := make([]models.App, 0, len(resp.RelevantFrames))
	for i, item := range resp.RelevantFrames {
		app, mapErr := catalog.MapFrame(item.Frame, i)
		if mapErr != nil {
			log.Printf("[neynar] skipping recommended record: %v", mapErr)
			continue
		}
		app.IndexedAt = now
		app.UpdatedAt = now
		apps = append(apps, app)
	}
	return apps
}

func (c *Client) get(ctx context.Context, endpoint, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("x-api-key", c.APIKey)

	resp, err := c.Client.Do(req)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Endpoint: endpoint, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}
