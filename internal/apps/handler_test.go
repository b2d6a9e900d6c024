package apps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"fappstore/internal/store"
	"fappstore/pkg/models"
)

type stubRecommender struct {
	apps   []models.App
	gotFID int64
}

func (s *stubRecommender) Recommendations(ctx context.Context, fid int64) []models.App {
	s.gotFID = fid
	return s.apps
}

type stubRuns struct {
	reports []models.SyncReport
}

func (s *stubRuns) Recent(ctx context.Context, n int) ([]models.SyncReport, error) {
	return s.reports, nil
}

func newTestRouter(t *testing.T, rec Recommender, runs RunReader) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(t.TempDir())
	c := &models.Catalog{
		LastUpdated: "2026-08-31T00:00:00Z",
		TotalItems:  2,
		Apps: []models.App{
			{ID: "farville.farm", Title: "Farville", Category: "games", IndexedAt: 100, UpdatedAt: 100},
			{ID: "gigbot.xyz", Title: "GigBot", Category: "finance", IndexedAt: 200, UpdatedAt: 200},
		},
	}
	if err := st.Save(c); err != nil {
		t.Fatal(err)
	}
	if err := st.WriteViews(c, 1, 1); err != nil {
		t.Fatal(err)
	}

	router := gin.New()
	NewHandler(NewProvider(st), rec, runs).RegisterRoutes(router)
	return router
}

func doGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListCatalog(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{}, &stubRuns{})

	w := doGet(router, "/catalog?category=games")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Total int          `json:"total"`
		Items []models.App `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 || resp.Items[0].ID != "farville.farm" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestGetByID(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{}, &stubRuns{})

	w := doGet(router, "/catalog/gigbot.xyz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var app models.App
	if err := json.Unmarshal(w.Body.Bytes(), &app); err != nil {
		t.Fatal(err)
	}
	if app.Title != "GigBot" {
		t.Errorf("title = %q", app.Title)
	}

	if w := doGet(router, "/catalog/nope.example.com"); w.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", w.Code)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{}, &stubRuns{})

	w := doGet(router, "/categories")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var cats []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cats); err != nil {
		t.Fatal(err)
	}
	if len(cats) != 13 || cats[0].ID != "games" {
		t.Fatalf("categories = %+v", cats)
	}
}

func TestViewEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{}, &stubRuns{})

	for _, path := range []string{"/featured", "/top", "/new"} {
		w := doGet(router, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, w.Code)
			continue
		}
		var apps []models.App
		if err := json.Unmarshal(w.Body.Bytes(), &apps); err != nil {
			t.Errorf("%s: %v", path, err)
		}
	}

	// /top was derived with n=1
	w := doGet(router, "/top")
	var apps []models.App
	if err := json.Unmarshal(w.Body.Bytes(), &apps); err != nil {
		t.Fatal(err)
	}
	if len(apps) != 1 || apps[0].ID != "farville.farm" {
		t.Fatalf("/top = %+v", apps)
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	rec := &stubRecommender{apps: []models.App{{ID: "rec.example.com"}}}
	router := newTestRouter(t, rec, &stubRuns{})

	w := doGet(router, "/recommendations?fid=42")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if rec.gotFID != 42 {
		t.Errorf("fid = %d, want 42", rec.gotFID)
	}
	if got := w.Header().Get("Cache-Control"); got != "public, s-maxage=86400, stale-while-revalidate=43200" {
		t.Errorf("Cache-Control = %q", got)
	}

	var apps []models.App
	if err := json.Unmarshal(w.Body.Bytes(), &apps); err != nil {
		t.Fatal(err)
	}
	if len(apps) != 1 || apps[0].ID != "rec.example.com" {
		t.Fatalf("apps = %+v", apps)
	}
}

func TestRecommendationsRequiresFID(t *testing.T) {
	router := newTestRouter(t, &stubRecommender{}, &stubRuns{})

	if w := doGet(router, "/recommendations"); w.Code != http.StatusBadRequest {
		t.Errorf("missing fid status = %d, want 400", w.Code)
	}
	if w := doGet(router, "/recommendations?fid=abc"); w.Code != http.StatusBadRequest {
		t.Errorf("bad fid status = %d, want 400", w.Code)
	}
	if w := doGet(router, "/recommendations?fid=-1"); w.Code != http.StatusBadRequest {
		t.Errorf("negative fid status = %d, want 400", w.Code)
	}
}

func TestSyncsEndpoint(t *testing.T) {
	runs := &stubRuns{reports: []models.SyncReport{{
		ID:        "run-1",
		StartedAt: time.Unix(1_000_000, 0).UTC(),
		Total:     10,
		New:       2,
	}}}
	router := newTestRouter(t, &stubRecommender{}, runs)

	w := doGet(router, "/syncs")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var got []models.SyncReport
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "run-1" || got[0].Total != 10 {
		t.Fatalf("syncs = %+v", got)
	}
}

func TestEmptyCatalogServes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	st := store.New(t.TempDir()) // nothing persisted yet

	router := gin.New()
	NewHandler(NewProvider(st), &stubRecommender{}, &stubRuns{}).RegisterRoutes(router)

	w := doGet(router, "/catalog")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, read path must not surface sync absence", w.Code)
	}
	var resp struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 0 {
		t.Errorf("total = %d", resp.Total)
	}
}

func TestProviderReloadsOnChange(t *testing.T) {
	st := store.New(t.TempDir())
	p := NewProvider(st)

	if err := st.Save(&models.Catalog{TotalItems: 1, Apps: []models.App{{ID: "a.example.com"}}}); err != nil {
		t.Fatal(err)
	}
	c, err := p.Catalog()
	if err != nil || c.TotalItems != 1 {
		t.Fatalf("first load: %v %+v", err, c)
	}

	// mtime granularity on some filesystems is one second
	time.Sleep(1100 * time.Millisecond)

	if err := st.Save(&models.Catalog{TotalItems: 2, Apps: []models.App{{ID: "a.example.com"}, {ID: "b.example.com"}}}); err != nil {
		t.Fatal(err)
	}
	c, err = p.Catalog()
	if err != nil {
		t.Fatal(err)
	}
	if c.TotalItems != 2 {
		t.Errorf("provider served stale snapshot: totalItems = %d", c.TotalItems)
	}
}
