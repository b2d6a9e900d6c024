package apps

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fappstore/internal/catalog"
	"fappstore/internal/store"
	"fappstore/pkg/models"
)

// Recommender fetches the personalized feed. Implemented by *neynar.Client.
type Recommender interface {
	Recommendations(ctx context.Context, fid int64) []models.App
}

// RunReader exposes recent sync run reports. Implemented by *runlog.Repo.
type RunReader interface {
	Recent(ctx context.Context, n int) ([]models.SyncReport, error)
}

type Handler struct {
	Provider    *Provider
	Recommender Recommender
	Runs        RunReader
}

func NewHandler(provider *Provider, rec Recommender, runs RunReader) *Handler {
	return &Handler{Provider: provider, Recommender: rec, Runs: runs}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	cat := r.Group("/catalog")
	cat.GET("", h.list)        // GET /catalog
	cat.GET("/:id", h.getByID) // GET /catalog/:id

	r.GET("/categories", h.categories)
	r.GET("/featured", h.view(store.FeaturedFile))
	r.GET("/top", h.view(store.TopFile))
	r.GET("/new", h.view(store.NewFile))
	r.GET("/recommendations", h.recommendations)
	r.GET("/syncs", h.syncs)
}

func (h *Handler) list(c *gin.Context) {
	q := ListQuery{
		Q:        c.Query("q"),
		Category: strings.TrimSpace(c.Query("category")),
		Tag:      strings.TrimSpace(c.Query("tag")),
		Limit:    parseInt(c.Query("limit"), 20),
		Offset:   parseInt(c.Query("offset"), 0),
	}

	data, err := h.Provider.Catalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}

	items, total := Filter(data.Apps, q)
	c.JSON(http.StatusOK, gin.H{
		"lastUpdated": data.LastUpdated,
		"total":       total,
		"limit":       q.Limit,
		"offset":      q.Offset,
		"items":       items,
	})
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")

	data, err := h.Provider.Catalog()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
		return
	}

	for _, app := range data.Apps {
		if app.ID == id {
			c.JSON(http.StatusOK, app)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Categories)
}

func (h *Handler) view(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apps, err := h.Provider.View(name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "view unavailable"})
			return
		}
		c.JSON(http.StatusOK, apps)
	}
}

func (h *Handler) recommendations(c *gin.Context) {
	fidStr := c.Query("fid")
	if strings.TrimSpace(fidStr) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fid is required"})
		return
	}
	fid, err := strconv.ParseInt(fidStr, 10, 64)
	if err != nil || fid <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fid must be a positive integer"})
		return
	}

	apps := h.Recommender.Recommendations(c.Request.Context(), fid)

	// recommendations refresh daily upstream, let clients cache accordingly
	c.Header("Cache-Control", "public, s-maxage=86400, stale-while-revalidate=43200")
	c.JSON(http.StatusOK, apps)
}

func (h *Handler) syncs(c *gin.Context) {
	if h.Runs == nil {
		c.JSON(http.StatusOK, []models.SyncReport{})
		return
	}
	runs, err := h.Runs.Recent(c.Request.Context(), parseInt(c.Query("limit"), 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "runs unavailable"})
		return
	}
	c.JSON(http.StatusOK, runs)
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
