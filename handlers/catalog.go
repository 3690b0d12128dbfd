package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/osshare/platform-api/internal/catalog"
	"github.com/osshare/platform-api/internal/catalog/store"
	"github.com/osshare/platform-api/pkg/metrics"
)

// CatalogHandler serves the list/create endpoints for datasets, tools and
// snippets. The store is injected at startup; a nil store means the service
// runs degraded (writes rejected, reads report the store as unavailable).
type CatalogHandler struct {
	store store.Store
}

func NewCatalogHandler(s store.Store) *CatalogHandler {
	return &CatalogHandler{store: s}
}

func (h *CatalogHandler) Register(r *gin.Engine) {
	r.GET("/api/datasets", func(c *gin.Context) { h.list(c, catalog.DatasetKind) })
	r.POST("/api/datasets", h.createDataset)
	r.GET("/api/tools", func(c *gin.Context) { h.list(c, catalog.ToolKind) })
	r.POST("/api/tools", h.createTool)
	r.GET("/api/snippets", func(c *gin.Context) { h.list(c, catalog.SnippetKind) })
	r.POST("/api/snippets", h.createSnippet)
}

// list handles GET /api/<kind>s with optional tag, q, language and limit
// query parameters. Invalid limit values fall back to the default.
func (h *CatalogHandler) list(c *gin.Context, kind catalog.Kind) {
	metrics.ListRequests.WithLabelValues(kind.Name).Inc()
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": store.ErrUnavailable.Error()})
		return
	}

	q := catalog.Query{Tag: c.Query("tag"), Text: c.Query("q")}
	if kind.LanguageFilter {
		q.Language = c.Query("language")
	}
	limit := int64(store.DefaultLimit)
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	docs, err := h.store.List(c.Request.Context(), kind.Collection, catalog.BuildFilter(kind, q), limit)
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, catalog.Serialize(d))
	}
	c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) createDataset(c *gin.Context) {
	var payload catalog.Dataset
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.Normalize()
	h.insert(c, catalog.DatasetKind, &payload)
}

func (h *CatalogHandler) createTool(c *gin.Context) {
	var payload catalog.Tool
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.Normalize()
	h.insert(c, catalog.ToolKind, &payload)
}

func (h *CatalogHandler) createSnippet(c *gin.Context) {
	var payload catalog.Snippet
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload.Normalize()
	h.insert(c, catalog.SnippetKind, &payload)
}

// insert persists a validated payload and answers 201 {"id": ...}.
// Store failures on the write path surface as 400, matching the API contract.
func (h *CatalogHandler) insert(c *gin.Context, kind catalog.Kind, doc interface{}) {
	if h.store == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": store.ErrUnavailable.Error()})
		return
	}
	id, err := h.store.Insert(c.Request.Context(), kind.Collection, doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.DocumentsCreated.WithLabelValues(kind.Name).Inc()
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
