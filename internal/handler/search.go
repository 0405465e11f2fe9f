package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tmdb-explorer-service/internal/model"
	"tmdb-explorer-service/internal/render"
	"tmdb-explorer-service/internal/repository"
	"tmdb-explorer-service/internal/service"
	"tmdb-explorer-service/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SearchHandler handles search API requests
type SearchHandler struct {
	tmdb     *service.TMDBService
	renderer *render.Renderer
	session  *session.Session
	cache    *repository.Cache
	ttl      time.Duration
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(tmdb *service.TMDBService, renderer *render.Renderer, sess *session.Session, cache *repository.Cache, ttl time.Duration) *SearchHandler {
	return &SearchHandler{
		tmdb:     tmdb,
		renderer: renderer,
		session:  sess,
		cache:    cache,
		ttl:      ttl,
	}
}

// Search runs a free-text search and renders the result grid
// GET /api/v1/search?kind=movie&q=alien
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := context.Background()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "Please enter a search query",
		})
		return
	}
	kind := c.DefaultQuery("kind", service.KindMovie)

	token := h.session.BeginSearch(kind, query)

	log.Info().Str("kind", kind).Str("query", query).Msg("🔍 Searching TMDb")

	cacheKey := fmt.Sprintf("tmdb:search:%s:%s", kind, query)
	source := "fresh"

	var payload model.ListingResponse
	if err := h.cache.Get(ctx, cacheKey, &payload); err == nil {
		c.Set("cache_source", "redis-cache")
		source = "redis-cache"
	} else {
		payload = *h.tmdb.FetchSearch(kind, query)
		if len(payload.Results) > 0 {
			h.cache.Set(ctx, cacheKey, payload, h.ttl)
		}
	}

	grid := h.renderer.Grid(render.GridContext{
		Kind:  kind,
		Query: query,
	}, &payload, h.session.IsFavorite)
	if c.Query("check_images") == "true" {
		h.tmdb.CheckImages(grid.Cards)
	}

	applied := h.session.ApplyGrid(token, grid)

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"data":    grid,
		"applied": applied,
		"source":  source,
		"query":   query,
	})
}

// DeleteSearchCache clears all search cache
// DELETE /api/v1/search
func (h *SearchHandler) DeleteSearchCache(c *gin.Context) {
	ctx := context.Background()

	deleted, err := h.cache.DeletePattern(ctx, "tmdb:search:*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("search cache cleared (%d keys)", deleted),
	})
}
