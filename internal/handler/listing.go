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

// ListingHandler handles listing navigation requests
type ListingHandler struct {
	tmdb     *service.TMDBService
	renderer *render.Renderer
	session  *session.Session
	cache    *repository.Cache
	ttl      time.Duration
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(tmdb *service.TMDBService, renderer *render.Renderer, sess *session.Session, cache *repository.Cache, ttl time.Duration) *ListingHandler {
	return &ListingHandler{
		tmdb:     tmdb,
		renderer: renderer,
		session:  sess,
		cache:    cache,
		ttl:      ttl,
	}
}

// GetListing loads a listing grid. Omitted parameters default to the
// current session context, so a bare call reloads the visible grid.
// GET /api/v1/listing?kind=movie&filter=trending&window=day
func (h *ListingHandler) GetListing(c *gin.Context) {
	ctx := context.Background()
	current := h.session.Context()

	kind := c.DefaultQuery("kind", current.Kind)
	filter := c.DefaultQuery("filter", current.Filter)
	window := c.DefaultQuery("window", current.Window)

	token := h.session.BeginNavigation(kind, filter, window)

	cacheKey := fmt.Sprintf("tmdb:listing:%s:%s:%s", kind, filter, window)
	source := "fresh"

	var payload model.ListingResponse
	if err := h.cache.Get(ctx, cacheKey, &payload); err == nil {
		c.Set("cache_source", "redis-cache")
		source = "redis-cache"
	} else {
		payload = *h.tmdb.FetchListing(kind, filter, window)
		if len(payload.Results) > 0 {
			h.cache.Set(ctx, cacheKey, payload, h.ttl)
		}
	}

	grid := h.renderer.Grid(render.GridContext{
		Kind:   kind,
		Filter: filter,
		Window: window,
	}, &payload, h.session.IsFavorite)
	if c.Query("check_images") == "true" {
		h.tmdb.CheckImages(grid.Cards)
	}

	applied := h.session.ApplyGrid(token, grid)
	if !applied {
		log.Debug().Str("kind", kind).Str("filter", filter).Msg("Listing superseded by a newer navigation")
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"data":    grid,
		"applied": applied,
		"source":  source,
	})
}

// GetGrid returns the currently visible grid
// GET /api/v1/grid
func (h *ListingHandler) GetGrid(c *gin.Context) {
	grid := h.session.Grid()
	if grid == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code:    200,
			Message: "no content loaded yet",
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: grid,
	})
}

// DeleteListingCache clears all listing cache
// DELETE /api/v1/listing
func (h *ListingHandler) DeleteListingCache(c *gin.Context) {
	ctx := context.Background()

	deleted, err := h.cache.DeletePattern(ctx, "tmdb:listing:*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("listing cache cleared (%d keys)", deleted),
	})
}
