package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"tmdb-explorer-service/internal/model"
	"tmdb-explorer-service/internal/render"
	"tmdb-explorer-service/internal/repository"
	"tmdb-explorer-service/internal/service"

	"github.com/gin-gonic/gin"
)

// FailedDetail is the placeholder shown when a detail fetch fails
const FailedDetail = "Failed to load details"

// DetailHandler handles detail view requests
type DetailHandler struct {
	tmdb     *service.TMDBService
	renderer *render.Renderer
	cache    *repository.Cache
	ttl      time.Duration
}

// NewDetailHandler creates a new DetailHandler
func NewDetailHandler(tmdb *service.TMDBService, renderer *render.Renderer, cache *repository.Cache, ttl time.Duration) *DetailHandler {
	return &DetailHandler{
		tmdb:     tmdb,
		renderer: renderer,
		cache:    cache,
		ttl:      ttl,
	}
}

// GetDetail renders the detail layout for one item. The detail view is
// modal: it never touches the session navigation context.
// GET /api/v1/detail/:kind/:id
func (h *DetailHandler) GetDetail(c *gin.Context) {
	ctx := context.Background()

	kind := c.Param("kind")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid item id",
		})
		return
	}

	cacheKey := fmt.Sprintf("tmdb:detail:%s:%d", kind, id)
	source := "fresh"

	var payload *model.DetailPayload
	var cached model.DetailPayload
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		c.Set("cache_source", "redis-cache")
		source = "redis-cache"
		payload = &cached
	} else {
		payload = h.tmdb.FetchDetail(kind, id)
		if payload != nil {
			h.cache.Set(ctx, cacheKey, payload, h.ttl)
		}
	}

	if payload == nil {
		c.JSON(http.StatusOK, model.APIResponse{
			Code: 200,
			Data: gin.H{"placeholder": FailedDetail},
		})
		return
	}

	var view interface{}
	if kind == service.KindPerson {
		view = h.renderer.PersonDetail(payload)
	} else {
		view = h.renderer.MovieDetail(kind, payload)
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:   200,
		Data:   view,
		Source: source,
	})
}

// DeleteDetailCache clears one item's detail cache
// DELETE /api/v1/detail/:kind/:id
func (h *DetailHandler) DeleteDetailCache(c *gin.Context) {
	ctx := context.Background()

	kind := c.Param("kind")
	id := c.Param("id")

	h.cache.Delete(ctx, fmt.Sprintf("tmdb:detail:%s:%s", kind, id))

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("detail cache for %s %s cleared", kind, id),
	})
}

// DeleteAllDetailCache clears all detail cache
// DELETE /api/v1/detail
func (h *DetailHandler) DeleteAllDetailCache(c *gin.Context) {
	ctx := context.Background()

	deleted, err := h.cache.DeletePattern(ctx, "tmdb:detail:*")
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.APIResponse{
			Code:  500,
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("detail cache cleared (%d keys)", deleted),
	})
}
