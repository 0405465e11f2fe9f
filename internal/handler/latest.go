package handler

import (
	"net/http"

	"tmdb-explorer-service/internal/render"
	"tmdb-explorer-service/internal/service"
	"tmdb-explorer-service/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LatestHandler handles the latest pseudo-filter
type LatestHandler struct {
	tmdb     *service.TMDBService
	renderer *render.Renderer
	session  *session.Session
}

// NewLatestHandler creates a new LatestHandler
func NewLatestHandler(tmdb *service.TMDBService, renderer *render.Renderer, sess *session.Session) *LatestHandler {
	return &LatestHandler{
		tmdb:     tmdb,
		renderer: renderer,
		session:  sess,
	}
}

// GetLatest loads the single most recently added item of a kind as a
// one-element grid. Not cached: the payload changes continuously.
// GET /api/v1/latest?kind=movie
func (h *LatestHandler) GetLatest(c *gin.Context) {
	kind := c.DefaultQuery("kind", h.session.Context().Kind)

	token := h.session.BeginNavigation(kind, service.FilterLatest, service.WindowDay)

	log.Info().Str("kind", kind).Msg("🆕 Loading latest item")

	payload := h.tmdb.FetchLatest(kind)

	grid := h.renderer.Grid(render.GridContext{
		Kind:   kind,
		Filter: service.FilterLatest,
	}, payload, h.session.IsFavorite)
	if c.Query("check_images") == "true" {
		h.tmdb.CheckImages(grid.Cards)
	}

	applied := h.session.ApplyGrid(token, grid)

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"data":    grid,
		"applied": applied,
		"source":  "fresh",
	})
}
