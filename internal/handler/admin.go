package handler

import (
	"context"
	"net/http"

	"tmdb-explorer-service/internal/repository"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles status and analytics endpoints
type AdminHandler struct {
	cache   *repository.Cache
	metrics *repository.Metrics
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(cache *repository.Cache, metrics *repository.Metrics) *AdminHandler {
	return &AdminHandler{
		cache:   cache,
		metrics: metrics,
	}
}

// GetStatus returns service status
// GET /api/v1/status
func (h *AdminHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"cache_enabled": h.cache.Enabled(),
	})
}

// GetAnalytics returns API analytics
// GET /api/v1/analytics
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	ctx := context.Background()

	stats, err := h.metrics.GetOverallStats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  500,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": stats,
	})
}

// GetEndpointStats returns stats for a specific endpoint
// GET /api/v1/analytics/endpoint?path=/api/v1/listing
func (h *AdminHandler) GetEndpointStats(c *gin.Context) {
	ctx := context.Background()
	path := c.Query("path")

	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":  400,
			"error": "path parameter required",
		})
		return
	}

	stats, err := h.metrics.GetAPIStats(ctx, path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  500,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code": 200,
		"data": stats,
	})
}

// ResetAnalytics resets all analytics data
// DELETE /api/v1/analytics
func (h *AdminHandler) ResetAnalytics(c *gin.Context) {
	ctx := context.Background()

	if err := h.metrics.ResetMetrics(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  500,
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    200,
		"message": "all analytics data reset",
	})
}
