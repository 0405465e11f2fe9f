package middleware

import (
	"context"
	"strings"
	"time"

	"tmdb-explorer-service/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Metrics returns a middleware that records API metrics
func Metrics(metrics *repository.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only track API endpoints
		if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Next()
			return
		}

		start := time.Now()

		c.Next()

		latency := float64(time.Since(start).Milliseconds())
		status := c.Writer.Status()

		cacheHit := c.GetString("cache_source") == "redis-cache"

		ctx := context.Background()
		path := normalizePath(c.Request.URL.Path)

		if err := metrics.RecordAPICall(ctx, path, status, latency, cacheHit); err != nil {
			log.Warn().Err(err).Msg("Failed to record metrics")
		}
	}
}

// normalizePath groups paths with numeric ids, e.g.
// /api/v1/detail/movie/550 -> /api/v1/detail/movie/:id
func normalizePath(path string) string {
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if isNumeric(part) {
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
