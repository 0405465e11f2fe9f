package handler

import (
	"net/http"

	"tmdb-explorer-service/internal/model"
	"tmdb-explorer-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ImageHandler proxies image assets from the TMDb CDN. A failed fetch
// degrades to a placeholder response for that one image; it never
// affects any other card.
type ImageHandler struct {
	tmdb *service.TMDBService
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(tmdb *service.TMDBService) *ImageHandler {
	return &ImageHandler{tmdb: tmdb}
}

// GetImage fetches one image by CDN size token and path
// GET /api/v1/image?size=w200&path=/abc123.jpg
func (h *ImageHandler) GetImage(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "missing image path",
		})
		return
	}
	size := c.DefaultQuery("size", "w200")

	data, contentType, err := h.tmdb.FetchImage(size, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Image fetch failed")
		c.JSON(http.StatusBadGateway, model.APIResponse{
			Code:  502,
			Error: "Image unavailable",
		})
		return
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.Data(http.StatusOK, contentType, data)
}
