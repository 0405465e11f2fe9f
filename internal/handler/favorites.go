package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"tmdb-explorer-service/internal/model"
	"tmdb-explorer-service/internal/render"
	"tmdb-explorer-service/internal/session"

	"github.com/gin-gonic/gin"
)

// FavoritesHandler handles the session-local favorite set. Toggling
// never calls the network and nothing here survives a restart.
type FavoritesHandler struct {
	session *session.Session
}

// NewFavoritesHandler creates a new FavoritesHandler
func NewFavoritesHandler(sess *session.Session) *FavoritesHandler {
	return &FavoritesHandler{session: sess}
}

// ToggleFavorite adds or removes an item from the favorite set
// POST /api/v1/favorites/:id?title=Alien
func (h *FavoritesHandler) ToggleFavorite(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid item id",
		})
		return
	}

	title := c.DefaultQuery("title", fmt.Sprintf("item %d", id))

	favorited := h.session.ToggleFavorite(id)

	label := render.LabelFavorite
	message := fmt.Sprintf("Removed %s from favorites", title)
	if favorited {
		label = render.LabelUnfavorite
		message = fmt.Sprintf("Added %s to favorites", title)
	}

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: message,
		Data: gin.H{
			"id":        id,
			"favorited": favorited,
			"label":     label,
		},
	})
}

// GetFavorites lists the favorited item ids
// GET /api/v1/favorites
func (h *FavoritesHandler) GetFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: gin.H{"ids": h.session.Favorites()},
	})
}
