package handler

import (
	"fmt"
	"net/http"

	"tmdb-explorer-service/internal/model"
	"tmdb-explorer-service/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles the simulated login. There is no backend, no
// credential store and no token: any non-empty username/password pair
// is accepted and only changes the displayed name.
type AuthHandler struct {
	session *session.Session
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sess *session.Session) *AuthHandler {
	return &AuthHandler{session: sess}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login performs the simulated login
// POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "invalid request body",
		})
		return
	}

	if !h.session.Login(req.Username, req.Password) {
		c.JSON(http.StatusBadRequest, model.APIResponse{
			Code:  400,
			Error: "Please enter both username and password.",
		})
		return
	}

	log.Info().Str("username", req.Username).Msg("Logged in")

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: fmt.Sprintf("Logged in as %s", req.Username),
		Data:    gin.H{"label": fmt.Sprintf("Welcome, %s", req.Username)},
	})
}

// Logout clears the simulated login
// POST /api/v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Logout()

	c.JSON(http.StatusOK, model.APIResponse{
		Code:    200,
		Message: "Logged out",
		Data:    gin.H{"label": "Login"},
	})
}

// GetSession returns the current navigation context and login state
// GET /api/v1/session
func (h *AuthHandler) GetSession(c *gin.Context) {
	username, loggedIn := h.session.Username()

	c.JSON(http.StatusOK, model.APIResponse{
		Code: 200,
		Data: gin.H{
			"context":   h.session.Context(),
			"logged_in": loggedIn,
			"username":  username,
		},
	})
}
