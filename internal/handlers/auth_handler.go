package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the caller's resolved identity.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Me returns the authenticated principal
// @Summary     Current principal
// @Description Return the id, email, name and role resolved from the bearer token.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Principal "Principal"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, principal)
}
