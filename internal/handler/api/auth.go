package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/httperr"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	sessionCommands commands.SessionCommands
	snapshotQueries queries.SnapshotQueries
}

func NewAuthHandler(sessionCommands commands.SessionCommands, snapshotQueries queries.SnapshotQueries) *AuthHandler {
	return &AuthHandler{
		sessionCommands: sessionCommands,
		snapshotQueries: snapshotQueries,
	}
}

// @Summary User login
// @Description Mock credential pass-through login. Logging in under a new
// @Description username resets the cart; favorites are kept.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.sessionCommands.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLoginFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid username", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary User logout
// @Description Clears identity, cart and favorites.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessionCommands.Logout(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated identity
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.IdentityResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	snap, err := h.snapshotQueries.Current(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if snap.Auth == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromIdentityView(snap.Auth))
}
