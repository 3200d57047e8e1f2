package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TanpaKamil/admin/internal/http/middleware"
	"github.com/TanpaKamil/admin/internal/services"
	"github.com/TanpaKamil/admin/internal/utils"
)

type AuthHandler struct {
	auth         *services.AuthService
	secureCookie bool
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
}

func NewAuthHandler(auth *services.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookie: secureCookie}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Missing required fields"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	// Session cookie without Max-Age: the 24h expiry lives in the token.
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, "Bearer "+result.AccessToken, 0, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, LoginResponse{
		Message:     "ok",
		AccessToken: result.AccessToken,
	})
}

// Logout replaces the session cookie with an empty, already-expired one so
// the browser discards it immediately. The server keeps no session state to
// revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, utils.MessageResponse{Message: "Logged out successfully"})
}
