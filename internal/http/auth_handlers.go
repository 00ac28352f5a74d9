package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash-dashboard/internal/http/middleware"
	"carwash-dashboard/internal/service"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.internalError(c, err, gin.H{"error": "Server error"})
		return
	}

	h.setSessionCookie(c, token, int(h.cookieTTL.Seconds()))

	// The user object goes back without the password hash (stripped by the
	// model's JSON tags).
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

func (h *Handler) logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := h.auth.Logout(c.Request.Context(), token); err != nil {
		h.internalError(c, err, gin.H{"error": "Logout failed"})
		return
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) checkAuth(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
		return
	}

	user, err := h.auth.CheckAuth(c.Request.Context(), principal.UserID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		h.internalError(c, err, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          user,
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.cookieSecure, true)
}
