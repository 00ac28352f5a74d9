package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash-dashboard/internal/http/middleware"
	"carwash-dashboard/internal/service"
)

func (h *Handler) createUser(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
		return
	}

	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	userID, err := h.users.Create(c.Request.Context(), principal, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Only admins can create new users."})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		case errors.Is(err, service.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		default:
			h.internalError(c, err, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user_id": userID,
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.internalError(c, err, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) resetPassword(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
		return
	}

	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, statusError("Email and new password are required"))
		return
	}

	err := h.users.ResetPassword(c.Request.Context(), principal, req.Email, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, statusError("Access denied. Only admins can reset passwords."))
		case errors.Is(err, service.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, statusError("Email and new password are required"))
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, statusError("User not found"))
		default:
			h.internalError(c, err, statusError("Failed to reset password"))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password has been reset successfully",
	})
}
