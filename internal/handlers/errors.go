package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fixed_assets_app/internal/apperrors"
	"github.com/SscSPs/fixed_assets_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondServiceError writes the HTTP status matching a service error.
// Unexpected errors are logged and reported as 500 with failMessage.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, failMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidState):
		logger.Warn("Request rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("User not authorized", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting update", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(failMessage, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": failMessage})
	}
}

// respondBindError writes a 400 for a request that failed to bind.
func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	if fields := validationErrorFields(err); fields != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + ": " + err.Error()})
}

// requestUser returns the authenticated user or writes a 401.
func requestUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
