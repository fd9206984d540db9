package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError maps a pipeline error to its HTTP status and writes the shared
// error envelope. Every endpoint goes through this helper so that the
// response shape is identical across the API. Unclassified errors become a
// generic 500 without leaking internals.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden currency", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPreferencesNotFound):
		logger.Warn("Preferences not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "No currency preferences configured"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		logger.Error("Rate provider unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching exchange rate from external API"})
	default:
		logger.Error("Internal error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
