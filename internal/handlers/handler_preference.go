package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
	"github.com/fxvault/fxvault_backend/internal/dto"
	"github.com/fxvault/fxvault_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler handles HTTP requests related to the caller's currency
// allow-list.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{
		preferenceService: ps,
	}
}

// RegisterPreferenceRoutes registers routes related to user preferences.
func RegisterPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(preferenceService)

	preferences := rg.Group("/user-preferences")
	{
		preferences.GET("", h.getPreferences)
		preferences.POST("", h.upsertPreferences)
		preferences.PATCH("", h.patchPreferences)
	}
}

// getPreferences godoc
// @Summary Get the caller's currency preferences
// @Description Returns the caller's preference record, provisioning an empty allow-list on first access
// @Tags user-preferences
// @Produce  json
// @Success 200 {object} dto.PreferenceResponse
// @Security BearerAuth
// @Router /user-preferences [get]
func (h *preferenceHandler) getPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pref, created, err := h.preferenceService.GetOrCreatePreference(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	if created {
		logger.Info("Provisioned empty preference record on first access")
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

// upsertPreferences godoc
// @Summary Create or replace the caller's allowed-currency set
// @Description Full-replace semantics: the supplied set becomes the entire allow-list
// @Tags user-preferences
// @Accept  json
// @Produce  json
// @Param   preferences body dto.UpsertPreferenceRequest true "Allowed currencies"
// @Success 201 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid or unknown currency codes"
// @Security BearerAuth
// @Router /user-preferences [post]
func (h *preferenceHandler) upsertPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertPreferences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pref, created, err := h.preferenceService.UpsertPreference(c.Request.Context(), userID, req.AllowedCurrencies)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Preferences saved", slog.Bool("created", created), slog.Int("currencies", len(pref.AllowedCurrencies)))
	c.JSON(http.StatusCreated, dto.ToPreferenceResponse(pref))
}

// patchPreferences godoc
// @Summary Partially update the caller's preferences
// @Description Sparse update: omitting allowedCurrencies leaves the stored set unchanged
// @Tags user-preferences
// @Accept  json
// @Produce  json
// @Param   preferences body dto.PatchPreferenceRequest true "Fields to update"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 404 {object} map[string]string "No preferences configured"
// @Security BearerAuth
// @Router /user-preferences [patch]
func (h *preferenceHandler) patchPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PatchPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PatchPreferences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	pref, err := h.preferenceService.PatchPreference(c.Request.Context(), userID, req.AllowedCurrencies)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Preferences patched", slog.Int("currencies", len(pref.AllowedCurrencies)))
	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}
