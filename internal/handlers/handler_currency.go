package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
	"github.com/fxvault/fxvault_backend/internal/dto"
	"github.com/fxvault/fxvault_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to quoted currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
	}
}

// listCurrencies godoc
// @Summary List quoted currencies
// @Description Retrieves all currency codes quoted by the rate provider with their current rate against the base currency
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 502 {object} map[string]string "Rate provider unavailable"
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}
