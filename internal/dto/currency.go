package dto

import (
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRateResponse defines the data returned for a quoted currency.
type CurrencyRateResponse struct {
	Code string          `json:"code"`
	Rate decimal.Decimal `json:"rate"`
}

// ToListCurrencyRateResponse converts quoted currencies to response DTOs.
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(rates))
	for i, r := range rates {
		res[i] = CurrencyRateResponse{Code: r.Code, Rate: r.Rate}
	}
	return res
}
