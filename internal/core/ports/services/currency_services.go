package services

import (
	"context"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
)

// CurrencySvcFacade lists the currencies currently quoted by the rate provider.
type CurrencySvcFacade interface {
	// ListCurrencies returns all quoted currency codes with their current
	// rate against the base currency, sorted by code.
	ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error)
}
