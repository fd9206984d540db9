package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
)

// CurrencyService lists the currencies currently quoted by the rate provider.
type CurrencyService struct {
	rateSvc portssvc.RateResolverSvc
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(rateSvc portssvc.RateResolverSvc) *CurrencyService {
	return &CurrencyService{rateSvc: rateSvc}
}

// ListCurrencies returns all quoted currency codes with their current rate
// against the base currency, sorted by code.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	table, err := s.rateSvc.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}

	rates := make([]domain.CurrencyRate, 0, len(table))
	for code, rate := range table {
		rates = append(rates, domain.CurrencyRate{Code: code, Rate: rate})
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Code < rates[j].Code })
	return rates, nil
}
