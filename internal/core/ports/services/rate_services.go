package services

import (
	"context"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc produces a single authoritative rate for a currency pair,
// consulting the cache before the external provider.
type RateResolverSvc interface {
	// Resolve returns the rate for converting fromCode into toCode.
	// Returns apperrors.ErrUpstreamUnavailable when the provider cannot
	// supply a rate. No retries are performed at this layer.
	Resolve(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error)

	// Table returns the full rate table anchored to the base currency.
	Table(ctx context.Context) (domain.RateTable, error)
}
