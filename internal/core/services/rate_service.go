package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

// RateService resolves a single authoritative rate for a currency pair,
// consulting the cache before the external provider.
type RateService struct {
	cache        providers.RateCache
	provider     providers.RateProvider
	baseCurrency string
	cacheTTL     time.Duration
}

// NewRateService creates a new RateService. baseCurrency anchors every
// provider fetch (the upstream table is always quoted against it).
func NewRateService(cache providers.RateCache, provider providers.RateProvider, baseCurrency string, cacheTTL time.Duration) *RateService {
	return &RateService{
		cache:        cache,
		provider:     provider,
		baseCurrency: strings.ToUpper(baseCurrency),
		cacheTTL:     cacheTTL,
	}
}

// Resolve returns the rate for converting fromCode into toCode.
//
// The cache key is the ordered (from, to) pair; an inverse request is a
// distinct key and always misses. On a miss the provider table is fetched
// once, anchored to the base currency, and the target currency's entry is
// taken from it; the input currency only gates authorization upstream and
// does not rebase the table. Failed fetches and missing codes are never
// cached. No retries happen at this layer.
func (s *RateService) Resolve(ctx context.Context, fromCode, toCode string) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	pair := domain.RatePair{From: fromCode, To: toCode}

	if rate, ok := s.cache.Get(pair); ok {
		return rate, nil
	}

	table, err := s.provider.FetchTable(ctx, s.baseCurrency)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("resolving %s->%s: %w", fromCode, toCode, err)
	}

	rate, ok := table[toCode]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate quoted for %s", apperrors.ErrUpstreamUnavailable, toCode)
	}

	s.cache.Set(pair, rate, s.cacheTTL)
	return rate, nil
}

// Table returns the full provider table anchored to the base currency.
func (s *RateService) Table(ctx context.Context) (domain.RateTable, error) {
	table, err := s.provider.FetchTable(ctx, s.baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("fetching rate table: %w", err)
	}
	return table, nil
}
