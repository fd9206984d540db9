package providers

import (
	"context"
	"time"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateProvider fetches a full rate table anchored to the given base currency
// from an external source. Implementations must honour context cancellation
// and bound the call with a timeout.
type RateProvider interface {
	FetchTable(ctx context.Context, baseCurrency string) (domain.RateTable, error)
}

// RateCache is a time-bounded cache of resolved rates keyed by directional
// currency pair. Entries are advisory: a miss or expired entry simply means
// the caller must go back to the provider. Implementations must be safe for
// concurrent use.
type RateCache interface {
	// Get returns the cached rate for the pair, if present and not expired.
	Get(pair domain.RatePair) (decimal.Decimal, bool)
	// Set stores the rate for the pair, expiring after ttl.
	Set(pair domain.RatePair, rate decimal.Decimal, ttl time.Duration)
}

// CurrencyCatalog is the static set of known currency codes used to validate
// preference writes without a network round-trip.
type CurrencyCatalog interface {
	// Contains reports whether code is a known currency code.
	Contains(code string) bool
	// Codes returns all known codes in sorted order.
	Codes() []string
}
