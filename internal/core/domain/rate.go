package domain

import "github.com/shopspring/decimal"

// RatePair is an ordered (from, to) currency pair. Pairs are directional:
// (A,B) and (B,A) are distinct keys and are never derived from each other.
type RatePair struct {
	From string
	To   string
}

// RateTable maps target currency codes to their rate against a fixed base
// currency, as returned by the rate provider.
type RateTable map[string]decimal.Decimal

// CurrencyRate pairs a currency code with its current rate against the base
// currency, for listing purposes.
type CurrencyRate struct {
	Code string          `json:"code"`
	Rate decimal.Decimal `json:"rate"`
}
