// Package currencycatalog provides a static table of known ISO-4217 currency
// codes. Preference writes validate against this catalog so that no network
// round-trip to the rate provider happens on the write path.
package currencycatalog

import (
	"sort"
	"strings"
)

// knownCodes is a snapshot of the codes quoted by the upstream rate provider.
var knownCodes = []string{
	"AED", "ARS", "AUD", "BGN", "BRL", "CAD", "CHF", "CLP", "CNY", "COP",
	"CZK", "DKK", "EGP", "EUR", "GBP", "GHS", "HKD", "HUF", "IDR", "ILS",
	"INR", "JPY", "KES", "KRW", "KWD", "MAD", "MXN", "MYR", "NGN", "NOK",
	"NZD", "PHP", "PKR", "PLN", "QAR", "RON", "RSD", "RUB", "SAR", "SEK",
	"SGD", "THB", "TRY", "TWD", "TZS", "UAH", "UGX", "USD", "VND", "ZAR",
}

// Catalog is an immutable set of known currency codes.
type Catalog struct {
	codes map[string]struct{}
}

// New returns a catalog seeded with the default known-code snapshot.
func New() *Catalog {
	return NewWithCodes(knownCodes)
}

// NewWithCodes returns a catalog containing exactly the given codes.
func NewWithCodes(codes []string) *Catalog {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[strings.ToUpper(code)] = struct{}{}
	}
	return &Catalog{codes: set}
}

// Contains reports whether code is a known currency code.
func (c *Catalog) Contains(code string) bool {
	_, ok := c.codes[strings.ToUpper(code)]
	return ok
}

// Codes returns all known codes in sorted order.
func (c *Catalog) Codes() []string {
	out := make([]string, 0, len(c.codes))
	for code := range c.codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
