package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single completed currency conversion. Records are
// append-only: once persisted no field changes, and OutputAmount is always
// populated consistently with InputAmount and the rate in effect at creation.
type Transaction struct {
	TransactionID  string          `json:"transactionID"` // Primary Key (UUID)
	CustomerID     string          `json:"customerID"`
	InputAmount    decimal.Decimal `json:"inputAmount"` // Positive, at most 2 decimal places
	InputCurrency  string          `json:"inputCurrency"`
	OutputAmount   decimal.Decimal `json:"outputAmount"` // InputAmount * rate, rounded to 2 places
	OutputCurrency string          `json:"outputCurrency"`
	CreatedAt      time.Time       `json:"createdAt"`
}
