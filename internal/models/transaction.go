package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row shape for a persisted conversion.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	CustomerID     string          `db:"customer_id"`
	InputAmount    decimal.Decimal `db:"input_amount"`
	InputCurrency  string          `db:"input_currency"`
	OutputAmount   decimal.Decimal `db:"output_amount"`
	OutputCurrency string          `db:"output_currency"`
	CreatedAt      time.Time       `db:"created_at"`
}
