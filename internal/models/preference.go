package models

import "time"

// UserCurrencyPreference is the database row shape for a user's allow-list.
// AllowedCurrencies is stored as a JSONB document, matching the wire format.
type UserCurrencyPreference struct {
	UserID            string    `db:"user_id"`
	AllowedCurrencies []string  `db:"allowed_currencies"`
	CreatedAt         time.Time `db:"created_at"`
	CreatedBy         string    `db:"created_by"`
	LastUpdatedAt     time.Time `db:"last_updated_at"`
	LastUpdatedBy     string    `db:"last_updated_by"`
}
