package dto

import (
	"time"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
)

// UpsertPreferenceRequest defines the full-replace payload for a user's
// currency allow-list.
type UpsertPreferenceRequest struct {
	AllowedCurrencies []string `json:"allowedCurrencies" binding:"required,dive,currencycode"`
}

// PatchPreferenceRequest defines the sparse-update payload. A nil
// AllowedCurrencies leaves the stored allow-list unchanged.
type PatchPreferenceRequest struct {
	AllowedCurrencies *[]string `json:"allowedCurrencies" binding:"omitempty,dive,currencycode"`
}

// PreferenceResponse defines the data returned for a preference record.
type PreferenceResponse struct {
	UserID            string    `json:"userID"`
	AllowedCurrencies []string  `json:"allowedCurrencies"`
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
}

// ToPreferenceResponse converts a domain.UserCurrencyPreference to its DTO.
func ToPreferenceResponse(pref *domain.UserCurrencyPreference) PreferenceResponse {
	return PreferenceResponse{
		UserID:            pref.UserID,
		AllowedCurrencies: pref.AllowedCurrencies,
		CreatedAt:         pref.CreatedAt,
		LastUpdatedAt:     pref.LastUpdatedAt,
	}
}
