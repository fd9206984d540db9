package mapping

import (
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/models"
)

// ToModelPreference converts a domain.UserCurrencyPreference to its row shape.
func ToModelPreference(pref domain.UserCurrencyPreference) models.UserCurrencyPreference {
	return models.UserCurrencyPreference{
		UserID:            pref.UserID,
		AllowedCurrencies: pref.AllowedCurrencies,
		CreatedAt:         pref.CreatedAt,
		CreatedBy:         pref.CreatedBy,
		LastUpdatedAt:     pref.LastUpdatedAt,
		LastUpdatedBy:     pref.LastUpdatedBy,
	}
}

// ToDomainPreference converts a database row back to the domain type.
func ToDomainPreference(m models.UserCurrencyPreference) domain.UserCurrencyPreference {
	return domain.UserCurrencyPreference{
		UserID:            m.UserID,
		AllowedCurrencies: m.AllowedCurrencies,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
