package services

import (
	"context"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
)

// PreferenceReaderSvc defines read operations for user currency preferences.
type PreferenceReaderSvc interface {
	// GetPreference retrieves the caller's preference record.
	// Returns apperrors.ErrPreferencesNotFound when none exists.
	GetPreference(ctx context.Context, userID string) (*domain.UserCurrencyPreference, error)
}

// PreferenceWriterSvc defines write operations for user currency preferences.
type PreferenceWriterSvc interface {
	// UpsertPreference creates or wholesale-replaces the caller's allow-list.
	// It reports whether a new record was created.
	UpsertPreference(ctx context.Context, userID string, currencies []string) (*domain.UserCurrencyPreference, bool, error)

	// GetOrCreatePreference returns the caller's preference record,
	// provisioning one with an empty allow-list when none exists. It reports
	// whether a new record was created.
	GetOrCreatePreference(ctx context.Context, userID string) (*domain.UserCurrencyPreference, bool, error)

	// PatchPreference sparsely updates the caller's preference record: a nil
	// currencies pointer leaves the allow-list unchanged. Returns
	// apperrors.ErrPreferencesNotFound when no record exists.
	PatchPreference(ctx context.Context, userID string, currencies *[]string) (*domain.UserCurrencyPreference, error)
}

// PreferenceSvcFacade combines all preference-related service interfaces.
type PreferenceSvcFacade interface {
	PreferenceReaderSvc
	PreferenceWriterSvc
}
