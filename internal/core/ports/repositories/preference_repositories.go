package repositories

import (
	"context"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
)

// PreferenceReader defines read operations for user currency preferences.
type PreferenceReader interface {
	// FindPreferenceByUserID retrieves the preference record for a user.
	// Returns apperrors.ErrNotFound when no record exists.
	FindPreferenceByUserID(ctx context.Context, userID string) (*domain.UserCurrencyPreference, error)
}

// PreferenceWriter defines write operations for user currency preferences.
type PreferenceWriter interface {
	// UpsertPreference creates the preference record for pref.UserID or
	// replaces its allow-list wholesale. It reports whether a new record
	// was created.
	UpsertPreference(ctx context.Context, pref domain.UserCurrencyPreference) (created bool, err error)
}

// PreferenceRepositoryFacade combines all preference repository interfaces.
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
