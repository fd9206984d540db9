package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/models"
	"github.com/fxvault/fxvault_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPreferenceRepository implements the preference repository ports using
// pgxpool. The allow-list column is JSONB to match the wire format.
type PgxPreferenceRepository struct {
	BaseRepository
}

func newPgxPreferenceRepository(db *pgxpool.Pool) *PgxPreferenceRepository {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// FindPreferenceByUserID retrieves the preference record for a user.
func (r *PgxPreferenceRepository) FindPreferenceByUserID(ctx context.Context, userID string) (*domain.UserCurrencyPreference, error) {
	query := `
		SELECT user_id, allowed_currencies, created_at, created_by,
		       last_updated_at, last_updated_by
		FROM user_currency_preferences
		WHERE user_id = $1;
	`

	var modelPref models.UserCurrencyPreference
	var currenciesJSON []byte
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&modelPref.UserID, &currenciesJSON, &modelPref.CreatedAt,
		&modelPref.CreatedBy, &modelPref.LastUpdatedAt, &modelPref.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: preferences for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find preferences: %w", err)
	}

	if err := json.Unmarshal(currenciesJSON, &modelPref.AllowedCurrencies); err != nil {
		return nil, fmt.Errorf("failed to decode allowed currencies: %w", err)
	}

	domainPref := mapping.ToDomainPreference(modelPref)
	return &domainPref, nil
}

// UpsertPreference creates the record for pref.UserID or replaces its
// allow-list wholesale, keeping the original creation audit fields on update.
func (r *PgxPreferenceRepository) UpsertPreference(ctx context.Context, pref domain.UserCurrencyPreference) (bool, error) {
	modelPref := mapping.ToModelPreference(pref)

	currenciesJSON, err := json.Marshal(modelPref.AllowedCurrencies)
	if err != nil {
		return false, fmt.Errorf("failed to encode allowed currencies: %w", err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return false, err
	}

	var existingUserID string
	err = tx.QueryRow(ctx,
		`SELECT user_id FROM user_currency_preferences WHERE user_id = $1 FOR UPDATE`,
		modelPref.UserID,
	).Scan(&existingUserID)

	created := false
	switch {
	case err == nil:
		_, err = tx.Exec(ctx, `
			UPDATE user_currency_preferences
			SET allowed_currencies = $1, last_updated_at = $2, last_updated_by = $3
			WHERE user_id = $4`,
			currenciesJSON, modelPref.LastUpdatedAt, modelPref.LastUpdatedBy, modelPref.UserID,
		)
	case errors.Is(err, pgx.ErrNoRows):
		created = true
		_, err = tx.Exec(ctx, `
			INSERT INTO user_currency_preferences (
				user_id, allowed_currencies, created_at, created_by,
				last_updated_at, last_updated_by
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			modelPref.UserID, currenciesJSON, modelPref.CreatedAt, modelPref.CreatedBy,
			modelPref.LastUpdatedAt, modelPref.LastUpdatedBy,
		)
	}

	if err != nil {
		_ = r.Rollback(ctx, tx)
		return false, fmt.Errorf("failed to upsert preferences: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return false, err
	}
	return created, nil
}
