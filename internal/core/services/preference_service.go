package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	portsrepo "github.com/fxvault/fxvault_backend/internal/core/ports/repositories"
	"github.com/fxvault/fxvault_backend/internal/core/ports/providers"
)

// PreferenceService manages per-user currency allow-lists. Currency codes are
// validated against the static catalog, never against a live provider call.
type PreferenceService struct {
	preferenceRepo portsrepo.PreferenceRepositoryFacade
	catalog        providers.CurrencyCatalog
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(preferenceRepo portsrepo.PreferenceRepositoryFacade, catalog providers.CurrencyCatalog) *PreferenceService {
	return &PreferenceService{
		preferenceRepo: preferenceRepo,
		catalog:        catalog,
	}
}

// GetPreference retrieves the caller's preference record.
func (s *PreferenceService) GetPreference(ctx context.Context, userID string) (*domain.UserCurrencyPreference, error) {
	pref, err := s.preferenceRepo.FindPreferenceByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: no preferences configured for user", apperrors.ErrPreferencesNotFound)
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return pref, nil
}

// UpsertPreference creates or wholesale-replaces the caller's allow-list.
// Creation is idempotent: repeating the call with the same set leaves a
// single record. It reports whether a new record was created.
func (s *PreferenceService) UpsertPreference(ctx context.Context, userID string, currencies []string) (*domain.UserCurrencyPreference, bool, error) {
	normalized, err := s.normalizeCurrencies(currencies)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	pref := domain.UserCurrencyPreference{
		UserID:            userID,
		AllowedCurrencies: normalized,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	created, err := s.preferenceRepo.UpsertPreference(ctx, pref)
	if err != nil {
		return nil, false, fmt.Errorf("%w: saving preferences: %v", apperrors.ErrPersistence, err)
	}

	stored, err := s.preferenceRepo.FindPreferenceByUserID(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to reload preferences: %w", err)
	}
	return stored, created, nil
}

// GetOrCreatePreference returns the caller's preference record, provisioning
// one with an empty allow-list when none exists. An empty allow-list forbids
// every conversion until the user configures currencies.
func (s *PreferenceService) GetOrCreatePreference(ctx context.Context, userID string) (*domain.UserCurrencyPreference, bool, error) {
	pref, err := s.GetPreference(ctx, userID)
	if err == nil {
		return pref, false, nil
	}
	if !errors.Is(err, apperrors.ErrPreferencesNotFound) {
		return nil, false, err
	}

	return s.UpsertPreference(ctx, userID, []string{})
}

// PatchPreference sparsely updates the caller's preference record. A nil
// currencies pointer leaves the allow-list unchanged; the record must already
// exist.
func (s *PreferenceService) PatchPreference(ctx context.Context, userID string, currencies *[]string) (*domain.UserCurrencyPreference, error) {
	existing, err := s.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}

	if currencies == nil {
		return existing, nil
	}

	normalized, err := s.normalizeCurrencies(*currencies)
	if err != nil {
		return nil, err
	}

	existing.AllowedCurrencies = normalized
	existing.LastUpdatedAt = time.Now().UTC()
	existing.LastUpdatedBy = userID

	if _, err := s.preferenceRepo.UpsertPreference(ctx, *existing); err != nil {
		return nil, fmt.Errorf("%w: saving preferences: %v", apperrors.ErrPersistence, err)
	}
	return existing, nil
}

// normalizeCurrencies uppercases, deduplicates, sorts and validates the given
// codes against the catalog.
func (s *PreferenceService) normalizeCurrencies(currencies []string) ([]string, error) {
	seen := make(map[string]struct{}, len(currencies))
	normalized := make([]string, 0, len(currencies))
	for _, code := range currencies {
		code = strings.ToUpper(strings.TrimSpace(code))
		if len(code) != 3 {
			return nil, fmt.Errorf("%w: currency code %q must be 3 letters", apperrors.ErrValidation, code)
		}
		if !s.catalog.Contains(code) {
			return nil, fmt.Errorf("%w: unknown currency code %q", apperrors.ErrValidation, code)
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		normalized = append(normalized, code)
	}
	sort.Strings(normalized)
	return normalized, nil
}
