package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	portsrepo "github.com/fxvault/fxvault_backend/internal/core/ports/repositories"
	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
	"github.com/fxvault/fxvault_backend/internal/dto"
	"github.com/fxvault/fxvault_backend/internal/platform/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxCustomerIDLength = 255

// TransactionService owns the conversion pipeline: validate, authorize,
// resolve rate, compute output amount, persist.
type TransactionService struct {
	txnRepo       portsrepo.TransactionRepositoryFacade
	preferenceSvc portssvc.PreferenceReaderSvc
	rateSvc       portssvc.RateResolverSvc
	metrics       *metrics.ConversionMetrics
}

// NewTransactionService creates a new TransactionService. metrics may be nil.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	preferenceSvc portssvc.PreferenceReaderSvc,
	rateSvc portssvc.RateResolverSvc,
	m *metrics.ConversionMetrics,
) *TransactionService {
	return &TransactionService{
		txnRepo:       txnRepo,
		preferenceSvc: preferenceSvc,
		rateSvc:       rateSvc,
		metrics:       m,
	}
}

// CreateTransaction runs the conversion pipeline. Each step is a hard gate:
// the first failure short-circuits and nothing is persisted. Duplicate
// submissions are not deduplicated; each call creates a distinct record.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.createTransaction(ctx, userID, req)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordTransactionError(errorKind(err))
		}
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordTransactionCreated(txn.InputCurrency, txn.OutputCurrency)
	}
	return txn, nil
}

func (s *TransactionService) createTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	inputCurrency := strings.ToUpper(req.InputCurrency)
	outputCurrency := strings.ToUpper(req.OutputCurrency)

	// Gate 1: field validation.
	if err := validateCreateRequest(req.CustomerID, req.InputAmount, inputCurrency, outputCurrency); err != nil {
		return nil, err
	}

	// Gate 2: authorization against the caller's allow-list. Forbidden pairs
	// never reach rate resolution.
	pref, err := s.preferenceSvc.GetPreference(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !pref.Allows(inputCurrency) {
		return nil, fmt.Errorf("%w: input currency %s is not in your allowed currencies", apperrors.ErrForbidden, inputCurrency)
	}
	if !pref.Allows(outputCurrency) {
		return nil, fmt.Errorf("%w: output currency %s is not in your allowed currencies", apperrors.ErrForbidden, outputCurrency)
	}

	// Gate 3: rate resolution.
	rate, err := s.rateSvc.Resolve(ctx, inputCurrency, outputCurrency)
	if err != nil {
		return nil, err
	}

	// Gate 4: computation. Exact decimal arithmetic, rounded half-up to two
	// fractional digits.
	outputAmount := req.InputAmount.Mul(rate).Round(2)

	// Gate 5: persistence. Identity and timestamp are assigned here; on
	// failure no partial record remains visible.
	txn := domain.Transaction{
		TransactionID:  uuid.NewString(),
		CustomerID:     req.CustomerID,
		InputAmount:    req.InputAmount,
		InputCurrency:  inputCurrency,
		OutputAmount:   outputAmount,
		OutputCurrency: outputCurrency,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("%w: saving transaction: %v", apperrors.ErrPersistence, err)
	}

	return &txn, nil
}

// GetTransactionByID retrieves a single transaction by identifier.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by id: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves all transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func validateCreateRequest(customerID string, amount decimal.Decimal, inputCurrency, outputCurrency string) error {
	if customerID == "" {
		return fmt.Errorf("%w: customerID must not be empty", apperrors.ErrValidation)
	}
	if len(customerID) > maxCustomerIDLength {
		return fmt.Errorf("%w: customerID must be at most %d characters", apperrors.ErrValidation, maxCustomerIDLength)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: inputAmount must be positive", apperrors.ErrValidation)
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: inputAmount must have at most 2 decimal places", apperrors.ErrValidation)
	}
	if len(inputCurrency) != 3 {
		return fmt.Errorf("%w: inputCurrency must be a 3-letter code", apperrors.ErrValidation)
	}
	if len(outputCurrency) != 3 {
		return fmt.Errorf("%w: outputCurrency must be a 3-letter code", apperrors.ErrValidation)
	}
	return nil
}

// errorKind maps pipeline errors to a stable metrics label.
func errorKind(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return "validation"
	case errors.Is(err, apperrors.ErrForbidden):
		return "forbidden"
	case errors.Is(err, apperrors.ErrPreferencesNotFound):
		return "preferences_not_found"
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		return "upstream_unavailable"
	case errors.Is(err, apperrors.ErrPersistence):
		return "persistence"
	default:
		return "internal"
	}
}
