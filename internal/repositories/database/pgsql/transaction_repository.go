package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/models"
	"github.com/fxvault/fxvault_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionRepository implements the transaction repository ports using
// pgxpool. The table is append-only: rows are inserted, never updated.
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SaveTransaction inserts a fully populated transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO transactions (
			transaction_id, customer_id, input_amount, input_currency,
			output_amount, output_currency, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		modelTxn.TransactionID, modelTxn.CustomerID, modelTxn.InputAmount,
		modelTxn.InputCurrency, modelTxn.OutputAmount, modelTxn.OutputCurrency,
		modelTxn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, customer_id, input_amount, input_currency,
		       output_amount, output_currency, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`

	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&modelTxn.TransactionID, &modelTxn.CustomerID, &modelTxn.InputAmount,
		&modelTxn.InputCurrency, &modelTxn.OutputAmount, &modelTxn.OutputCurrency,
		&modelTxn.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves all transactions, newest first. Ordering is
// created_at descending with transaction_id descending as a stable tiebreak.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, customer_id, input_amount, input_currency,
		       output_amount, output_currency, created_at
		FROM transactions
		ORDER BY created_at DESC, transaction_id DESC;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var modelTxn models.Transaction
		err := rows.Scan(
			&modelTxn.TransactionID, &modelTxn.CustomerID, &modelTxn.InputAmount,
			&modelTxn.InputCurrency, &modelTxn.OutputAmount, &modelTxn.OutputCurrency,
			&modelTxn.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(modelTxn))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}
