package repositories

import (
	"context"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction records.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest first
	// (created_at descending, transaction_id descending as tiebreak).
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction records.
// The store is append-only: there is no update or delete.
type TransactionWriter interface {
	// SaveTransaction persists a fully populated transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
