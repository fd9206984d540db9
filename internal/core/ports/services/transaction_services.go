package services

import (
	"context"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a single transaction by identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the conversion pipeline entry point.
type TransactionWriterSvc interface {
	// CreateTransaction validates the request, authorizes the currency pair
	// against the caller's allow-list, resolves the exchange rate, computes
	// the output amount and persists the resulting transaction.
	CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
