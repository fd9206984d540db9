package mapping

import (
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its database row shape.
func ToModelTransaction(txn domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:  txn.TransactionID,
		CustomerID:     txn.CustomerID,
		InputAmount:    txn.InputAmount,
		InputCurrency:  txn.InputCurrency,
		OutputAmount:   txn.OutputAmount,
		OutputCurrency: txn.OutputCurrency,
		CreatedAt:      txn.CreatedAt,
	}
}

// ToDomainTransaction converts a database row back to the domain type.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:  m.TransactionID,
		CustomerID:     m.CustomerID,
		InputAmount:    m.InputAmount,
		InputCurrency:  m.InputCurrency,
		OutputAmount:   m.OutputAmount,
		OutputCurrency: m.OutputCurrency,
		CreatedAt:      m.CreatedAt,
	}
}
