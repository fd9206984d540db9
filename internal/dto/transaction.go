package dto

import (
	"time"

	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a conversion.
type CreateTransactionRequest struct {
	CustomerID     string          `json:"customerID" binding:"required,max=255"`
	InputAmount    decimal.Decimal `json:"inputAmount" binding:"required"`
	InputCurrency  string          `json:"inputCurrency" binding:"required,currencycode"`
	OutputCurrency string          `json:"outputCurrency" binding:"required,currencycode"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID  string          `json:"transactionID"`
	CustomerID     string          `json:"customerID"`
	InputAmount    decimal.Decimal `json:"inputAmount"`
	InputCurrency  string          `json:"inputCurrency"`
	OutputAmount   decimal.Decimal `json:"outputAmount"`
	OutputCurrency string          `json:"outputCurrency"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  txn.TransactionID,
		CustomerID:     txn.CustomerID,
		InputAmount:    txn.InputAmount,
		InputCurrency:  txn.InputCurrency,
		OutputAmount:   txn.OutputAmount,
		OutputCurrency: txn.OutputCurrency,
		CreatedAt:      txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
