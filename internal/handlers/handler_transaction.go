package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
	"github.com/fxvault/fxvault_backend/internal/dto"
	"github.com/fxvault/fxvault_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to conversion transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes related to transactions.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransactionByID)
	}
}

// createTransaction godoc
// @Summary Create a conversion transaction
// @Description Converts an input amount into the output currency at the current rate and records the transaction
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Conversion details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Currency not in the caller's allow-list"
// @Failure 404 {object} map[string]string "No currency preferences configured"
// @Failure 502 {object} map[string]string "Rate provider unavailable"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create transaction",
		slog.String("input_currency", req.InputCurrency),
		slog.String("output_currency", req.OutputCurrency),
	)

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List all transactions
// @Description Retrieves all recorded conversion transactions, newest first
// @Tags transactions
// @Produce  json
// @Success 200 {array} dto.TransactionResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// getTransactionByID godoc
// @Summary Get a transaction by identifier
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction identifier (UUID)"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	logger = logger.With(slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Transaction retrieved successfully")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
