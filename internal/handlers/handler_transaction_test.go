package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
	"github.com/fxvault/fxvault_backend/internal/dto"
	"github.com/fxvault/fxvault_backend/internal/handlers"
	"github.com/fxvault/fxvault_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed JWT whose subject is the given user ID.
func generateTestToken(t *testing.T, userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "fxvault-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.FailNow()
	}
	return signed
}

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockService = new(MockTransactionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterTransactionRoutes(v1, suite.mockService)
}

func (suite *TransactionHandlerTestSuite) performRequest(method, path, userID string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID:  uuid.NewString(),
		CustomerID:     "cust-42",
		InputAmount:    decimal.RequireFromString("100.50"),
		InputCurrency:  "USD",
		OutputAmount:   decimal.RequireFromString("92.77"),
		OutputCurrency: "EUR",
		CreatedAt:      time.Now().UTC(),
	}

	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).Return(expected, nil).Once()

	body := []byte(`{"customerID":"cust-42","inputAmount":"100.50","inputCurrency":"USD","outputCurrency":"EUR"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.TransactionID, resp.TransactionID)
	suite.Equal("cust-42", resp.CustomerID)
	suite.True(expected.OutputAmount.Equal(resp.OutputAmount))

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Unauthenticated() {
	body := []byte(`{"customerID":"cust-42","inputAmount":"100.50","inputCurrency":"USD","outputCurrency":"EUR"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", "", body)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	userID := uuid.NewString()
	body := []byte(`{"customerID": 42`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingFieldsRejectedByBinding() {
	userID := uuid.NewString()
	body := []byte(`{"customerID":"cust-42"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationErrorMapsTo400() {
	userID := uuid.NewString()
	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("%w: inputAmount must be positive", apperrors.ErrValidation)).Once()

	body := []byte(`{"customerID":"cust-42","inputAmount":"1.00","inputCurrency":"USD","outputCurrency":"EUR"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ForbiddenMapsTo403() {
	userID := uuid.NewString()
	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("%w: output currency GBP is not in your allowed currencies", apperrors.ErrForbidden)).Once()

	body := []byte(`{"customerID":"cust-42","inputAmount":"1.00","inputCurrency":"USD","outputCurrency":"GBP"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_NoPreferencesMapsTo404() {
	userID := uuid.NewString()
	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.ErrPreferencesNotFound).Once()

	body := []byte(`{"customerID":"cust-42","inputAmount":"1.00","inputCurrency":"USD","outputCurrency":"EUR"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UpstreamUnavailableMapsTo502() {
	userID := uuid.NewString()
	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("%w: provider status 503", apperrors.ErrUpstreamUnavailable)).Once()

	body := []byte(`{"customerID":"cust-42","inputAmount":"1.00","inputCurrency":"USD","outputCurrency":"EUR"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusBadGateway, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Error fetching exchange rate from external API", resp["error"])
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_PersistenceErrorMapsTo500() {
	userID := uuid.NewString()
	suite.mockService.On("CreateTransaction", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("%w: saving transaction: connection reset", apperrors.ErrPersistence)).Once()

	body := []byte(`{"customerID":"cust-42","inputAmount":"1.00","inputCurrency":"USD","outputCurrency":"EUR"}`)
	w := suite.performRequest(http.MethodPost, "/api/v1/transactions", userID, body)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{TransactionID: uuid.NewString(), CustomerID: "b", InputCurrency: "USD", OutputCurrency: "EUR", CreatedAt: time.Now().UTC()},
		{TransactionID: uuid.NewString(), CustomerID: "a", InputCurrency: "EUR", OutputCurrency: "GBP", CreatedAt: time.Now().UTC().Add(-time.Hour)},
	}

	suite.mockService.On("ListTransactions", mock.Anything).Return(txns, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/transactions", userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal(txns[0].TransactionID, resp[0].TransactionID)
	suite.Equal(txns[1].TransactionID, resp[1].TransactionID)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_EmptyReturnsEmptyArray() {
	userID := uuid.NewString()

	suite.mockService.On("ListTransactions", mock.Anything).Return([]domain.Transaction{}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/transactions", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionByID_Success() {
	userID := uuid.NewString()
	testID := uuid.NewString()
	expected := &domain.Transaction{
		TransactionID:  testID,
		CustomerID:     "cust-42",
		InputAmount:    decimal.NewFromInt(10),
		InputCurrency:  "USD",
		OutputAmount:   decimal.RequireFromString("9.23"),
		OutputCurrency: "EUR",
		CreatedAt:      time.Now().UTC(),
	}

	suite.mockService.On("GetTransactionByID", mock.Anything, testID).Return(expected, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/transactions/"+testID, userID, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(testID, resp.TransactionID)
}

func (suite *TransactionHandlerTestSuite) TestGetTransactionByID_NotFound() {
	userID := uuid.NewString()
	testID := uuid.NewString()

	suite.mockService.On("GetTransactionByID", mock.Anything, testID).Return(nil, fmt.Errorf("failed to get transaction by id: %w", apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/transactions/"+testID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---

func TestTransactionHandler(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
