package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	portssvc "github.com/fxvault/fxvault_backend/internal/core/ports/services"
	"github.com/fxvault/fxvault_backend/internal/dto"
	"github.com/fxvault/fxvault_backend/internal/handlers"
	"github.com/fxvault/fxvault_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Suite ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCurrencyService
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))

	suite.mockService = new(MockCurrencyService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCurrencyRoutes(v1, suite.mockService)
}

func (suite *CurrencyHandlerTestSuite) performRequest(userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Success() {
	userID := uuid.NewString()
	rates := []domain.CurrencyRate{
		{Code: "EUR", Rate: decimal.RequireFromString("0.9231")},
		{Code: "GBP", Rate: decimal.RequireFromString("0.7810")},
	}

	suite.mockService.On("ListCurrencies", mock.Anything).Return(rates, nil).Once()

	w := suite.performRequest(userID)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.CurrencyRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("EUR", resp[0].Code)
	suite.Equal("GBP", resp[1].Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_UpstreamUnavailable() {
	userID := uuid.NewString()

	suite.mockService.On("ListCurrencies", mock.Anything).
		Return(nil, fmt.Errorf("failed to list currencies: %w", apperrors.ErrUpstreamUnavailable)).Once()

	w := suite.performRequest(userID)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies_Unauthenticated() {
	w := suite.performRequest("")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListCurrencies", mock.Anything)
}

// --- Run Test Suite ---

func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
