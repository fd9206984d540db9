package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fxvault/fxvault_backend/internal/apperrors"
	"github.com/fxvault/fxvault_backend/internal/core/domain"
	"github.com/fxvault/fxvault_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockRateCache is a mock type for the RateCache interface
type MockRateCache struct {
	mock.Mock
}

func (m *MockRateCache) Get(pair domain.RatePair) (decimal.Decimal, bool) {
	args := m.Called(pair)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}

func (m *MockRateCache) Set(pair domain.RatePair, rate decimal.Decimal, ttl time.Duration) {
	m.Called(pair, rate, ttl)
}

// MockRateProvider is a mock type for the RateProvider interface
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchTable(ctx context.Context, baseCurrency string) (domain.RateTable, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.RateTable), args.Error(1)
}

// --- Test Suite Setup ---

type RateServiceTestSuite struct {
	suite.Suite
	mockCache    *MockRateCache
	mockProvider *MockRateProvider
	service      *services.RateService
}

const testCacheTTL = time.Hour

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockCache = new(MockRateCache)
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewRateService(suite.mockCache, suite.mockProvider, "USD", testCacheTTL)
}

// --- Test Cases ---

func (suite *RateServiceTestSuite) TestResolve_CacheHit() {
	ctx := context.Background()
	pair := domain.RatePair{From: "USD", To: "EUR"}
	cachedRate := decimal.RequireFromString("0.9231")

	suite.mockCache.On("Get", pair).Return(cachedRate, true).Once()

	rate, err := suite.service.Resolve(ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(cachedRate.Equal(rate))

	// A cache hit must not touch the provider.
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchTable", mock.Anything, mock.Anything)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolve_CacheMissFetchesAndStores() {
	ctx := context.Background()
	pair := domain.RatePair{From: "USD", To: "EUR"}
	fetchedRate := decimal.RequireFromString("0.9231")
	table := domain.RateTable{
		"USD": decimal.NewFromInt(1),
		"EUR": fetchedRate,
		"GBP": decimal.RequireFromString("0.7810"),
	}

	suite.mockCache.On("Get", pair).Return(decimal.Decimal{}, false).Once()
	suite.mockProvider.On("FetchTable", ctx, "USD").Return(table, nil).Once()
	suite.mockCache.On("Set", pair, fetchedRate, testCacheTTL).Once()

	rate, err := suite.service.Resolve(ctx, "USD", "EUR")

	suite.Require().NoError(err)
	suite.True(fetchedRate.Equal(rate))
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolve_NonBaseInputStillUsesAnchoredTable() {
	ctx := context.Background()
	// The fetch stays anchored to the base currency even when converting
	// from a different currency; the rate is the target's table entry.
	pair := domain.RatePair{From: "GBP", To: "EUR"}
	eurRate := decimal.RequireFromString("0.9231")
	table := domain.RateTable{
		"EUR": eurRate,
		"GBP": decimal.RequireFromString("0.7810"),
	}

	suite.mockCache.On("Get", pair).Return(decimal.Decimal{}, false).Once()
	suite.mockProvider.On("FetchTable", ctx, "USD").Return(table, nil).Once()
	suite.mockCache.On("Set", pair, eurRate, testCacheTTL).Once()

	rate, err := suite.service.Resolve(ctx, "GBP", "EUR")

	suite.Require().NoError(err)
	suite.True(eurRate.Equal(rate))
}

func (suite *RateServiceTestSuite) TestResolve_InversePairIsDistinctKey() {
	ctx := context.Background()
	eurUsd := domain.RatePair{From: "EUR", To: "USD"}
	table := domain.RateTable{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.9231"),
	}

	// Even with USD->EUR warm elsewhere, EUR->USD is its own key and must
	// miss, fetch and cache its own entry. No inverse is ever derived.
	suite.mockCache.On("Get", eurUsd).Return(decimal.Decimal{}, false).Once()
	suite.mockProvider.On("FetchTable", ctx, "USD").Return(table, nil).Once()
	suite.mockCache.On("Set", eurUsd, decimal.NewFromInt(1), testCacheTTL).Once()

	rate, err := suite.service.Resolve(ctx, "EUR", "USD")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1).Equal(rate))
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestResolve_LowercaseCodesNormalized() {
	ctx := context.Background()
	pair := domain.RatePair{From: "USD", To: "EUR"}
	cachedRate := decimal.RequireFromString("0.9231")

	suite.mockCache.On("Get", pair).Return(cachedRate, true).Once()

	rate, err := suite.service.Resolve(ctx, "usd", "eur")

	suite.Require().NoError(err)
	suite.True(cachedRate.Equal(rate))
}

func (suite *RateServiceTestSuite) TestResolve_ProviderError() {
	ctx := context.Background()
	pair := domain.RatePair{From: "USD", To: "EUR"}

	suite.mockCache.On("Get", pair).Return(decimal.Decimal{}, false).Once()
	suite.mockProvider.On("FetchTable", ctx, "USD").Return(nil, fmt.Errorf("%w: provider status 503", apperrors.ErrUpstreamUnavailable)).Once()

	_, err := suite.service.Resolve(ctx, "USD", "EUR")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)

	// Failures are never cached.
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestResolve_CurrencyMissingFromTable() {
	ctx := context.Background()
	pair := domain.RatePair{From: "USD", To: "XXX"}
	table := domain.RateTable{
		"EUR": decimal.RequireFromString("0.9231"),
	}

	suite.mockCache.On("Get", pair).Return(decimal.Decimal{}, false).Once()
	suite.mockProvider.On("FetchTable", ctx, "USD").Return(table, nil).Once()

	_, err := suite.service.Resolve(ctx, "USD", "XXX")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.mockCache.AssertNotCalled(suite.T(), "Set", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestTable_Success() {
	ctx := context.Background()
	table := domain.RateTable{
		"EUR": decimal.RequireFromString("0.9231"),
		"GBP": decimal.RequireFromString("0.7810"),
	}

	suite.mockProvider.On("FetchTable", ctx, "USD").Return(table, nil).Once()

	got, err := suite.service.Table(ctx)

	suite.Require().NoError(err)
	suite.Equal(table, got)
}

func (suite *RateServiceTestSuite) TestTable_ProviderError() {
	ctx := context.Background()

	suite.mockProvider.On("FetchTable", ctx, "USD").Return(nil, fmt.Errorf("%w: timeout", apperrors.ErrUpstreamUnavailable)).Once()

	got, err := suite.service.Table(ctx)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

// --- Run Test Suite ---

func TestRateService(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
