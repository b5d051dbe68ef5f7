package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/ais-aviation/currency-service/internal/core/ports"
	portssvc "github.com/ais-aviation/currency-service/internal/core/ports/services"
	"github.com/ais-aviation/currency-service/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, targetCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, targetCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpsertExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

// --- Mock RateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) FetchRates(ctx context.Context, targetCodes []string) ([]ports.RateQuote, error) {
	args := m.Called(ctx, targetCodes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.RateQuote), args.Error(1)
}

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockExchangeRateRepository
	mockSource *MockRateSource
	service    portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.mockSource = new(MockRateSource)
	suite.service = services.NewRateService(suite.mockRepo, suite.mockSource, nil)
}

// --- GetExchangeRate ---

func (suite *RateServiceTestSuite) TestGetExchangeRate_BaseCurrencyShortCircuits() {
	ctx := context.Background()

	rate, err := suite.service.GetExchangeRate(ctx, "SAR")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetExchangeRate_InvalidCodeFailsBeforeLookup() {
	ctx := context.Background()

	_, err := suite.service.GetExchangeRate(ctx, "XYZ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestGetExchangeRate_Success() {
	ctx := context.Background()
	stored := &domain.ExchangeRate{
		BaseCurrencyCode:   "SAR",
		TargetCurrencyCode: "USD",
		Rate:               decimal.RequireFromString("0.27"),
	}
	suite.mockRepo.On("FindExchangeRate", ctx, "USD").Return(stored, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "USD")

	suite.Require().NoError(err)
	suite.True(rate.Equal(decimal.RequireFromString("0.27")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestGetExchangeRate_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindExchangeRate", ctx, "EGP").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetExchangeRate(ctx, "EGP")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- ListExchangeRates ---

func (suite *RateServiceTestSuite) TestListExchangeRates_EmptyIsValid() {
	ctx := context.Background()
	suite.mockRepo.On("ListExchangeRates", ctx).Return([]domain.ExchangeRate{}, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestListExchangeRates_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListExchangeRates", ctx).Return(nil, assert.AnError).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, assert.AnError)
}

// --- RefreshExchangeRates ---

func (suite *RateServiceTestSuite) TestRefresh_Success() {
	ctx := context.Background()
	now := time.Now().UTC()
	quotes := []ports.RateQuote{
		{TargetCurrencyCode: "USD", Rate: decimal.RequireFromString("0.27"), Timestamp: now},
		{TargetCurrencyCode: "EUR", Rate: decimal.RequireFromString("0.24"), Timestamp: now},
	}
	suite.mockSource.On("FetchRates", ctx, mock.AnythingOfType("[]string")).Return(quotes, nil).Once()
	suite.mockRepo.On("UpsertExchangeRates", ctx, mock.MatchedBy(func(rates []domain.ExchangeRate) bool {
		if len(rates) != 2 {
			return false
		}
		for _, r := range rates {
			if r.BaseCurrencyCode != domain.BaseCurrencyCode || r.Rate.LessThanOrEqual(decimal.Zero) {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	err := suite.service.RefreshExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestRefresh_RequestsAllNonBaseCurrencies() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, mock.MatchedBy(func(targets []string) bool {
		if len(targets) != 9 {
			return false
		}
		for _, code := range targets {
			if code == domain.BaseCurrencyCode {
				return false
			}
		}
		return true
	})).Return([]ports.RateQuote{{TargetCurrencyCode: "USD", Rate: decimal.RequireFromString("0.27")}}, nil).Once()
	suite.mockRepo.On("UpsertExchangeRates", ctx, mock.Anything).Return(nil).Once()

	err := suite.service.RefreshExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.mockSource.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestRefresh_UpstreamFailureLeavesStoreUntouched() {
	ctx := context.Background()
	suite.mockSource.On("FetchRates", ctx, mock.Anything).Return(nil, apperrors.ErrUpstreamUnavailable).Once()

	err := suite.service.RefreshExchangeRates(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertExchangeRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestRefresh_NonPositiveRateRejectedWithoutWrite() {
	ctx := context.Background()
	quotes := []ports.RateQuote{
		{TargetCurrencyCode: "USD", Rate: decimal.Zero},
	}
	suite.mockSource.On("FetchRates", ctx, mock.Anything).Return(quotes, nil).Once()

	err := suite.service.RefreshExchangeRates(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertExchangeRates", mock.Anything, mock.Anything)
}

func (suite *RateServiceTestSuite) TestRefresh_IdempotentForUnchangedUpstream() {
	ctx := context.Background()
	quotes := []ports.RateQuote{
		{TargetCurrencyCode: "USD", Rate: decimal.RequireFromString("0.27"), Timestamp: time.Unix(1718000000, 0).UTC()},
	}
	suite.mockSource.On("FetchRates", ctx, mock.Anything).Return(quotes, nil).Twice()

	var firstBatch, secondBatch []domain.ExchangeRate
	suite.mockRepo.On("UpsertExchangeRates", ctx, mock.Anything).Run(func(args mock.Arguments) {
		batch := args.Get(1).([]domain.ExchangeRate)
		if firstBatch == nil {
			firstBatch = batch
		} else {
			secondBatch = batch
		}
	}).Return(nil).Twice()

	suite.Require().NoError(suite.service.RefreshExchangeRates(ctx))
	suite.Require().NoError(suite.service.RefreshExchangeRates(ctx))

	suite.Require().Len(firstBatch, 1)
	suite.Require().Len(secondBatch, 1)
	suite.True(firstBatch[0].Rate.Equal(secondBatch[0].Rate))
	suite.Equal(firstBatch[0].TargetCurrencyCode, secondBatch[0].TargetCurrencyCode)
	suite.Equal(firstBatch[0].FetchedAt, secondBatch[0].FetchedAt)
}

// --- Run Suite ---
func TestRateService(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
