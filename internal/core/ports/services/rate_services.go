package services

import (
	"context"

	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations for exchange rates.
type RateReaderSvc interface {
	// ListExchangeRates retrieves every stored rate. Empty is valid: callers
	// must treat a missing target as "rate unavailable", never as 1.0.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// GetExchangeRate returns the rate from the base currency to target.
	// The base currency short-circuits to 1 without a lookup. An unsupported
	// code fails with apperrors.ErrInvalidCurrency before any lookup; a
	// supported code with no stored row fails with apperrors.ErrNotFound.
	GetExchangeRate(ctx context.Context, targetCode string) (decimal.Decimal, error)
}

// RateRefresherSvc defines the upstream refresh operation.
type RateRefresherSvc interface {
	// RefreshExchangeRates pulls current market rates from the upstream
	// source and upserts them atomically. On upstream failure the stored
	// rates are left untouched and apperrors.ErrUpstreamUnavailable is
	// returned (wrapped). Concurrent refreshes are serialized.
	RefreshExchangeRates(ctx context.Context) error
}

// RateSvcFacade combines all exchange-rate service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
	RateRefresherSvc
}

// ConversionSvc converts and formats minor-unit amounts.
type ConversionSvc interface {
	// Convert converts an amount of base-currency minor units into target
	// minor units, rounding half-up. Identity when target is the base.
	Convert(ctx context.Context, amountMinor int64, targetCode string) (int64, error)

	// Format renders a minor-unit amount with the currency's canonical
	// symbol and two decimal places.
	Format(amountMinor int64, currencyCode string) (string, error)
}
