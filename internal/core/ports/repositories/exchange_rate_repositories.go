package repositories

import (
	"context"

	"github.com/ais-aviation/currency-service/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the stored rate for a target currency.
	// Returns apperrors.ErrNotFound when no row exists.
	FindExchangeRate(ctx context.Context, targetCode string) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves every stored rate ordered by target code.
	// An empty slice is a valid result.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// UpsertExchangeRates inserts or updates the given rates atomically.
	// Either every rate is written or none is.
	UpsertExchangeRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepository combines all exchange rate repository interfaces.
type ExchangeRateRepository interface {
	ExchangeRateReader
	ExchangeRateWriter
}
