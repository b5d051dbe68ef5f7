package ports

import (
	"context"
	"time"

	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateQuote is one quote returned by an upstream market-data source.
type RateQuote struct {
	TargetCurrencyCode string
	Rate               decimal.Decimal
	Timestamp          time.Time
}

// RateSource fetches current market rates for the base currency from an
// external provider. Implementations must bound the request with a timeout
// and return apperrors.ErrUpstreamUnavailable (wrapped) when the provider
// cannot be reached or replies with garbage.
type RateSource interface {
	FetchRates(ctx context.Context, targetCodes []string) ([]RateQuote, error)
}

// RateCache is an optional read-through cache for the full rate table.
// A miss is (nil, false, nil); errors are reserved for broken transports.
type RateCache interface {
	GetRates(ctx context.Context) ([]domain.ExchangeRate, bool, error)
	SetRates(ctx context.Context, rates []domain.ExchangeRate) error
	Invalidate(ctx context.Context) error
}
