package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/ais-aviation/currency-service/internal/core/ports"
	portsrepo "github.com/ais-aviation/currency-service/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// refreshActor is recorded in audit fields for rows written by the refresh job.
const refreshActor = "system:rate-refresh"

// RateService provides business logic for exchange rates.
type RateService struct {
	rateRepo portsrepo.ExchangeRateRepository
	source   ports.RateSource
	cache    ports.RateCache // optional, may be nil

	// refreshMu serializes refreshes so two concurrent calls cannot
	// interleave partial upsert batches.
	refreshMu sync.Mutex
}

// NewRateService creates a new RateService. cache may be nil.
func NewRateService(rateRepo portsrepo.ExchangeRateRepository, source ports.RateSource, cache ports.RateCache) *RateService {
	return &RateService{
		rateRepo: rateRepo,
		source:   source,
		cache:    cache,
	}
}

// ListExchangeRates returns every stored rate. The cache is read-through:
// cache failures fall back to the repository rather than failing the call.
func (s *RateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	if s.cache != nil {
		if rates, ok, err := s.cache.GetRates(ctx); err == nil && ok {
			return rates, nil
		}
	}

	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}

	if s.cache != nil {
		_ = s.cache.SetRates(ctx, rates)
	}
	return rates, nil
}

// GetExchangeRate returns the rate from the base currency to targetCode.
// The code is validated against the supported set before any lookup, and the
// base currency short-circuits to 1 without touching storage.
func (s *RateService) GetExchangeRate(ctx context.Context, targetCode string) (decimal.Decimal, error) {
	if !domain.IsSupportedCurrency(targetCode) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, targetCode)
	}
	if targetCode == domain.BaseCurrencyCode {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, targetCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Decimal{}, fmt.Errorf("%w: no stored rate for %s", apperrors.ErrNotFound, targetCode)
		}
		return decimal.Decimal{}, fmt.Errorf("failed to get exchange rate for %s: %w", targetCode, err)
	}
	return rate.Rate, nil
}

// RefreshExchangeRates fetches current market rates and upserts them in one
// batch. The stored table is only written once the full upstream response has
// been fetched and validated, so a failing or garbage upstream leaves the
// last-known-good rates untouched.
func (s *RateService) RefreshExchangeRates(ctx context.Context) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	targets := make([]string, 0, len(domain.SupportedCurrencyCodes())-1)
	for _, code := range domain.SupportedCurrencyCodes() {
		if code != domain.BaseCurrencyCode {
			targets = append(targets, code)
		}
	}

	quotes, err := s.source.FetchRates(ctx, targets)
	if err != nil {
		return fmt.Errorf("failed to fetch upstream rates: %w", err)
	}

	now := time.Now().UTC()
	rates := make([]domain.ExchangeRate, 0, len(quotes))
	for _, q := range quotes {
		if q.TargetCurrencyCode == domain.BaseCurrencyCode {
			continue // implicit 1.0, never stored
		}
		if !domain.IsSupportedCurrency(q.TargetCurrencyCode) {
			continue
		}
		if q.Rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: non-positive rate %s for %s", apperrors.ErrUpstreamUnavailable, q.Rate, q.TargetCurrencyCode)
		}
		fetchedAt := q.Timestamp
		if fetchedAt.IsZero() {
			fetchedAt = now
		}
		rates = append(rates, domain.ExchangeRate{
			BaseCurrencyCode:   domain.BaseCurrencyCode,
			TargetCurrencyCode: q.TargetCurrencyCode,
			Rate:               q.Rate,
			FetchedAt:          fetchedAt,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     refreshActor,
				LastUpdatedAt: now,
				LastUpdatedBy: refreshActor,
			},
		})
	}
	if len(rates) == 0 {
		return fmt.Errorf("%w: upstream returned no usable rates", apperrors.ErrUpstreamUnavailable)
	}

	if err := s.rateRepo.UpsertExchangeRates(ctx, rates); err != nil {
		return fmt.Errorf("failed to store refreshed rates: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	return nil
}
