package services

import (
	"context"
	"fmt"

	"github.com/ais-aviation/currency-service/internal/apperrors"
	"github.com/ais-aviation/currency-service/internal/core/domain"
	portssvc "github.com/ais-aviation/currency-service/internal/core/ports/services"
)

// ConversionService converts and formats minor-unit amounts on top of the
// rate reader.
type ConversionService struct {
	rateSvc portssvc.RateReaderSvc
}

// NewConversionService creates a new ConversionService.
func NewConversionService(rateSvc portssvc.RateReaderSvc) *ConversionService {
	return &ConversionService{rateSvc: rateSvc}
}

// Convert converts amountMinor base-currency minor units into targetCode
// minor units. Identity on the base currency; otherwise the amount is
// multiplied by the stored rate and rounded half-up to the nearest minor unit.
func (s *ConversionService) Convert(ctx context.Context, amountMinor int64, targetCode string) (int64, error) {
	if !domain.IsSupportedCurrency(targetCode) {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, targetCode)
	}
	if targetCode == domain.BaseCurrencyCode {
		return amountMinor, nil
	}

	rate, err := s.rateSvc.GetExchangeRate(ctx, targetCode)
	if err != nil {
		return 0, fmt.Errorf("failed to convert to %s: %w", targetCode, err)
	}
	return domain.ConvertMinor(amountMinor, rate), nil
}

// Format renders amountMinor with the currency's canonical symbol and two
// decimal places, e.g. 2700 in USD becomes "$ 27.00".
func (s *ConversionService) Format(amountMinor int64, currencyCode string) (string, error) {
	currency, ok := domain.CurrencyByCode(currencyCode)
	if !ok {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrency, currencyCode)
	}
	return domain.FormatMinor(amountMinor, currency), nil
}
