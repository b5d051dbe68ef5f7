package dto

import (
	"time"

	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	NameArabic   string `json:"nameArabic"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO.
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		NameArabic:   c.NameArabic,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = ToCurrencyResponse(c)
	}
	return res
}

// ExchangeRateResponse defines the API shape of one stored exchange rate.
type ExchangeRateResponse struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	FetchedAt      time.Time       `json:"fetchedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		BaseCurrency:   rate.BaseCurrencyCode,
		TargetCurrency: rate.TargetCurrencyCode,
		Rate:           rate.Rate,
		FetchedAt:      rate.FetchedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ConvertRequest asks for a base-currency amount in target currency.
// AmountInSAR is in halalas (SAR minor units).
type ConvertRequest struct {
	AmountInSAR    int64  `json:"amountInSAR" binding:"min=0"`
	TargetCurrency string `json:"targetCurrency" binding:"required,currency"`
}

// ConvertResponse carries both amounts plus the display string.
type ConvertResponse struct {
	OriginalAmount   int64  `json:"originalAmount"`
	OriginalCurrency string `json:"originalCurrency"`
	ConvertedAmount  int64  `json:"convertedAmount"`
	TargetCurrency   string `json:"targetCurrency"`
	Formatted        string `json:"formatted"`
}

// FormatRequest asks for the display rendering of a minor-unit amount.
type FormatRequest struct {
	AmountInCents int64  `json:"amountInCents"`
	Currency      string `json:"currency" binding:"required,currency"`
}

// FormatResponse carries the rendered amount.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// RefreshResponse is the transport shape of a refresh attempt. Failures are
// reported as success=false rather than an error status so the caller's UI
// can show a non-fatal notice.
type RefreshResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
