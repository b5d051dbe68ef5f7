package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate from the base currency to a target
// currency. Rate is expressed as target units per one unit of base currency.
// The base currency itself is never stored: its rate is implicitly 1.
type ExchangeRate struct {
	BaseCurrencyCode   string          `json:"baseCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	Rate               decimal.Decimal `json:"rate"`
	FetchedAt          time.Time       `json:"fetchedAt"`
	AuditFields
}
