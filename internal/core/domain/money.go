package domain

import (
	"github.com/shopspring/decimal"
)

// Monetary amounts are carried as int64 minor units (halalas for SAR, cents
// for USD, and so on) and only become decimals at the conversion/format edge.

// ConvertMinor converts an amount of base-currency minor units using the
// given rate and returns the result in target-currency minor units.
// Rounding is half-up to the nearest minor unit (decimal.Round semantics),
// so 10000 halalas at a rate of 0.27 is exactly 2700 cents.
func ConvertMinor(amountMinor int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amountMinor).Mul(rate).Round(0).IntPart()
}

// FormatMinor renders a minor-unit amount as "<symbol> <major>.<2dp>",
// e.g. 2700 cents in USD becomes "$ 27.00". All supported currencies are
// displayed with two decimal places regardless of their ISO minor unit.
func FormatMinor(amountMinor int64, currency Currency) string {
	major := decimal.New(amountMinor, -2)
	return currency.Symbol + " " + major.StringFixed(2)
}
