package domain_test

import (
	"testing"

	"github.com/ais-aviation/currency-service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedCurrencies(t *testing.T) {
	codes := domain.SupportedCurrencyCodes()
	assert.Len(t, codes, 10)
	assert.Equal(t, []string{"SAR", "USD", "EUR", "GBP", "AED", "KWD", "BHD", "OMR", "QAR", "EGP"}, codes)
	assert.Equal(t, "SAR", domain.BaseCurrencyCode)
}

func TestIsSupportedCurrency(t *testing.T) {
	for _, code := range domain.SupportedCurrencyCodes() {
		assert.True(t, domain.IsSupportedCurrency(code))
	}
	assert.False(t, domain.IsSupportedCurrency("XYZ"))
	assert.False(t, domain.IsSupportedCurrency("usd"), "codes are uppercase on the wire")
	assert.False(t, domain.IsSupportedCurrency(""))
}

func TestCurrencyByCode(t *testing.T) {
	usd, ok := domain.CurrencyByCode("USD")
	require.True(t, ok)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, "US Dollar", usd.Name)

	_, ok = domain.CurrencyByCode("XYZ")
	assert.False(t, ok)
}

func TestSupportedCurrencies_ReturnsCopy(t *testing.T) {
	first := domain.SupportedCurrencies()
	first[0].Symbol = "mutated"

	second := domain.SupportedCurrencies()
	assert.NotEqual(t, "mutated", second[0].Symbol)
}
