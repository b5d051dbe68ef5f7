package domain

// BaseCurrencyCode is the currency all stored amounts are denominated in.
// Fares, taxes and fees are persisted as integer halalas (SAR minor units)
// and only converted for display.
const BaseCurrencyCode = "SAR"

// Currency describes one supported currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217 code, e.g. "USD"
	Symbol       string `json:"symbol"`       // e.g. "$"
	Name         string `json:"name"`         // e.g. "US Dollar"
	NameArabic   string `json:"nameArabic"`
}

// supportedCurrencies is the single source of truth for the closed set of
// currencies the system prices in. Order is the display order.
var supportedCurrencies = []Currency{
	{CurrencyCode: "SAR", Symbol: "﷼", Name: "Saudi Riyal", NameArabic: "ريال سعودي"},
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", NameArabic: "دولار أمريكي"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", NameArabic: "يورو"},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", NameArabic: "جنيه إسترليني"},
	{CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham", NameArabic: "درهم إماراتي"},
	{CurrencyCode: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar", NameArabic: "دينار كويتي"},
	{CurrencyCode: "BHD", Symbol: ".د.ب", Name: "Bahraini Dinar", NameArabic: "دينار بحريني"},
	{CurrencyCode: "OMR", Symbol: "ر.ع.", Name: "Omani Rial", NameArabic: "ريال عماني"},
	{CurrencyCode: "QAR", Symbol: "ر.ق", Name: "Qatari Riyal", NameArabic: "ريال قطري"},
	{CurrencyCode: "EGP", Symbol: "ج.م", Name: "Egyptian Pound", NameArabic: "جنيه مصري"},
}

var currencyByCode = func() map[string]Currency {
	m := make(map[string]Currency, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		m[c.CurrencyCode] = c
	}
	return m
}()

// SupportedCurrencies returns the supported currencies in display order.
// The returned slice is a copy and safe to modify.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// SupportedCurrencyCodes returns just the codes, in display order.
func SupportedCurrencyCodes() []string {
	codes := make([]string, len(supportedCurrencies))
	for i, c := range supportedCurrencies {
		codes[i] = c.CurrencyCode
	}
	return codes
}

// IsSupportedCurrency reports whether code is in the supported set.
// Codes are case-sensitive: the wire format is uppercase ISO 4217.
func IsSupportedCurrency(code string) bool {
	_, ok := currencyByCode[code]
	return ok
}

// CurrencyByCode looks up a supported currency by its code.
func CurrencyByCode(code string) (Currency, bool) {
	c, ok := currencyByCode[code]
	return c, ok
}
