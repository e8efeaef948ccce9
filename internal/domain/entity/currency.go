// Package entity defines the core business entities for the domain layer.
package entity

// CurrencyCode is the closed set of supported display currencies.
// The mapping to symbols is presentation-only; no amount conversion is
// performed anywhere in the system.
type CurrencyCode string

const (
	CurrencyARS  CurrencyCode = "ARS"
	CurrencyUSD  CurrencyCode = "USD"
	CurrencyEUR  CurrencyCode = "EUR"
	CurrencyUSDT CurrencyCode = "USDT"
)

// DefaultCurrency is the currency used before the user picks one.
const DefaultCurrency = CurrencyARS

// ValidCurrencies lists every accepted currency code.
var ValidCurrencies = []CurrencyCode{CurrencyARS, CurrencyUSD, CurrencyEUR, CurrencyUSDT}

// IsValid reports whether the code belongs to the supported set.
func (c CurrencyCode) IsValid() bool {
	switch c {
	case CurrencyARS, CurrencyUSD, CurrencyEUR, CurrencyUSDT:
		return true
	}
	return false
}

// Symbol returns the fixed display symbol for the currency.
func (c CurrencyCode) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "US$"
	case CurrencyEUR:
		return "€"
	case CurrencyUSDT:
		return "₮"
	default:
		return "$"
	}
}
