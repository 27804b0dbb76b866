package currency

import "github.com/oksasatya/storefront-state/internal/domain/entity"

// BaseCurrency is the code all rates are quoted against.
const BaseCurrency = "USD"

// Currencies is the fixed enumeration of supported currencies. The first
// entry is the base and the default selection.
var Currencies = []entity.Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
}

// Rates maps currency code to its rate relative to the USD base. Static for
// the process lifetime; live rate fetching is out of scope.
var Rates = map[string]float64{
	"USD": 1,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 155,
	"IDR": 16300,
}

// zeroDecimal lists currencies rendered without fractional digits.
var zeroDecimal = map[string]bool{
	"JPY": true,
	"IDR": true,
}

// symbolPrefix lists currencies whose symbol precedes the amount. Everything
// else renders "amount symbol". A static allow-list, not a locale engine.
var symbolPrefix = map[string]bool{
	"USD": true,
	"EUR": true,
	"GBP": true,
}

// ByCode returns the descriptor for code, or the base currency when the
// code is unknown.
func ByCode(code string) entity.Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return Currencies[0]
}

// RateOf returns the conversion rate for code, defaulting to the base rate
// for unknown codes so conversion never fails.
func RateOf(code string) float64 {
	if r, ok := Rates[code]; ok {
		return r
	}
	return 1
}

// IsZeroDecimal reports whether code renders whole units only.
func IsZeroDecimal(code string) bool { return zeroDecimal[code] }

// IsSymbolPrefix reports whether code renders its symbol before the amount.
func IsSymbolPrefix(code string) bool { return symbolPrefix[code] }
