package models

// CurrencyEntry is a supported currency and its human readable name.
// swagger:model CurrencyEntry
type CurrencyEntry struct {
	// ISO 4217 code
	// example: USD
	Code string `json:"code"`

	// Display name
	// example: United States Dollar
	DisplayName string `json:"name"`
}

// Label returns the option text shown in currency selectors, e.g. "USD - United States Dollar".
func (c CurrencyEntry) Label() string {
	return c.Code + " - " + c.DisplayName
}

// catalog lists the top traded currencies in selector order. Never mutated.
var catalog = []CurrencyEntry{
	{Code: "USD", DisplayName: "United States Dollar"},
	{Code: "EUR", DisplayName: "Euro"},
	{Code: "JPY", DisplayName: "Japanese Yen"},
	{Code: "GBP", DisplayName: "British Pound Sterling"},
	{Code: "AUD", DisplayName: "Australian Dollar"},
	{Code: "CAD", DisplayName: "Canadian Dollar"},
	{Code: "CHF", DisplayName: "Swiss Franc"},
	{Code: "CNY", DisplayName: "Chinese Yuan"},
	{Code: "SEK", DisplayName: "Swedish Krona"},
	{Code: "NZD", DisplayName: "New Zealand Dollar"},
	{Code: "MXN", DisplayName: "Mexican Peso"},
	{Code: "SGD", DisplayName: "Singapore Dollar"},
	{Code: "HKD", DisplayName: "Hong Kong Dollar"},
	{Code: "NOK", DisplayName: "Norwegian Krone"},
	{Code: "KRW", DisplayName: "South Korean Won"},
	{Code: "TRY", DisplayName: "Turkish Lira"},
	{Code: "INR", DisplayName: "Indian Rupee"},
	{Code: "BRL", DisplayName: "Brazilian Real"},
	{Code: "ZAR", DisplayName: "South African Rand"},
	{Code: "PKR", DisplayName: "Pakistani Rupee"},
}

var catalogIndex = func() map[string]int {
	idx := make(map[string]int, len(catalog))
	for i, c := range catalog {
		idx[c.Code] = i
	}
	return idx
}()

// Default selector positions in the catalog.
const (
	DefaultBaseIndex   = 0  // USD
	DefaultTargetIndex = 19 // PKR
)

// Currencies returns a copy of the catalog in selector order.
func Currencies() []CurrencyEntry {
	out := make([]CurrencyEntry, len(catalog))
	copy(out, catalog)
	return out
}

// LookupCurrency returns the catalog entry for code.
func LookupCurrency(code string) (CurrencyEntry, bool) {
	i, ok := catalogIndex[code]
	if !ok {
		return CurrencyEntry{}, false
	}
	return catalog[i], true
}

// IsSupportedCurrency reports whether code is in the catalog.
func IsSupportedCurrency(code string) bool {
	_, ok := catalogIndex[code]
	return ok
}

// DefaultBaseCurrency is the preselected "from" currency.
func DefaultBaseCurrency() CurrencyEntry {
	return catalog[DefaultBaseIndex]
}

// DefaultTargetCurrency is the preselected "to" currency.
func DefaultTargetCurrency() CurrencyEntry {
	return catalog[DefaultTargetIndex]
}
