package models

// CurrenciesResponse lists the supported currencies
// swagger:model CurrenciesResponse
type CurrenciesResponse struct {
	// Supported currencies in selector order
	Currencies []CurrencyEntry `json:"currencies"`
}

// ConvertResponse represents a successful conversion
// swagger:model ConvertResponse
type ConvertResponse struct {
	// Source currency
	// example: USD
	From string `json:"from"`

	// Target currency
	// example: EUR
	To string `json:"to"`

	// Amount in the source currency
	// example: 10
	Amount string `json:"amount"`

	// Units of target currency per unit of source currency
	// example: 0.9
	Rate string `json:"rate"`

	// Amount in the target currency
	// example: 9
	ConvertedAmount string `json:"converted_amount"`

	// Result heading
	// example: USD to EUR
	MetricLabel string `json:"metric_label"`

	// Formatted converted amount
	// example: 9.0000 EUR
	MetricValue string `json:"metric_value"`

	// Formatted unit rate
	// example: 1 USD = 0.9000 EUR
	UnitLine string `json:"unit_line"`
}

// ErrorResponse represents an error returned by the JSON API
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: API Error: invalid-key
	Error string `json:"error"`
}
