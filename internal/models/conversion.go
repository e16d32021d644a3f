package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// DisplayPlaces is the number of decimal places shown for amounts and rates.
	DisplayPlaces = 4
	// MaxAmountDigits is the most significant digits an amount may carry.
	MaxAmountDigits = 30
)

var (
	// MinAmount is the smallest amount accepted for conversion.
	MinAmount = decimal.RequireFromString("0.01")
	// MaxAmount is the largest amount accepted for conversion.
	MaxAmount = decimal.New(1, 15)
	// DefaultAmount is the amount prefilled in the form.
	DefaultAmount = decimal.RequireFromString("1.00")
	// AmountStep is the increment of the amount input.
	AmountStep = decimal.RequireFromString("1.00")
)

// ConversionRequest is a single user request to convert Amount from BaseCode to TargetCode.
type ConversionRequest struct {
	BaseCode   string          `validate:"required,len=3,uppercase,catalog"`
	TargetCode string          `validate:"required,len=3,uppercase,catalog"`
	Amount     decimal.Decimal `validate:"-"`
}

// ConversionResult is the outcome of one conversion. Rate and ConvertedAmount
// are nil when the rate could not be retrieved; ErrorMessage then says why.
type ConversionResult struct {
	BaseCode        string
	TargetCode      string
	Amount          decimal.Decimal
	Rate            *decimal.Decimal
	ConvertedAmount *decimal.Decimal
	ErrorMessage    string
}

// OK reports whether the result carries a converted amount.
func (r *ConversionResult) OK() bool {
	return r != nil && r.Rate != nil && r.ConvertedAmount != nil
}

// MetricLabel returns the heading of the result metric, e.g. "USD to EUR".
func (r *ConversionResult) MetricLabel() string {
	return r.BaseCode + " to " + r.TargetCode
}

// MetricValue returns the converted amount with its currency, e.g. "9.0000 EUR".
func (r *ConversionResult) MetricValue() string {
	if !r.OK() {
		return ""
	}
	return FormatAmount(*r.ConvertedAmount) + " " + r.TargetCode
}

// UnitLine describes the unit rate, e.g. "1 USD = 0.9000 EUR".
func (r *ConversionResult) UnitLine() string {
	if !r.OK() {
		return ""
	}
	return "1 " + r.BaseCode + " = " + FormatAmount(*r.Rate) + " " + r.TargetCode
}

// FormatAmount renders d rounded to DisplayPlaces with thousands separators,
// e.g. 1234.5 -> "1,234.5000".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(DisplayPlaces)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(sign) + len(intPart) + len(intPart)/3 + 1 + len(frac))
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
