package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=converter.go -destination=mock_converter.go -package=services

// ExchangeRateForCurrencyReader fetches current exchange rates from an external service
type ExchangeRateForCurrencyReader interface {
	GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error)
}

var (
	ErrValidation = errors.New("validation error")
)

// validate checks ConversionRequest tags; "catalog" restricts a code to the supported currencies.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("catalog", func(fl validator.FieldLevel) bool {
		return models.IsSupportedCurrency(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register catalog validation: %v", err))
	}
	return v
}

// ConverterService converts amounts between catalog currencies.
type ConverterService struct {
	reader ExchangeRateForCurrencyReader
}

// NewConverterService creates a new service instance
func NewConverterService(reader ExchangeRateForCurrencyReader) *ConverterService {
	return &ConverterService{
		reader: reader,
	}
}

// Convert validates req, fetches the rate and multiplies the amount by it.
//
// Invalid input returns an error wrapping ErrValidation and a nil result.
// A failed rate lookup returns the lookup error together with a result whose
// ErrorMessage explains the failure and whose Rate is nil.
func (svc *ConverterService) Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error) {
	if err := svc.validateRequest(req); err != nil {
		return nil, err
	}

	result := &models.ConversionResult{
		BaseCode:   req.BaseCode,
		TargetCode: req.TargetCode,
		Amount:     req.Amount,
	}

	rate, err := svc.reader.GetExchangeRateForCurrency(ctx, req.BaseCode, req.TargetCode)
	if err != nil {
		result.ErrorMessage = err.Error()
		return result, err
	}

	converted := req.Amount.Mul(rate)
	result.Rate = &rate
	result.ConvertedAmount = &converted

	logger.Log.Infow("converted amount",
		"from", req.BaseCode,
		"to", req.TargetCode,
		"amount", req.Amount.String(),
		"rate", rate.String(),
		"converted", converted.String(),
	)

	return result, nil
}

func (svc *ConverterService) validateRequest(req models.ConversionRequest) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: unsupported %s %q", ErrValidation, fieldLabel(fe.Field()), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return validateAmount(req.Amount)
}

// validateAmount keeps the amount within [MinAmount, MaxAmount] and at most
// MaxAmountDigits significant digits. Sign, digit count and exponent are
// checked before any comparison so that an input like 1e20000000 is never
// expanded to its full digits.
func validateAmount(amount decimal.Decimal) error {
	tooSmall := fmt.Errorf("%w: amount must be at least %s", ErrValidation, models.MinAmount.StringFixed(2))
	tooLarge := fmt.Errorf("%w: amount must be at most %s", ErrValidation, models.MaxAmount.String())

	if amount.Sign() <= 0 {
		return tooSmall
	}

	digits := int64(amount.NumDigits())
	if digits > models.MaxAmountDigits {
		return fmt.Errorf("%w: amount must have at most %d significant digits", ErrValidation, models.MaxAmountDigits)
	}

	// digits left of the decimal point; 0.01 has -1, 1e15 has 16
	intDigits := digits + int64(amount.Exponent())
	switch {
	case intDigits < -1:
		return tooSmall
	case intDigits > 16:
		return tooLarge
	case amount.LessThan(models.MinAmount):
		return tooSmall
	case amount.GreaterThan(models.MaxAmount):
		return tooLarge
	}
	return nil
}

func fieldLabel(field string) string {
	switch field {
	case "BaseCode":
		return "base currency"
	case "TargetCode":
		return "target currency"
	default:
		return field
	}
}
