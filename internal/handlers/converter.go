package handlers

import (
	"context"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

//go:generate mockgen -source=converter.go -destination=mock_converter.go -package=handlers

// Converter defines the interface that the conversion service must implement.
type Converter interface {
	Convert(ctx context.Context, req models.ConversionRequest) (*models.ConversionResult, error)
}

// retryPrompt is shown under any failed rate lookup.
const retryPrompt = "Could not retrieve the conversion rate. Please try again."
