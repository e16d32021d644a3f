package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

func successResult(base, target, amount, rate string) *models.ConversionResult {
	a := decimal.RequireFromString(amount)
	r := decimal.RequireFromString(rate)
	c := a.Mul(r)
	return &models.ConversionResult{
		BaseCode:        base,
		TargetCode:      target,
		Amount:          a,
		Rate:            &r,
		ConvertedAmount: &c,
	}
}

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		query        string
		mockSetup    func(m *MockConverter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:  "success",
			query: "from=USD&to=EUR&amount=10",
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), models.ConversionRequest{
						BaseCode:   "USD",
						TargetCode: "EUR",
						Amount:     decimal.RequireFromString("10"),
					}).
					Return(successResult("USD", "EUR", "10", "0.90"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{
				"from":             "USD",
				"to":               "EUR",
				"amount":           "10",
				"rate":             "0.9",
				"converted_amount": "9",
				"metric_label":     "USD to EUR",
				"metric_value":     "9.0000 EUR",
				"unit_line":        "1 USD = 0.9000 EUR",
			},
		},
		{
			name:  "lowercase codes and default amount",
			query: "from=usd&to=pkr",
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), models.ConversionRequest{
						BaseCode:   "USD",
						TargetCode: "PKR",
						Amount:     models.DefaultAmount,
					}).
					Return(successResult("USD", "PKR", "1.00", "280"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{
				"from":             "USD",
				"to":               "PKR",
				"amount":           "1",
				"rate":             "280",
				"converted_amount": "280",
				"metric_label":     "USD to PKR",
				"metric_value":     "280.0000 PKR",
				"unit_line":        "1 USD = 280.0000 PKR",
			},
		},
		{
			name:         "invalid amount",
			query:        "from=USD&to=EUR&amount=ten",
			mockSetup:    func(m *MockConverter) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid amount"},
		},
		{
			name:  "validation error",
			query: "from=RUB&to=EUR&amount=1",
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: unsupported base currency %q", services.ErrValidation, "RUB"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": `validation error: unsupported base currency "RUB"`},
		},
		{
			name:  "api error",
			query: "from=GBP&to=JPY&amount=5",
			mockSetup: func(m *MockConverter) {
				err := &facades.ServiceError{Type: "invalid-key"}
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(&models.ConversionResult{BaseCode: "GBP", TargetCode: "JPY", ErrorMessage: err.Error()}, err)
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: map[string]string{"error": "API Error: invalid-key"},
		},
		{
			name:  "transport error",
			query: "from=GBP&to=JPY&amount=5",
			mockSetup: func(m *MockConverter) {
				err := &facades.TransportError{Err: errors.New("timeout")}
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(&models.ConversionResult{BaseCode: "GBP", TargetCode: "JPY", ErrorMessage: err.Error()}, err)
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: map[string]string{"error": "Failed to connect to the currency API: timeout"},
		},
		{
			name:  "unexpected error",
			query: "from=GBP&to=JPY&amount=5",
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockConverter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewConvertHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?"+tt.query, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			res := w.Result()
			defer res.Body.Close()

			require.Equal(t, tt.expectedCode, res.StatusCode)
			assert.Contains(t, res.Header.Get("Content-Type"), "application/json")

			var body map[string]string
			require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestConvertHandler_AmountBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "huge exponent", amount: "1e20000000", want: "validation error: amount must be at most 1000000000000000"},
		{name: "above maximum", amount: "1000000000000001", want: "validation error: amount must be at most 1000000000000000"},
		{name: "tiny exponent", amount: "1e-20000000", want: "validation error: amount must be at least 0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No EXPECT: the amount never reaches the rate API.
			svc := services.NewConverterService(services.NewMockExchangeRateForCurrencyReader(ctrl))
			handler := NewConvertHandler(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?from=USD&to=EUR&amount="+tt.amount, nil)
			w := httptest.NewRecorder()

			handler(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, map[string]string{"error": tt.want}, body)
		})
	}
}
