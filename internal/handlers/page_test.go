package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

func postForm(t *testing.T, handler http.HandlerFunc, form url.Values) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", res.Header.Get("Content-Type"))
	return res.StatusCode, string(body)
}

func TestIndexHandler(t *testing.T) {
	handler := NewIndexHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	assert.Contains(t, body, "Currency Converter")
	assert.Contains(t, body, `<option value="USD" selected>USD - United States Dollar</option>`)
	assert.Contains(t, body, `<option value="PKR" selected>PKR - Pakistani Rupee</option>`)
	assert.Contains(t, body, `<option value="EUR">EUR - Euro</option>`)
	assert.Contains(t, body, `min="0.01"`)
	assert.Contains(t, body, `step="1.00"`)
	assert.Contains(t, body, `value="1.00"`)
	assert.Contains(t, body, "ExchangeRate-API.com")
	assert.NotContains(t, body, "<h3>Result</h3>")

	// Each selector lists the whole catalog.
	for _, c := range models.Currencies() {
		assert.Equal(t, 2, strings.Count(body, fmt.Sprintf(`value="%s"`, c.Code)), c.Code)
	}
}

func TestConvertFormHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockConverter)
		expectedCode int
		contains     []string
		notContains  []string
	}{
		{
			name: "success",
			form: url.Values{"base": {"USD"}, "target": {"EUR"}, "amount": {"10"}},
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
			contains: []string{
				"<h3>Result</h3>",
				"USD to EUR",
				`<div class="metric-value" id="metric-value">9.0000 EUR</div>`,
				`<div class="info" id="unit-line">1 USD = 0.9000 EUR</div>`,
				`<option value="USD" selected>`,
				`<option value="EUR" selected>`,
				`value="10"`,
			},
			notContains: []string{retryPrompt, `<option value="PKR" selected>`},
		},
		{
			name: "lowercase codes",
			form: url.Values{"base": {" usd "}, "target": {"eur"}, "amount": {"10"}},
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
			contains: []string{
				`<div class="metric-value" id="metric-value">9.0000 EUR</div>`,
				`<option value="USD" selected>`,
				`<option value="EUR" selected>`,
			},
		},
		{
			name: "api error",
			form: url.Values{"base": {"GBP"}, "target": {"JPY"}, "amount": {"5"}},
			mockSetup: func(m *MockConverter) {
				err := &facades.ServiceError{Type: "invalid-key"}
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(&models.ConversionResult{BaseCode: "GBP", TargetCode: "JPY", ErrorMessage: err.Error()}, err)
			},
			expectedCode: http.StatusOK,
			contains:     []string{"API Error: invalid-key", retryPrompt},
			notContains:  []string{"<h3>Result</h3>", "metric-value"},
		},
		{
			name: "transport error",
			form: url.Values{"base": {"GBP"}, "target": {"JPY"}, "amount": {"5"}},
			mockSetup: func(m *MockConverter) {
				err := &facades.TransportError{Err: errors.New("connection refused")}
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(&models.ConversionResult{BaseCode: "GBP", TargetCode: "JPY", ErrorMessage: err.Error()}, err)
			},
			expectedCode: http.StatusOK,
			contains:     []string{"Failed to connect to the currency API: connection refused", retryPrompt},
			notContains:  []string{"<h3>Result</h3>", "metric-value"},
		},
		{
			name: "validation error",
			form: url.Values{"base": {"RUB"}, "target": {"JPY"}, "amount": {"5"}},
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: unsupported base currency %q", services.ErrValidation, "RUB"))
			},
			expectedCode: http.StatusBadRequest,
			contains:     []string{"validation error: unsupported base currency"},
			notContains:  []string{"<h3>Result</h3>", retryPrompt},
		},
		{
			name:         "amount not a number",
			form:         url.Values{"base": {"USD"}, "target": {"EUR"}, "amount": {"abc"}},
			mockSetup:    func(m *MockConverter) {},
			expectedCode: http.StatusBadRequest,
			contains:     []string{"Amount must be a number."},
			notContains:  []string{"<h3>Result</h3>"},
		},
		{
			name: "unexpected error",
			form: url.Values{"base": {"USD"}, "target": {"EUR"}, "amount": {"1"}},
			mockSetup: func(m *MockConverter) {
				m.EXPECT().
					Convert(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			contains:     []string{retryPrompt},
			notContains:  []string{"boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockConverter(ctrl)
			tt.mockSetup(mockSvc)

			code, body := postForm(t, NewConvertFormHandler(mockSvc), tt.form)

			assert.Equal(t, tt.expectedCode, code)
			for _, s := range tt.contains {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, body, s)
			}
		})
	}
}

func TestConvertFormHandler_AmountBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "huge exponent", amount: "1e20000000", want: "amount must be at most 1000000000000000"},
		{name: "above maximum", amount: "1000000000000001", want: "amount must be at most 1000000000000000"},
		{name: "tiny exponent", amount: "1e-20000000", want: "amount must be at least 0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No EXPECT: the amount never reaches the rate API.
			svc := services.NewConverterService(services.NewMockExchangeRateForCurrencyReader(ctrl))

			code, body := postForm(t, NewConvertFormHandler(svc), url.Values{
				"base": {"USD"}, "target": {"EUR"}, "amount": {tt.amount},
			})

			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, "<h3>Result</h3>")
			assert.Less(t, len(body), 64*1024)
		})
	}
}
