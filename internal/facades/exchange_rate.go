package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
)

const resultSuccess = "success"

// Lookup outcomes used as the "result" metric label.
const (
	lookupSuccess        = "success"
	lookupServiceError   = "service_error"
	lookupTransportError = "transport_error"
)

var (
	rateLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_lookups_total",
			Help: "Total number of exchange rate lookups by outcome",
		},
		[]string{"result"},
	)

	rateLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "rate_lookup_duration_seconds",
			Help:    "Duration of exchange rate lookups",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
		},
	)
)

// HTTPDoer sends HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// pairResponse is the body of GET /v6/{key}/pair/{base}/{target}.
type pairResponse struct {
	Result         string           `json:"result"`
	ErrorType      string           `json:"error-type"`
	BaseCode       string           `json:"base_code"`
	TargetCode     string           `json:"target_code"`
	ConversionRate *decimal.Decimal `json:"conversion_rate"`
}

// ExchangeRateAPIFacade fetches pair rates from ExchangeRate-API.
type ExchangeRateAPIFacade struct {
	client  HTTPDoer
	baseURL string
	apiKey  string
}

// NewExchangeRateAPIFacade creates a new facade. baseURL is the API origin,
// e.g. https://v6.exchangerate-api.com.
func NewExchangeRateAPIFacade(client HTTPDoer, baseURL, apiKey string) *ExchangeRateAPIFacade {
	return &ExchangeRateAPIFacade{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// NewHTTPClient returns the client used for rate lookups.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// GetExchangeRateForCurrency fetches the rate converting fromCurrency into toCurrency.
// It returns *ServiceError when the API reports a failure and *TransportError
// when the API cannot be reached or answers with something unreadable.
func (f *ExchangeRateAPIFacade) GetExchangeRateForCurrency(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	timer := prometheus.NewTimer(rateLookupDuration)
	defer timer.ObserveDuration()

	rate, err := f.fetchPair(ctx, fromCurrency, toCurrency)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			rateLookupsTotal.WithLabelValues(lookupServiceError).Inc()
		} else {
			rateLookupsTotal.WithLabelValues(lookupTransportError).Inc()
		}
		logger.Log.Errorw("failed to fetch exchange rate",
			"from", fromCurrency, "to", toCurrency, "error", err)
		return decimal.Zero, err
	}

	rateLookupsTotal.WithLabelValues(lookupSuccess).Inc()
	logger.Log.Infow("fetched exchange rate",
		"from", fromCurrency, "to", toCurrency, "rate", rate.String())

	return rate, nil
}

func (f *ExchangeRateAPIFacade) fetchPair(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	endpoint, err := url.JoinPath(f.baseURL, "v6", f.apiKey, "pair", fromCurrency, toCurrency)
	if err != nil {
		return decimal.Zero, &TransportError{Err: fmt.Errorf("build request url: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, &TransportError{Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return decimal.Zero, &TransportError{Err: redactKey(err, f.apiKey)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Zero, &TransportError{Err: fmt.Errorf("read response: %w", err)}
	}

	var payload pairResponse
	decodeErr := json.Unmarshal(body, &payload)

	// The API describes its own failures (bad key, unsupported code, quota)
	// in the body, sometimes alongside a 4xx status.
	if decodeErr == nil && payload.Result != "" && payload.Result != resultSuccess {
		errType := payload.ErrorType
		if errType == "" {
			errType = UnknownErrorType
		}
		return decimal.Zero, &ServiceError{Type: errType}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decimal.Zero, &TransportError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	if decodeErr != nil {
		return decimal.Zero, &TransportError{Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	if payload.Result == "" {
		return decimal.Zero, &TransportError{Err: errors.New("response has no result")}
	}
	if payload.ConversionRate == nil {
		return decimal.Zero, &TransportError{Err: errors.New("response has no conversion_rate")}
	}

	return *payload.ConversionRate, nil
}

// redactKey keeps the API key out of error messages that embed the request URL.
func redactKey(err error, key string) error {
	var urlErr *url.Error
	if key == "" || !errors.As(err, &urlErr) {
		return err
	}
	redacted := *urlErr
	redacted.URL = "[redacted]"
	return &redacted
}
