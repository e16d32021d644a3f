package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// NewConvertHandler returns an HTTP handler converting an amount between two currencies.
// @Summary Convert currency
// @Description Fetches the live rate for the pair and multiplies the amount by it
// @Tags convert
// @Produce json
// @Param from query string true "Source currency code" default(USD)
// @Param to query string true "Target currency code" default(PKR)
// @Param amount query number false "Amount to convert, at least 0.01" default(1.00)
// @Success 200 {object} models.ConvertResponse
// @Failure 400 {object} models.ErrorResponse "Invalid currency or amount"
// @Failure 502 {object} models.ErrorResponse "Rate API error or unreachable"
// @Router /convert [get]
func NewConvertHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		amount := models.DefaultAmount
		if raw := strings.TrimSpace(q.Get("amount")); raw != "" {
			parsed, err := decimal.NewFromString(raw)
			if err != nil {
				writeError(w, r, http.StatusBadRequest, "invalid amount")
				return
			}
			amount = parsed
		}

		req := models.ConversionRequest{
			BaseCode:   strings.ToUpper(strings.TrimSpace(q.Get("from"))),
			TargetCode: strings.ToUpper(strings.TrimSpace(q.Get("to"))),
			Amount:     amount,
		}

		result, err := svc.Convert(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				writeError(w, r, http.StatusBadRequest, err.Error())
			case result != nil && result.ErrorMessage != "":
				writeError(w, r, http.StatusBadGateway, result.ErrorMessage)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, r, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		render.Status(r, http.StatusOK)
		render.JSON(w, r, models.ConvertResponse{
			From:            result.BaseCode,
			To:              result.TargetCode,
			Amount:          result.Amount.String(),
			Rate:            result.Rate.String(),
			ConvertedAmount: result.ConvertedAmount.String(),
			MetricLabel:     result.MetricLabel(),
			MetricValue:     result.MetricValue(),
			UnitLine:        result.UnitLine(),
		})
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, models.ErrorResponse{Error: msg})
}
