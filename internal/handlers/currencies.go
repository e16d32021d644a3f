package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// NewListCurrenciesHandler returns an HTTP handler listing the supported currencies.
// @Summary List currencies
// @Description Returns the supported currency codes and display names in selector order
// @Tags currencies
// @Produce json
// @Success 200 {object} models.CurrenciesResponse
// @Router /currencies [get]
func NewListCurrenciesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusOK)
		render.JSON(w, r, models.CurrenciesResponse{
			Currencies: models.Currencies(),
		})
	}
}
