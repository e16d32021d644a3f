package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Form field names posted by the converter page.
const (
	fieldBase   = "base"
	fieldTarget = "target"
	fieldAmount = "amount"
)

// pageView is the data rendered by templates/index.html.
type pageView struct {
	Currencies []models.CurrencyEntry
	Base       string
	Target     string
	Amount     string
	MinAmount  string
	AmountStep string

	Result       *models.ConversionResult
	ErrorMessage string
	RetryPrompt  string
	InputError   string
}

func newPageView() pageView {
	return pageView{
		Currencies: models.Currencies(),
		Base:       models.DefaultBaseCurrency().Code,
		Target:     models.DefaultTargetCurrency().Code,
		Amount:     models.DefaultAmount.StringFixed(2),
		MinAmount:  models.MinAmount.StringFixed(2),
		AmountStep: models.AmountStep.StringFixed(2),
	}
}

// NewIndexHandler renders the converter form with default selections.
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, http.StatusOK, newPageView())
	}
}

// NewConvertFormHandler handles the converter form submission and renders
// the page again with either the result or the reason it failed.
func NewConvertFormHandler(svc Converter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := newPageView()

		if err := r.ParseForm(); err != nil {
			view.InputError = "Invalid form submission."
			renderPage(w, http.StatusBadRequest, view)
			return
		}

		view.Base = strings.ToUpper(strings.TrimSpace(r.PostForm.Get(fieldBase)))
		view.Target = strings.ToUpper(strings.TrimSpace(r.PostForm.Get(fieldTarget)))
		view.Amount = strings.TrimSpace(r.PostForm.Get(fieldAmount))

		amount, err := decimal.NewFromString(view.Amount)
		if err != nil {
			view.InputError = "Amount must be a number."
			renderPage(w, http.StatusBadRequest, view)
			return
		}

		result, err := svc.Convert(r.Context(), models.ConversionRequest{
			BaseCode:   view.Base,
			TargetCode: view.Target,
			Amount:     amount,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				view.InputError = err.Error()
				renderPage(w, http.StatusBadRequest, view)
			case result != nil && result.ErrorMessage != "":
				view.ErrorMessage = result.ErrorMessage
				view.RetryPrompt = retryPrompt
				renderPage(w, http.StatusOK, view)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				view.RetryPrompt = retryPrompt
				renderPage(w, http.StatusInternalServerError, view)
			}
			return
		}

		view.Result = result
		renderPage(w, http.StatusOK, view)
	}
}

func renderPage(w http.ResponseWriter, status int, view pageView) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		logger.Log.Errorw("failed to render page", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
