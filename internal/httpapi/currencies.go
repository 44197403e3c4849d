package httpapi

import (
	"net/http"

	"currency-exchange/internal/domain"
)

// getCurrencies godoc
// @Summary List currencies
// @Tags Currencies
// @Produce json
// @Success 200 {array} domain.Currency
// @Router /currencies [get]
func (rt *Router) getCurrencies(w http.ResponseWriter, r *http.Request, _ Path) {
	currencies, err := rt.currencies.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, currencies)
}

// getCurrency godoc
// @Summary Get a currency by code
// @Tags Currencies
// @Produce json
// @Param code path string true "3-letter currency code"
// @Success 200 {object} domain.Currency
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /currency/{code} [get]
func (rt *Router) getCurrency(w http.ResponseWriter, r *http.Request, segments Path) {
	code := segments[1]

	currency, err := rt.currencies.GetByCode(r.Context(), code)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, currency)
}

func (rt *Router) currencyCodeMissing(w http.ResponseWriter, r *http.Request, _ Path) {
	writeError(w, r, domain.ErrCurrencyCodeMissing)
}

// addCurrency godoc
// @Summary Create a currency
// @Tags Currencies
// @Accept x-www-form-urlencoded
// @Produce json
// @Param name formData string true "Full name"
// @Param code formData string true "3-letter code"
// @Param sign formData string true "Display sign"
// @Success 200 {object} domain.Currency
// @Failure 400 {object} messageResponse
// @Failure 409 {object} messageResponse
// @Router /currencies [post]
func (rt *Router) addCurrency(w http.ResponseWriter, r *http.Request, _ Path) {
	name := r.PostFormValue("name")
	code := r.PostFormValue("code")
	sign := r.PostFormValue("sign")
	if name == "" || code == "" || sign == "" {
		writeError(w, r, domain.ErrFieldMissing)
		return
	}

	currency, err := rt.currencies.Add(r.Context(), name, code, sign)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, currency)
}
