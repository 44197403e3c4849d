package httpapi

import (
	"net/http"
	"strconv"

	"currency-exchange/internal/domain"
)

const pairTokenLength = 6

// getExchangeRates godoc
// @Summary List stored exchange rates
// @Tags ExchangeRates
// @Produce json
// @Success 200 {array} domain.ExchangeRate
// @Router /exchangeRates [get]
func (rt *Router) getExchangeRates(w http.ResponseWriter, r *http.Request, _ Path) {
	rates, err := rt.rates.GetAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}

// getExchangeRate godoc
// @Summary Get a stored rate by currency pair
// @Description The pair is a 6-character token: base code followed by target code.
// @Tags ExchangeRates
// @Produce json
// @Param pair path string true "Pair token, e.g. USDEUR"
// @Success 200 {object} domain.ExchangeRate
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /exchangeRate/{pair} [get]
func (rt *Router) getExchangeRate(w http.ResponseWriter, r *http.Request, segments Path) {
	token := segments[1]
	if len(token) != pairTokenLength {
		writeError(w, r, domain.ErrInvalidCurrencyCode)
		return
	}

	rate, err := rt.rates.GetByCodes(r.Context(), token[:3], token[3:])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}

// addExchangeRate godoc
// @Summary Create a directed exchange rate
// @Tags ExchangeRates
// @Accept x-www-form-urlencoded
// @Produce json
// @Param baseCurrencyCode formData string true "Base currency code"
// @Param targetCurrencyCode formData string true "Target currency code"
// @Param rate formData number true "Rate, must be > 0"
// @Success 200 {object} domain.ExchangeRate
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Failure 409 {object} messageResponse
// @Router /exchangeRates [post]
func (rt *Router) addExchangeRate(w http.ResponseWriter, r *http.Request, _ Path) {
	baseCode := r.PostFormValue("baseCurrencyCode")
	targetCode := r.PostFormValue("targetCurrencyCode")
	rawRate := r.PostFormValue("rate")
	if baseCode == "" || targetCode == "" || rawRate == "" {
		writeError(w, r, domain.ErrFieldMissing)
		return
	}

	rateValue, err := strconv.ParseFloat(rawRate, 64)
	if err != nil {
		writeError(w, r, domain.ErrInvalidRate)
		return
	}

	rate, err := rt.rates.Add(r.Context(), baseCode, targetCode, rateValue)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rate)
}
