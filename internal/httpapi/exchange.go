package httpapi

import (
	"math"
	"net/http"
	"strconv"

	"currency-exchange/internal/domain"
)

// getExchange godoc
// @Summary Convert an amount between two currencies
// @Description Resolves a rate via the stored edge, its inverse, or a two-hop
// @Description composition through the reference currency.
// @Tags Exchange
// @Produce json
// @Param from query string true "Base currency code"
// @Param to query string true "Target currency code"
// @Param amount query number true "Amount to convert"
// @Success 200 {object} domain.Exchange
// @Failure 400 {object} messageResponse
// @Failure 404 {object} messageResponse
// @Router /exchange [get]
func (rt *Router) getExchange(w http.ResponseWriter, r *http.Request, _ Path) {
	query := r.URL.Query()
	if len(query) > 3 {
		writeError(w, r, domain.ErrInvalidPath)
		return
	}

	from := query.Get("from")
	to := query.Get("to")
	rawAmount := query.Get("amount")
	if from == "" || to == "" || rawAmount == "" {
		writeError(w, r, domain.ErrFieldMissing)
		return
	}

	amount, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil || math.IsInf(amount, 0) || math.IsNaN(amount) {
		writeError(w, r, domain.ErrInvalidAmount)
		return
	}

	result, err := rt.exchanger.Convert(r.Context(), from, to, amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
