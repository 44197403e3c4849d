package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"currency-exchange/internal/domain"

	"github.com/sirupsen/logrus"
)

type messageResponse struct {
	Message string `json:"message"`
}

// statusOf classifies a domain failure into a client-facing status. Zero
// means the error is not classified and must be treated as internal.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrCurrencyNotFound),
		errors.Is(err, domain.ErrExchangeRateNotFound),
		errors.Is(err, domain.ErrExchangeUnavailable):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCurrencyExists),
		errors.Is(err, domain.ErrExchangeRateExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCurrencyCodeMissing),
		errors.Is(err, domain.ErrFieldMissing),
		errors.Is(err, domain.ErrInvalidCurrencyCode),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrInvalidPath):
		return http.StatusBadRequest
	default:
		return 0
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response body")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(statusCode)
	_, _ = w.Write(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == 0 {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, messageResponse{Message: "internal server error"})
		return
	}
	writeJSON(w, status, messageResponse{Message: err.Error()})
}
