package api

import (
	_ "currency-exchange/docs"
	"currency-exchange/internal/httpapi"
	"currency-exchange/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swagger "github.com/swaggo/http-swagger"
)

// NewRouter builds the outer mux: operational endpoints live here, while the
// domain API keeps its own ordered route table and is mounted catch-all so it
// controls its own dispatch and error classification.
func NewRouter(domainRouter *httpapi.Router, m *metrics.Metrics) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(m.Middleware)

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Method("GET", "/metrics", promhttp.Handler())

	router.Handle("/*", domainRouter)
	return router
}
