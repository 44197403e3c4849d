package httpapi

import (
	"context"
	"net/http"

	"currency-exchange/internal/domain"
)

type CurrencyService interface {
	GetAll(ctx context.Context) ([]domain.Currency, error)
	GetByCode(ctx context.Context, code string) (domain.Currency, error)
	Add(ctx context.Context, name, code, sign string) (domain.Currency, error)
}

type RateService interface {
	GetAll(ctx context.Context) ([]domain.ExchangeRate, error)
	GetByCodes(ctx context.Context, baseCode, targetCode string) (domain.ExchangeRate, error)
	Add(ctx context.Context, baseCode, targetCode string, rate float64) (domain.ExchangeRate, error)
}

type Exchanger interface {
	Convert(ctx context.Context, baseCode, targetCode string, amount float64) (domain.Exchange, error)
}

type route struct {
	method  string
	pattern Path
	handle  func(w http.ResponseWriter, r *http.Request, segments Path)
}

// Router dispatches against an ordered route table: the first entry whose
// method and pattern match wins, so the bare /currency entry must stay below
// /currency/* to act as its fallthrough.
type Router struct {
	currencies CurrencyService
	rates      RateService
	exchanger  Exchanger
	routes     []route
}

func NewRouter(currencies CurrencyService, rates RateService, exchanger Exchanger) *Router {
	rt := &Router{currencies: currencies, rates: rates, exchanger: exchanger}
	rt.routes = []route{
		{http.MethodGet, Path{"currencies"}, rt.getCurrencies},
		{http.MethodGet, Path{"currency", Wildcard}, rt.getCurrency},
		{http.MethodGet, Path{"currency"}, rt.currencyCodeMissing},
		{http.MethodGet, Path{"exchangeRates"}, rt.getExchangeRates},
		{http.MethodGet, Path{"exchangeRate", Wildcard}, rt.getExchangeRate},
		{http.MethodGet, Path{"exchange"}, rt.getExchange},
		{http.MethodPost, Path{"currencies"}, rt.addCurrency},
		{http.MethodPost, Path{"exchangeRates"}, rt.addExchangeRate},
	}
	return rt
}

func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	segments := SplitPath(r.URL.Path)
	for _, entry := range rt.routes {
		if r.Method == entry.method && segments.Match(entry.pattern) {
			entry.handle(w, r, segments)
			return
		}
	}
	writeError(w, r, domain.ErrInvalidPath)
}
