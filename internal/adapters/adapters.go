package adapters

import (
	"context"

	"currency-exchange/internal/domain"
)

type CurrencyRepository interface {
	GetAll(ctx context.Context) ([]domain.Currency, error)
	GetOne(ctx context.Context, filter domain.CurrencyFilter) (domain.Currency, error)
	Insert(ctx context.Context, name, code, sign string) (domain.Currency, error)
	Count(ctx context.Context) (int64, error)
}

type ExchangeRateRepository interface {
	GetAll(ctx context.Context) ([]domain.ExchangeRate, error)
	// GetByPair reports a missing edge through the bool, not an error.
	GetByPair(ctx context.Context, baseID, targetID int64) (domain.RateEdge, bool, error)
	Insert(ctx context.Context, baseID, targetID int64, rate float64) (domain.RateEdge, error)
	Count(ctx context.Context) (int64, error)
}

type CurrencyCache interface {
	Get(code string) (domain.Currency, bool)
	Set(currency domain.Currency)
}
