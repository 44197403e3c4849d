package cache

import (
	"fmt"

	"currency-exchange/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoCurrencyCache keeps currency records keyed by code. Currencies are
// never mutated or deleted once created, so entries need no invalidation.
type RistrettoCurrencyCache struct {
	cache *ristretto.Cache
}

func NewCurrencyCache(maxItems int64) (*RistrettoCurrencyCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create currency cache failed: %w", err)
	}
	return &RistrettoCurrencyCache{cache: c}, nil
}

func (c *RistrettoCurrencyCache) Get(code string) (domain.Currency, bool) {
	if v, ok := c.cache.Get(code); ok {
		currency, ok := v.(domain.Currency)
		return currency, ok
	}
	return domain.Currency{}, false
}

func (c *RistrettoCurrencyCache) Set(currency domain.Currency) {
	c.cache.Set(currency.Code, currency, 1)
}

func (c *RistrettoCurrencyCache) Close() { c.cache.Close() }
