package exchange

import (
	"context"
	"errors"

	"currency-exchange/internal/currency"
	"currency-exchange/internal/domain"
)

// RateSource is the read-only slice of the rate store the resolver uses.
type RateSource interface {
	GetByPair(ctx context.Context, baseID, targetID int64) (domain.RateEdge, bool, error)
}

// Resolver computes a conversion from possibly incomplete directed rate data.
// Strategies are tried in a fixed order and the first hit wins: the stored
// edge, the reversed edge inverted, then a two-hop composition through the
// cross currency. Each strategy reports a plain miss rather than an error, so
// fallback costs nothing.
type Resolver struct {
	currencies CurrencyLookup
	rates      RateSource
	crossCode  string
}

type strategy func(ctx context.Context, base, target domain.Currency) (float64, bool, error)

func (r *Resolver) Convert(ctx context.Context, baseCode, targetCode string, amount float64) (domain.Exchange, error) {
	if err := currency.ValidateCode(baseCode); err != nil {
		return domain.Exchange{}, err
	}
	if err := currency.ValidateCode(targetCode); err != nil {
		return domain.Exchange{}, err
	}

	base, err := r.currencies.GetByCode(ctx, baseCode)
	if err != nil {
		return domain.Exchange{}, err
	}
	target, err := r.currencies.GetByCode(ctx, targetCode)
	if err != nil {
		return domain.Exchange{}, err
	}

	rate, err := r.resolveRate(ctx, base, target)
	if err != nil {
		return domain.Exchange{}, err
	}

	return domain.Exchange{
		BaseCurrency:    base,
		TargetCurrency:  target,
		Rate:            rate,
		Amount:          amount,
		ConvertedAmount: amount * rate,
	}, nil
}

func (r *Resolver) resolveRate(ctx context.Context, base, target domain.Currency) (float64, error) {
	// Converting a currency to itself needs no stored edge.
	if base.ID == target.ID {
		return 1.0, nil
	}

	strategies := []strategy{r.direct, r.inverse, r.cross}
	for _, resolve := range strategies {
		rate, found, err := resolve(ctx, base, target)
		if err != nil {
			return 0, err
		}
		if found {
			return rate, nil
		}
	}
	return 0, domain.ErrExchangeUnavailable
}

func (r *Resolver) direct(ctx context.Context, base, target domain.Currency) (float64, bool, error) {
	edge, found, err := r.rates.GetByPair(ctx, base.ID, target.ID)
	if err != nil || !found {
		return 0, false, err
	}
	return edge.Rate, true, nil
}

func (r *Resolver) inverse(ctx context.Context, base, target domain.Currency) (float64, bool, error) {
	edge, found, err := r.rates.GetByPair(ctx, target.ID, base.ID)
	if err != nil || !found {
		return 0, false, err
	}
	return 1 / edge.Rate, true, nil
}

// cross composes base→crossCurrency→target. Each leg is resolved
// direct-or-inverse only; the cross strategy never recurses into itself.
func (r *Resolver) cross(ctx context.Context, base, target domain.Currency) (float64, bool, error) {
	ref, err := r.currencies.GetByCode(ctx, r.crossCode)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) || errors.Is(err, domain.ErrInvalidCurrencyCode) {
			// No usable cross currency means this strategy simply misses.
			return 0, false, nil
		}
		return 0, false, err
	}

	baseToRef, found, err := r.directOrInverse(ctx, base, ref)
	if err != nil || !found {
		return 0, false, err
	}
	refToTarget, found, err := r.directOrInverse(ctx, ref, target)
	if err != nil || !found {
		return 0, false, err
	}
	return baseToRef * refToTarget, true, nil
}

func (r *Resolver) directOrInverse(ctx context.Context, base, target domain.Currency) (float64, bool, error) {
	rate, found, err := r.direct(ctx, base, target)
	if err != nil || found {
		return rate, found, err
	}
	return r.inverse(ctx, base, target)
}

func NewResolver(currencies CurrencyLookup, rates RateSource, crossCode string) *Resolver {
	if crossCode == "" {
		crossCode = "USD"
	}
	return &Resolver{currencies: currencies, rates: rates, crossCode: crossCode}
}
