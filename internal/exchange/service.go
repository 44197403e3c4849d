package exchange

import (
	"context"
	"errors"
	"math"
	"sync"

	"currency-exchange/internal/adapters"
	"currency-exchange/internal/currency"
	"currency-exchange/internal/domain"
)

// CurrencyLookup is the slice of the currency registry this package needs.
type CurrencyLookup interface {
	GetByCode(ctx context.Context, code string) (domain.Currency, error)
}

type Service struct {
	currencies CurrencyLookup
	repo       adapters.ExchangeRateRepository
	// writeMu is the process-wide write lock shared with the currency service.
	writeMu *sync.Mutex
}

func (s *Service) GetAll(ctx context.Context) ([]domain.ExchangeRate, error) {
	return s.repo.GetAll(ctx)
}

// GetByCodes returns the stored edge for the exact ordered pair. An unknown
// currency on either side reads the same as a missing edge: the pair has no
// stored rate.
func (s *Service) GetByCodes(ctx context.Context, baseCode, targetCode string) (domain.ExchangeRate, error) {
	base, target, err := s.resolvePair(ctx, baseCode, targetCode)
	if err != nil {
		if errors.Is(err, domain.ErrCurrencyNotFound) {
			return domain.ExchangeRate{}, domain.ErrExchangeRateNotFound
		}
		return domain.ExchangeRate{}, err
	}

	edge, found, err := s.repo.GetByPair(ctx, base.ID, target.ID)
	if err != nil {
		return domain.ExchangeRate{}, err
	}
	if !found {
		return domain.ExchangeRate{}, domain.ErrExchangeRateNotFound
	}

	return domain.ExchangeRate{
		ID:             edge.ID,
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           edge.Rate,
	}, nil
}

func (s *Service) Add(ctx context.Context, baseCode, targetCode string, rate float64) (domain.ExchangeRate, error) {
	if rate <= 0 || math.IsInf(rate, 0) || math.IsNaN(rate) {
		return domain.ExchangeRate{}, domain.ErrInvalidRate
	}

	base, target, err := s.resolvePair(ctx, baseCode, targetCode)
	if err != nil {
		return domain.ExchangeRate{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	edge, err := s.repo.Insert(ctx, base.ID, target.ID, rate)
	if err != nil {
		return domain.ExchangeRate{}, err
	}

	return domain.ExchangeRate{
		ID:             edge.ID,
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           edge.Rate,
	}, nil
}

func (s *Service) resolvePair(ctx context.Context, baseCode, targetCode string) (domain.Currency, domain.Currency, error) {
	if err := currency.ValidateCode(baseCode); err != nil {
		return domain.Currency{}, domain.Currency{}, err
	}
	if err := currency.ValidateCode(targetCode); err != nil {
		return domain.Currency{}, domain.Currency{}, err
	}

	base, err := s.currencies.GetByCode(ctx, baseCode)
	if err != nil {
		return domain.Currency{}, domain.Currency{}, err
	}
	target, err := s.currencies.GetByCode(ctx, targetCode)
	if err != nil {
		return domain.Currency{}, domain.Currency{}, err
	}
	return base, target, nil
}

func NewService(currencies CurrencyLookup, repo adapters.ExchangeRateRepository, writeMu *sync.Mutex) *Service {
	return &Service{currencies: currencies, repo: repo, writeMu: writeMu}
}
