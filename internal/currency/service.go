package currency

import (
	"context"
	"sync"

	"currency-exchange/internal/adapters"
	"currency-exchange/internal/domain"
)

type Service struct {
	repo  adapters.CurrencyRepository
	cache adapters.CurrencyCache
	// writeMu serializes every store write in the process, shared with the
	// exchange-rate service. The store's own constraints stay authoritative.
	writeMu *sync.Mutex
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Currency, error) {
	return s.repo.GetAll(ctx)
}

// GetByCode is the hot lookup path, so it reads through the cache.
func (s *Service) GetByCode(ctx context.Context, code string) (domain.Currency, error) {
	if err := ValidateCode(code); err != nil {
		return domain.Currency{}, err
	}
	if c, ok := s.cache.Get(code); ok {
		return c, nil
	}

	c, err := s.repo.GetOne(ctx, domain.ByCode(code))
	if err != nil {
		return domain.Currency{}, err
	}
	s.cache.Set(c)
	return c, nil
}

func (s *Service) GetOne(ctx context.Context, filter domain.CurrencyFilter) (domain.Currency, error) {
	return s.repo.GetOne(ctx, filter)
}

func (s *Service) Add(ctx context.Context, name, code, sign string) (domain.Currency, error) {
	if err := ValidateCode(code); err != nil {
		return domain.Currency{}, err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	c, err := s.repo.Insert(ctx, name, code, sign)
	if err != nil {
		return domain.Currency{}, err
	}
	s.cache.Set(c)
	return c, nil
}

func NewService(repo adapters.CurrencyRepository, cache adapters.CurrencyCache, writeMu *sync.Mutex) *Service {
	return &Service{repo: repo, cache: cache, writeMu: writeMu}
}
