package exchange

import (
	"context"
	"math"
	"sync"
	"testing"

	"currency-exchange/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockExchangeRateRepository struct{ mock.Mock }

func (m *MockExchangeRateRepository) GetAll(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).([]domain.ExchangeRate)
	return rates, args.Error(1)
}

func (m *MockExchangeRateRepository) GetByPair(ctx context.Context, baseID, targetID int64) (domain.RateEdge, bool, error) {
	args := m.Called(ctx, baseID, targetID)
	edge, _ := args.Get(0).(domain.RateEdge)
	return edge, args.Bool(1), args.Error(2)
}

func (m *MockExchangeRateRepository) Insert(ctx context.Context, baseID, targetID int64, rate float64) (domain.RateEdge, error) {
	args := m.Called(ctx, baseID, targetID, rate)
	edge, _ := args.Get(0).(domain.RateEdge)
	return edge, args.Error(1)
}

func (m *MockExchangeRateRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func newTestService() (*Service, *MockCurrencyLookup, *MockExchangeRateRepository) {
	currencies := new(MockCurrencyLookup)
	repo := new(MockExchangeRateRepository)
	var mu sync.Mutex
	return NewService(currencies, repo, &mu), currencies, repo
}

func TestService_GetByCodes_Success(t *testing.T) {
	svc, currencies, repo := newTestService()
	currencies.On("GetByCode", mock.Anything, "USD").Return(usd, nil).Once()
	currencies.On("GetByCode", mock.Anything, "EUR").Return(eur, nil).Once()
	repo.On("GetByPair", mock.Anything, usd.ID, eur.ID).
		Return(domain.RateEdge{ID: 5, BaseCurrencyID: usd.ID, TargetCurrencyID: eur.ID, Rate: 0.9}, true, nil).Once()

	got, err := svc.GetByCodes(context.Background(), "USD", "EUR")

	require.NoError(t, err)
	require.Equal(t, domain.ExchangeRate{ID: 5, BaseCurrency: usd, TargetCurrency: eur, Rate: 0.9}, got)
	repo.AssertExpectations(t)
}

func TestService_GetByCodes_MissingEdge(t *testing.T) {
	svc, currencies, repo := newTestService()
	currencies.On("GetByCode", mock.Anything, "USD").Return(usd, nil).Once()
	currencies.On("GetByCode", mock.Anything, "EUR").Return(eur, nil).Once()
	repo.On("GetByPair", mock.Anything, usd.ID, eur.ID).Return(domain.RateEdge{}, false, nil).Once()

	_, err := svc.GetByCodes(context.Background(), "USD", "EUR")
	require.ErrorIs(t, err, domain.ErrExchangeRateNotFound)
}

func TestService_GetByCodes_UnknownCurrencyReadsAsMissingRate(t *testing.T) {
	svc, currencies, repo := newTestService()
	currencies.On("GetByCode", mock.Anything, "XXX").
		Return(domain.Currency{}, domain.ErrCurrencyNotFound).Once()

	_, err := svc.GetByCodes(context.Background(), "XXX", "EUR")

	require.ErrorIs(t, err, domain.ErrExchangeRateNotFound)
	repo.AssertNotCalled(t, "GetByPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetByCodes_InvalidCodeLength(t *testing.T) {
	svc, currencies, _ := newTestService()

	_, err := svc.GetByCodes(context.Background(), "USDX", "EUR")

	require.ErrorIs(t, err, domain.ErrInvalidCurrencyCode)
	currencies.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestService_Add_Success(t *testing.T) {
	svc, currencies, repo := newTestService()
	currencies.On("GetByCode", mock.Anything, "USD").Return(usd, nil).Once()
	currencies.On("GetByCode", mock.Anything, "EUR").Return(eur, nil).Once()
	repo.On("Insert", mock.Anything, usd.ID, eur.ID, 0.9).
		Return(domain.RateEdge{ID: 1, BaseCurrencyID: usd.ID, TargetCurrencyID: eur.ID, Rate: 0.9}, nil).Once()

	got, err := svc.Add(context.Background(), "USD", "EUR", 0.9)

	require.NoError(t, err)
	require.Equal(t, domain.ExchangeRate{ID: 1, BaseCurrency: usd, TargetCurrency: eur, Rate: 0.9}, got)
	repo.AssertExpectations(t)
}

func TestService_Add_DuplicatePair(t *testing.T) {
	svc, currencies, repo := newTestService()
	currencies.On("GetByCode", mock.Anything, "USD").Return(usd, nil).Once()
	currencies.On("GetByCode", mock.Anything, "EUR").Return(eur, nil).Once()
	repo.On("Insert", mock.Anything, usd.ID, eur.ID, 0.9).
		Return(domain.RateEdge{}, domain.ErrExchangeRateExists).Once()

	_, err := svc.Add(context.Background(), "USD", "EUR", 0.9)
	require.ErrorIs(t, err, domain.ErrExchangeRateExists)
}

func TestService_Add_UnknownCurrencyPropagates(t *testing.T) {
	svc, currencies, repo := newTestService()
	currencies.On("GetByCode", mock.Anything, "XXX").
		Return(domain.Currency{}, domain.ErrCurrencyNotFound).Once()

	_, err := svc.Add(context.Background(), "XXX", "EUR", 0.9)

	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Add_RejectsNonPositiveAndNonFiniteRates(t *testing.T) {
	svc, currencies, _ := newTestService()

	for _, rate := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err := svc.Add(context.Background(), "USD", "EUR", rate)
		require.ErrorIs(t, err, domain.ErrInvalidRate)
	}
	currencies.AssertNotCalled(t, "GetByCode", mock.Anything, mock.Anything)
}

func TestService_GetAll_EmptyStore(t *testing.T) {
	svc, _, repo := newTestService()
	repo.On("GetAll", mock.Anything).Return([]domain.ExchangeRate{}, nil).Once()

	got, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Empty(t, got)
}
