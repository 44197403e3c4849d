package currency

import (
	"context"
	"errors"
	"sync"
	"testing"

	"currency-exchange/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCurrencyRepository struct{ mock.Mock }

func (m *MockCurrencyRepository) GetAll(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	currencies, _ := args.Get(0).([]domain.Currency)
	return currencies, args.Error(1)
}

func (m *MockCurrencyRepository) GetOne(ctx context.Context, filter domain.CurrencyFilter) (domain.Currency, error) {
	args := m.Called(ctx, filter)
	c, _ := args.Get(0).(domain.Currency)
	return c, args.Error(1)
}

func (m *MockCurrencyRepository) Insert(ctx context.Context, name, code, sign string) (domain.Currency, error) {
	args := m.Called(ctx, name, code, sign)
	c, _ := args.Get(0).(domain.Currency)
	return c, args.Error(1)
}

func (m *MockCurrencyRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

type MockCurrencyCache struct{ mock.Mock }

func (m *MockCurrencyCache) Get(code string) (domain.Currency, bool) {
	args := m.Called(code)
	c, _ := args.Get(0).(domain.Currency)
	return c, args.Bool(1)
}

func (m *MockCurrencyCache) Set(currency domain.Currency) {
	m.Called(currency)
}

var usd = domain.Currency{ID: 1, Name: "US Dollar", Code: "USD", Sign: "$"}

func newTestService() (*Service, *MockCurrencyRepository, *MockCurrencyCache) {
	repo := new(MockCurrencyRepository)
	cache := new(MockCurrencyCache)
	var mu sync.Mutex
	return NewService(repo, cache, &mu), repo, cache
}

func TestService_GetByCode_CacheMissReadsStore(t *testing.T) {
	svc, repo, cache := newTestService()
	cache.On("Get", "USD").Return(domain.Currency{}, false).Once()
	repo.On("GetOne", mock.Anything, domain.ByCode("USD")).Return(usd, nil).Once()
	cache.On("Set", usd).Return().Once()

	got, err := svc.GetByCode(context.Background(), "USD")

	require.NoError(t, err)
	require.Equal(t, usd, got)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_GetByCode_CacheHitSkipsStore(t *testing.T) {
	svc, repo, cache := newTestService()
	cache.On("Get", "USD").Return(usd, true).Once()

	got, err := svc.GetByCode(context.Background(), "USD")

	require.NoError(t, err)
	require.Equal(t, usd, got)
	repo.AssertNotCalled(t, "GetOne", mock.Anything, mock.Anything)
}

func TestService_GetByCode_NotFound(t *testing.T) {
	svc, repo, cache := newTestService()
	cache.On("Get", "GBP").Return(domain.Currency{}, false).Once()
	repo.On("GetOne", mock.Anything, domain.ByCode("GBP")).
		Return(domain.Currency{}, domain.ErrCurrencyNotFound).Once()

	_, err := svc.GetByCode(context.Background(), "GBP")

	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
	cache.AssertNotCalled(t, "Set", mock.Anything)
}

func TestService_GetByCode_InvalidLengthBeforeAnyLookup(t *testing.T) {
	svc, repo, cache := newTestService()

	for _, code := range []string{"", "US", "USDX", "DOLLARS"} {
		_, err := svc.GetByCode(context.Background(), code)
		require.ErrorIs(t, err, domain.ErrInvalidCurrencyCode)
	}
	repo.AssertNotCalled(t, "GetOne", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Get", mock.Anything)
}

func TestService_Add_RoundTrip(t *testing.T) {
	svc, repo, cache := newTestService()
	repo.On("Insert", mock.Anything, "US Dollar", "USD", "$").Return(usd, nil).Once()
	cache.On("Set", usd).Return().Once()
	cache.On("Get", "USD").Return(usd, true).Once()

	created, err := svc.Add(context.Background(), "US Dollar", "USD", "$")
	require.NoError(t, err)
	require.Equal(t, usd, created)

	got, err := svc.GetByCode(context.Background(), "USD")
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestService_Add_DuplicateCode(t *testing.T) {
	svc, repo, cache := newTestService()
	repo.On("Insert", mock.Anything, "US Dollar", "USD", "$").
		Return(domain.Currency{}, domain.ErrCurrencyExists).Once()

	_, err := svc.Add(context.Background(), "US Dollar", "USD", "$")

	require.ErrorIs(t, err, domain.ErrCurrencyExists)
	cache.AssertNotCalled(t, "Set", mock.Anything)
}

func TestService_Add_InvalidCode(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Add(context.Background(), "US Dollar", "DOLLAR", "$")

	require.ErrorIs(t, err, domain.ErrInvalidCurrencyCode)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetAll_PassesThrough(t *testing.T) {
	svc, repo, _ := newTestService()
	wantErr := errors.New("db temporarily unavailable")
	repo.On("GetAll", mock.Anything).Return(nil, wantErr).Once()

	_, err := svc.GetAll(context.Background())
	require.ErrorIs(t, err, wantErr)
}

func TestValidateCode(t *testing.T) {
	require.NoError(t, ValidateCode("USD"))
	require.NoError(t, ValidateCode("usd")) // case is preserved, not validated
	require.ErrorIs(t, ValidateCode("US"), domain.ErrInvalidCurrencyCode)
	require.ErrorIs(t, ValidateCode("USDT"), domain.ErrInvalidCurrencyCode)
	require.ErrorIs(t, ValidateCode(""), domain.ErrInvalidCurrencyCode)
}
