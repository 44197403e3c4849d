package monitor

import (
	"context"
	"testing"
	"time"

	"currency-exchange/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCounter struct{ mock.Mock }

func (m *MockCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	n, _ := args.Get(0).(int64)
	return n, args.Error(1)
}

func newTestScheduler(interval time.Duration) (*Scheduler, *MockCounter, *MockCounter) {
	currencies := new(MockCounter)
	rates := new(MockCounter)
	m := metrics.NewMetrics(prometheus.NewRegistry())
	return NewScheduler(currencies, rates, m, interval), currencies, rates
}

func TestNewScheduler_Constructs(t *testing.T) {
	s, _, _ := newTestScheduler(10 * time.Second)
	require.NotNil(t, s)
	require.Nil(t, s.sched)
}

func TestNewScheduler_DefaultsIntervalWhenInvalid(t *testing.T) {
	s, _, _ := newTestScheduler(0)
	require.Equal(t, defaultInterval, s.interval)
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s, _, _ := newTestScheduler(10 * time.Second)
	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s, currencies, rates := newTestScheduler(10 * time.Second)
	currencies.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
	rates.On("Count", mock.Anything).Return(int64(0), nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	cancel()

	// Wait until s.sched becomes nil (Shutdown sets it to nil)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.sched == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Nil(t, s.sched, "expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s, currencies, rates := newTestScheduler(10 * time.Second)
	currencies.On("Count", mock.Anything).Return(int64(0), nil).Maybe()
	rates.On("Count", mock.Anything).Return(int64(0), nil).Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)
	require.NoError(t, s.Shutdown())
}

func TestScheduler_RunUpdatesGauges(t *testing.T) {
	currencies := new(MockCounter)
	rates := new(MockCounter)
	m := metrics.NewMetrics(prometheus.NewRegistry())
	s := NewScheduler(currencies, rates, m, time.Minute)

	currencies.On("Count", mock.Anything).Return(int64(3), nil).Once()
	rates.On("Count", mock.Anything).Return(int64(2), nil).Once()

	require.NoError(t, s.run(context.Background(), "test-exec"))

	require.Equal(t, 3.0, testGaugeValue(t, m.CurrenciesTotal))
	require.Equal(t, 2.0, testGaugeValue(t, m.ExchangeRatesTotal))
	currencies.AssertExpectations(t)
	rates.AssertExpectations(t)
}

func testGaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, g.Write(&pb))
	return pb.GetGauge().GetValue()
}
