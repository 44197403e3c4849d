package monitor

import (
	"context"
	"time"

	"currency-exchange/internal/metrics"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultInterval = 30 * time.Second
const perRunTimeout = 5 * time.Second

// Counter reports how many records a store table holds.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// Scheduler periodically samples store sizes into the prometheus gauges.
type Scheduler struct {
	currencyCounts Counter
	rateCounts     Counter
	metrics        *metrics.Metrics
	interval       time.Duration
	// -----
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if runErr := s.run(jobCtx, execID); runErr != nil {
			logrus.Errorf("Store stats job %s failed: %v", execID, runErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Monitor shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) run(ctx context.Context, execID string) error {
	runCtx, cancel := context.WithTimeout(ctx, perRunTimeout)
	defer cancel()

	currencies, err := s.currencyCounts.Count(runCtx)
	if err != nil {
		return err
	}
	rates, err := s.rateCounts.Count(runCtx)
	if err != nil {
		return err
	}

	s.metrics.CurrenciesTotal.Set(float64(currencies))
	s.metrics.ExchangeRatesTotal.Set(float64(rates))
	logrus.Debugf("Store stats job %s: %d currencies, %d rate edges", execID, currencies, rates)
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func NewScheduler(currencyCounts, rateCounts Counter, m *metrics.Metrics, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		currencyCounts: currencyCounts,
		rateCounts:     rateCounts,
		metrics:        m,
		interval:       interval,
	}
}
