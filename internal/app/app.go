package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"currency-exchange/internal/adapters/cache"
	"currency-exchange/internal/adapters/postgres"
	"currency-exchange/internal/api"
	"currency-exchange/internal/config"
	"currency-exchange/internal/currency"
	"currency-exchange/internal/exchange"
	"currency-exchange/internal/httpapi"
	"currency-exchange/internal/metrics"
	"currency-exchange/internal/monitor"
	"currency-exchange/internal/platform/db"
	httpserver "currency-exchange/internal/platform/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts the monitor and the HTTP server.
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Schema and seed bootstrap
	if err = db.Migrate(startupCtx, appCfg.DbServer.GetConnectionStr()); err != nil {
		logrus.WithError(err).Error("Error applying migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Repositories and cache
	currencyRepo := postgres.NewCurrencyRepository(pool)
	rateRepo := postgres.NewExchangeRateRepository(pool)
	currencyCache, err := cache.NewCurrencyCache(appCfg.Cache.MaxItems)
	if err != nil {
		logrus.WithError(err).Error("Error creating currency cache")
		return err
	}
	defer currencyCache.Close()

	// Services. The shared mutex serializes all store writes; the store's
	// own constraints remain the final authority.
	var writeMu sync.Mutex
	currencyService := currency.NewService(currencyRepo, currencyCache, &writeMu)
	rateService := exchange.NewService(currencyService, rateRepo, &writeMu)
	resolver := exchange.NewResolver(currencyService, rateRepo, appCfg.Exchange.CrossCurrency)

	// Metrics and store monitor
	m := metrics.NewMetrics(prometheus.DefaultRegisterer)
	storeMonitor := monitor.NewScheduler(
		currencyRepo,
		rateRepo,
		m,
		time.Duration(appCfg.Monitor.IntervalSeconds)*time.Second,
	)
	// Ensure monitor stops before DB pool closes
	defer func() {
		if shutDownErr := storeMonitor.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Monitor shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := storeMonitor.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start store monitor")
		return startErr
	}
	logrus.Info("✅ Store monitor activation successful")

	// Routers
	domainRouter := httpapi.NewRouter(currencyService, rateService, resolver)
	router := api.NewRouter(domainRouter, m)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
