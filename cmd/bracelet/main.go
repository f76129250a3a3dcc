package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"bracelet/internal/adapter/deepseek"
	adapthttp "bracelet/internal/adapter/http"
	"bracelet/internal/adapter/memory"
	"bracelet/internal/adapter/postgres"
	"bracelet/internal/adapter/sqlite"
	"bracelet/internal/app"
	"bracelet/internal/config"
	"bracelet/internal/domain"
)

// stores bundles the two repository ports with an optional closer so main
// can treat all drivers uniformly.
type stores struct {
	predictions domain.PredictionRepository
	shares      domain.ShareRepository
	closer      io.Closer
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	st, err := openStores(cfg.Store)
	if err != nil {
		logger.Fatal("store open", zap.Error(err))
	}
	if st.closer != nil {
		defer func() { _ = st.closer.Close() }()
	}

	var enricher domain.Enricher
	if cfg.DeepSeek.Enabled && cfg.DeepSeek.APIKey != "" {
		enricher = deepseek.New(deepseek.Config{
			APIKey:  cfg.DeepSeek.APIKey,
			BaseURL: cfg.DeepSeek.BaseURL,
			Model:   cfg.DeepSeek.Model,
			Timeout: cfg.DeepSeek.Timeout,
		}, logger)
	} else {
		logger.Info("enrichment disabled")
	}

	predictSvc := app.NewPredictService(st.predictions, st.shares, enricher, cfg.Share.TTL())
	calendarSvc := app.NewCalendarService()

	go sweepShares(st.shares, cfg.Share.SweepInterval, logger)

	h := adapthttp.New(calendarSvc, predictSvc, cfg.WebDir, logger).Handler()
	logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store.Driver))
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

func openStores(cfg config.StoreConfig) (stores, error) {
	switch cfg.Driver {
	case "memory":
		s := memory.New()
		return stores{predictions: s, shares: s}, nil
	case "sqlite":
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return stores{}, err
		}
		return stores{predictions: s, shares: s, closer: s}, nil
	case "postgres":
		s, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return stores{}, err
		}
		return stores{predictions: s, shares: s, closer: s}, nil
	default:
		return stores{}, errors.New("unknown store driver: " + cfg.Driver)
	}
}

// sweepShares removes expired share links once at startup and then on a
// fixed interval. Expired shares are already invisible to reads, so a
// failed sweep only delays cleanup.
func sweepShares(shares domain.ShareRepository, interval time.Duration, logger *zap.Logger) {
	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := shares.DeleteExpiredShares(ctx); err != nil {
			logger.Warn("share sweep", zap.Error(err))
		}
	}
	sweep()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		sweep()
	}
}
