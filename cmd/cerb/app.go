package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"cerb/internal/applicant"
	"cerb/internal/eligibility"
	eligibilitymetrics "cerb/internal/eligibility/metrics"
	"cerb/internal/notify"
	notifymetrics "cerb/internal/notify/metrics"
	"cerb/internal/platform/config"
	"cerb/internal/platform/httpserver"
	"cerb/internal/platform/logger"
	"cerb/internal/platform/metrics"
	redisclient "cerb/internal/platform/redis"
	"cerb/internal/session"
	"cerb/internal/stats"
	statsmetrics "cerb/internal/stats/metrics"
)

const shutdownTimeout = 5 * time.Second

// app holds the process-wide dependencies shared by every command.
type app struct {
	cfg        config.Config
	logger     *zap.Logger
	registry   *prometheus.Registry
	metricsSrv *http.Server
	redis      *redisclient.Client
}

func newApp(cfg config.Config) (*app, error) {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:      cfg,
		logger:   log,
		registry: metrics.NewRegistry(),
	}
	if cfg.Metrics.Addr != "" {
		a.startMetricsServer()
	}
	return a, nil
}

func (a *app) startMetricsServer() {
	a.metricsSrv = httpserver.New(a.cfg.Metrics.Addr, httpserver.NewRouter(a.registry))
	a.logger.Info("metrics server listening", zap.String("addr", a.cfg.Metrics.Addr))
	go func() {
		if err := a.metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server failed", zap.Error(err))
		}
	}()
}

func (a *app) close() {
	if a.metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.metricsSrv.Shutdown(ctx); err != nil {
			a.logger.Warn("metrics server shutdown", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("redis close", zap.Error(err))
		}
	}
	_ = a.logger.Sync()
}

func (a *app) runQuestionnaire(ctx context.Context, in io.Reader, out io.Writer) error {
	collector := applicant.NewCollector(in, out, applicant.WithLogger(a.logger.Named("applicant")))
	defer collector.Close()

	evaluator, err := eligibility.New(collector,
		eligibility.WithLogger(a.logger.Named("eligibility")),
		eligibility.WithMetrics(eligibilitymetrics.New(a.registry)),
	)
	if err != nil {
		return fmt.Errorf("build evaluator: %w", err)
	}

	notifyOpts := []notify.Option{
		notify.WithLogger(a.logger.Named("notify")),
		notify.WithMetrics(notifymetrics.New(a.registry)),
		notify.WithLinkDelay(a.cfg.Links.Delay),
	}
	if !a.cfg.Links.Open {
		notifyOpts = append(notifyOpts, notify.WithLinksDisabled())
	}
	console := notify.NewConsole(out, notifyOpts...)

	runner, err := session.New(collector, evaluator, console, session.WithLogger(a.logger.Named("session")))
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}
	_, err = runner.Run(ctx)
	return err
}

// statsClient uses Redis for caching when configured and reachable, and an
// in-process cache otherwise.
func (a *app) statsClient(ctx context.Context) (*stats.Client, error) {
	var cache stats.Cache = stats.NewMemoryCache()
	rc, err := redisclient.New(ctx, a.cfg.Redis)
	switch {
	case err != nil:
		a.logger.Warn("redis unavailable, using in-process stats cache", zap.Error(err))
	case rc != nil:
		a.redis = rc
		cache = stats.NewRedisCache(rc.Client)
	}

	return stats.NewClient(a.cfg.Stats.BaseURL,
		stats.WithHTTPClient(&http.Client{Timeout: a.cfg.Stats.Timeout}),
		stats.WithCache(cache, a.cfg.Stats.CacheTTL),
		stats.WithLogger(a.logger.Named("stats")),
		stats.WithMetrics(statsmetrics.New(a.registry)),
	)
}
