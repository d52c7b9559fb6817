package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/hoopsight/hoopsight/internal/adapters/http/api"
	"github.com/hoopsight/hoopsight/internal/adapters/repository"
	"github.com/hoopsight/hoopsight/internal/adapters/results"
	"github.com/hoopsight/hoopsight/internal/adapters/roster"
	app "github.com/hoopsight/hoopsight/internal/app"
	"github.com/hoopsight/hoopsight/internal/config"
	"github.com/hoopsight/hoopsight/internal/domain/predict"
	"github.com/hoopsight/hoopsight/pkg/logger"
	"github.com/hoopsight/hoopsight/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 30 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	catalog, err := roster.Load(cfg.RosterPath)
	if err != nil {
		log.Error(ctx, "failed to load player catalog", logger.Error(err))
		return
	}
	log.Info(ctx, "player catalog loaded",
		logger.String("path", cfg.RosterPath), logger.Int("players", catalog.Len()))

	store, err := repository.NewFileStore(cfg.DataDir,
		repository.WithStoreLogger(log.Named("store")),
	)
	if err != nil {
		log.Error(ctx, "failed to open prediction store", logger.Error(err))
		return
	}

	source := results.NewClient(cfg.ResultsBaseURL,
		results.WithAPIKey(cfg.ResultsAPIKey),
		results.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.ResultsTimeoutMS) * time.Millisecond}),
	)

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithCatalog(catalog),
		app.WithStore(store),
		app.WithResultSource(source),
		app.WithPredictor(predict.New(predict.WithHomeCourtBonus(cfg.HomeCourtBonus))),
		app.WithMaxSearchResults(cfg.MaxSearchResults),
	)

	go startSystemMetricsUpdater(ctx)

	mux := http.NewServeMux()
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}

// startSystemMetricsUpdater periodically publishes process-level gauges.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)
			metrics.SetSystemMemoryUsage(float64(m.Alloc))
			metrics.SetSystemGoroutineCount(float64(runtime.NumGoroutine()))
		}
	}
}
