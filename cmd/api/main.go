package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/touchlinehq/touchline/internal/app"
	"github.com/touchlinehq/touchline/internal/config"
	"github.com/touchlinehq/touchline/internal/observability"
	"github.com/touchlinehq/touchline/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zlog := logging.NewJSON(cfg.LogLevel)
	zlog, betterStackShutdown, err := observability.InitBetterStackLogger(cfg, zlog)
	if err != nil {
		panic(err)
	}
	logging.SetDefault(zlog)
	defer func() {
		_ = zlog.Sync()
	}()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	}))

	uptraceShutdown, err := observability.InitUptrace(cfg, zlog)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	pyroscopeStop, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofServer, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	srv, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	go func() {
		enqueueCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := app.EnqueueRecomputeOnDeploy(enqueueCtx, cfg, logger); err != nil {
			logger.Warn("enqueue recompute on deploy", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := observability.StopPprofServer(pprofServer, logger, 5*time.Second); err != nil {
		logger.Warn("stop pprof server", "error", err)
	}
	if pyroscopeStop != nil {
		if err := pyroscopeStop(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}
	if uptraceShutdown != nil {
		if err := uptraceShutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}
	if betterStackShutdown != nil {
		if err := betterStackShutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown betterstack logger", "error", err)
		}
	}

	logger.Info("http server stopped")
}

// slogLevel maps the zap-based LOG_LEVEL onto the slog scale so the slog and
// zap outputs filter at the same threshold.
func slogLevel(level logging.Level) slog.Level {
	switch {
	case level <= logging.LevelDebug:
		return slog.LevelDebug
	case level == logging.LevelInfo:
		return slog.LevelInfo
	case level == logging.LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
