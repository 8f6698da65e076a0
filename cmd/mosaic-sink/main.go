package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/fatalistix/mosaic-submit/internal/app"
	"github.com/fatalistix/mosaic-submit/internal/config"
	"github.com/fatalistix/slogattr"
	"github.com/golang-cz/devslog"
)

func main() {
	cfg := config.MustReadSink()

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		panic(err)
	}

	log := setupLog(level)

	log.Info("config loaded", slog.Any("config", cfg))

	a, err := app.New(log, *cfg)
	if err != nil {
		log.Error("failed to initialize app", slogattr.Err(err))
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		if err := a.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("error starting application", slogattr.Err(err))
			panic(err)
		}
	}()

	<-ctx.Done()

	log.Info("shutting down server...", slog.Duration("shutdown timeout", cfg.Deployment.ShutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Deployment.ShutdownTimeout)
	defer cancel()

	if err := a.Stop(ctx); err != nil {
		log.Error("error stopping application", slogattr.Err(err))
		panic(err)
	}
}

func setupLog(level slog.Level) *slog.Logger {
	slogOpts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}

	devSlogOpts := &devslog.Options{
		HandlerOptions: slogOpts,
	}

	return slog.New(devslog.NewHandler(os.Stdout, devSlogOpts))
}
