package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fatalistix/mosaic-submit/internal/config"
	"github.com/fatalistix/mosaic-submit/internal/http/handler"
	"github.com/fatalistix/mosaic-submit/internal/service"
	"github.com/fatalistix/mosaic-submit/internal/validation"
	"github.com/fatalistix/slogattr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
)

const workerPath = "/worker"

// App is the development sink: it accepts submissions the way the mosaic
// worker endpoint does and keeps them in memory.
type App struct {
	e     *echo.Echo
	log   *slog.Logger
	store *service.SubmissionStore
	port  int
}

func New(log *slog.Logger, cfg config.SinkConfig) (*App, error) {
	const op = "app.New"

	store := service.NewSubmissionStore(log)

	v, err := validation.NewRequestValidator()
	if err != nil {
		log.Error("failed to create validator", slogattr.Err(err))
		return nil, fmt.Errorf("%s: error creating request validator: %w", op, err)
	}

	e := echo.New()
	e.HideBanner = true

	e.Validator = v

	e.POST(workerPath, handler.MakeAcceptSubmissionHandlerFunc(store))
	e.GET(workerPath+"/:id", handler.MakeGetSubmissionHandlerFunc(store))

	e.Use(slogecho.New(log))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	return &App{
		e:     e,
		log:   log,
		store: store,
		port:  cfg.Deployment.Port,
	}, nil
}

func (a *App) Handler() http.Handler {
	return a.e
}

func (a *App) Start() error {
	const op = "app.Start"

	log := a.log.With(
		slog.String("op", op),
	)

	log.Info("starting server", slog.Int("port", a.port))

	address := fmt.Sprintf(":%d", a.port)

	if err := a.e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("error starting http server", slog.Int("port", a.port), slogattr.Err(err))
		return fmt.Errorf("%s: error starting http server: %w", op, err)
	}

	log.Info("server stopped", slog.Int("port", a.port))

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	const op = "app.Stop"

	log := a.log.With(
		slog.String("op", op),
	)

	log.Info("stopping server", slog.Int("port", a.port))

	if err := a.e.Shutdown(ctx); err != nil {
		log.Error("error during stopping http server", slog.Int("port", a.port), slogattr.Err(err))
		return fmt.Errorf("%s: error stopping http server: %w", op, err)
	}

	log.Info("server stopped successfully", slog.Int("port", a.port), slog.Int("submissions received", a.store.Len()))

	return nil
}
