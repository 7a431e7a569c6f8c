package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shaibs3/pagecatalog/internal/config"
	"github.com/shaibs3/pagecatalog/internal/handlers"
	"github.com/shaibs3/pagecatalog/internal/lookup"
	"github.com/shaibs3/pagecatalog/internal/router"
	"github.com/shaibs3/pagecatalog/internal/site"
	"github.com/shaibs3/pagecatalog/internal/telemetry"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 30 * time.Second

var newTelemetry = telemetry.NewTelemetry

// App represents the catalog service
type App struct {
	config    *config.Config
	logger    *zap.Logger
	telemetry *telemetry.Telemetry
	provider  lookup.CatalogProvider
	server    *http.Server
}

func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	tel, err := newTelemetry(logger)
	if err != nil {
		return nil, err
	}
	// releases what was built so far when a later step fails
	cleanup := func(provider lookup.CatalogProvider) {
		if provider != nil {
			_ = provider.Close()
		}
		if err := tel.Shutdown(context.Background()); err != nil {
			logger.Warn("failed to shut down telemetry", zap.Error(err))
		}
	}

	configJSON := cfg.CatalogDBConfig
	if configJSON == "" {
		configJSON = lookup.DefaultConfigJSON()
	}
	provider, err := lookup.NewDbProviderFactory(logger, tel).CreateProvider(configJSON)
	if err != nil {
		cleanup(nil)
		return nil, err
	}

	renderer, err := site.NewRenderer()
	if err != nil {
		cleanup(provider)
		return nil, err
	}

	limiter := rate.NewLimiter(rate.Limit(cfg.RPSLimit), cfg.RPSBurst)
	handlerList := []router.Handler{
		handlers.NewHealthHandler(provider),
		handlers.NewCatalogHandler(provider),
		handlers.NewSiteHandler(provider, renderer),
	}

	appRouter := router.NewRouter(limiter, tel, logger, handlerList)

	return &App{
		config:    cfg,
		logger:    logger,
		telemetry: tel,
		provider:  provider,
		server:    appRouter.CreateServer(":" + cfg.Port),
	}, nil
}

// Handler exposes the routed handler, mainly for tests
func (app *App) Handler() http.Handler {
	return app.server.Handler
}

func (app *App) start() <-chan error {
	app.logger.Info("starting server", zap.String("port", app.config.Port))

	errCh := make(chan error, 1)
	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// stop shuts the server down and releases the catalog backend
func (app *App) stop() error {
	app.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("server forced to shutdown", zap.Error(err))
		errs = append(errs, err)
	}
	if err := app.provider.Close(); err != nil {
		app.logger.Error("failed to close catalog provider", zap.Error(err))
		errs = append(errs, err)
	}
	if err := app.telemetry.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		app.logger.Info("server exited gracefully")
	}
	return errors.Join(errs...)
}

// Run starts the server and blocks until ctx is cancelled, a shutdown signal
// arrives or the listener fails
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := app.start()
	select {
	case <-ctx.Done():
	case err, ok := <-errCh:
		if ok && err != nil {
			app.logger.Error("server failed", zap.Error(err))
			return errors.Join(err, app.stop())
		}
	}
	return app.stop()
}
