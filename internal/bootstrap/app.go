package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/summarizer-console/internal/infra/config"
	"github.com/yanqian/summarizer-console/internal/interface/tui"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates the console HTTP server lifecycle.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
}

// NewApp is used by Wire to build the runnable server.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address, "backend", a.cfg.Backend.BaseURL)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Console runs the terminal front end.
type Console struct {
	cfg    *config.Config
	logger *slog.Logger
	model  *tui.Model
}

// NewConsole is used by Wire to build the runnable terminal console.
func NewConsole(cfg *config.Config, logger *slog.Logger, model *tui.Model) *Console {
	return &Console{cfg: cfg, logger: logger.With("component", "bootstrap"), model: model}
}

// Run blocks until the user quits or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.logger.Info("terminal console starting", "backend", c.cfg.Backend.BaseURL)
	err := tui.Run(ctx, c.model)
	c.logger.Info("terminal console stopped", "error", err)
	return err
}
