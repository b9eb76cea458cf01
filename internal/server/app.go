// Package server initializes and runs the backend. It wires the
// repository manager, domain services and the HTTP API, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krishavya/ufresher/internal/logging"
	"github.com/krishavya/ufresher/internal/moderation"
	"github.com/krishavya/ufresher/internal/server/config"
	"github.com/krishavya/ufresher/internal/server/httpapi"
	"github.com/krishavya/ufresher/internal/server/oauth"
	"github.com/krishavya/ufresher/internal/server/services"
	"github.com/krishavya/ufresher/internal/server/shared/db"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	api    *httpapi.API
	repos  db.RepositoryManager
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var (
		repos db.RepositoryManager
		err   error
	)
	if c.DatabaseDSN == "" {
		// No DSN means an ephemeral in-memory store, useful for local
		// runs and tests.
		repos = db.NewInMemoryRepositoryManager()
	} else {
		repos, err = db.NewPostgresRepositoryManager(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
	}

	var provider oauth.Provider
	if c.GoogleClientID != "" {
		provider = oauth.NewGoogleProvider(c.GoogleClientID, c.GoogleClientSecret, c.GoogleRedirectURL)
	}

	identity := services.NewIdentityService(repos.Accounts(), provider, c)
	catalog := services.NewCatalogService(repos.Directory())
	content := services.NewContentService(repos.Content(), moderation.NewDenylistPolicy(), c.ClassifierEnabled)

	api := httpapi.NewAPI(identity, catalog, content, c, logger)

	return &App{config: c, logger: logger, api: api, repos: repos}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.api.NewRouter(),
	}

	go func() {
		app.logger.Info(ctx, "starting http server", "addr", app.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "http server failed", "error", err)
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if conn := app.repos.Conn(); conn != nil {
		if err := conn.Close(); err != nil {
			app.logger.Error(shutdownCtx, "db close error", "error", err)
		}
	}

	app.logger.Info(shutdownCtx, "server stopped")
}
