package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/krishavya/ufresher/internal/client/backend"
	"github.com/krishavya/ufresher/internal/client/config"
	"github.com/krishavya/ufresher/internal/client/registration"
	"github.com/krishavya/ufresher/internal/client/services"
	"github.com/krishavya/ufresher/internal/client/session"
	"github.com/krishavya/ufresher/internal/client/state"
	"github.com/krishavya/ufresher/internal/filex"
	"github.com/krishavya/ufresher/internal/logging"
	"github.com/krishavya/ufresher/internal/moderation"

	_ "modernc.org/sqlite"
)

// printedNotifier writes session notifications to the terminal; the toast
// bar of a CLI.
type printedNotifier struct{}

func (printedNotifier) Notify(n session.Notification) {
	if n.Detail != "" {
		printlnFn(fmt.Sprintf("%s. %s", n.Title, n.Detail))
		return
	}
	printlnFn(n.Title)
}

// App ties the CLI together: backend client, session manager, auth and
// moderation services, and the interactive reader.
type App struct {
	config *config.Config
	client backend.Client
	auth   services.AuthService
	gate   services.ModerationGate
	db     *sql.DB
	reader *bufio.Reader
	online bool
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	// A bare filename goes into a data subdirectory next to the binary;
	// an explicit path is used as given.
	dsn := c.LocalDBPath
	if filepath.Dir(dsn) == "." {
		dir, err := filex.EnsureSubDir("data")
		if err != nil {
			return nil, fmt.Errorf("init data dir: %w", err)
		}
		dsn = filepath.Join(dir, dsn)
	}

	db, err := state.Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("init local state: %w", err)
	}

	store := state.NewSQLiteStore(db)
	client := backend.NewHTTPClient(c.BaseURL, c.RequestTimeout)
	sessions := session.NewManager(store, log, printedNotifier{})
	resolver := registration.NewResolver(c.AdminSignupCode)

	return &App{
		config: c,
		client: client,
		auth:   services.NewAuthService(client, resolver, sessions, store, log),
		gate:   services.NewModerationGate(client, moderation.NewDenylistPolicy(), log),
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session, reports backend reachability, and
// hands off to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.auth.Restore(ctx)
	a.online = a.client.Ping(ctx) == nil
	if !a.online {
		printlnFn("Backend unreachable; sign-in and content commands will fail until it is back.")
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) getStatus() string {
	account := a.auth.Current()
	if account == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", account.Name, account.Role)
}
