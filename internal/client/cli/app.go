package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/hiddenhaul/haul/internal/client/api"
	"github.com/hiddenhaul/haul/internal/client/categories"
	"github.com/hiddenhaul/haul/internal/client/config"
	"github.com/hiddenhaul/haul/internal/client/models"
	"github.com/hiddenhaul/haul/internal/client/repositories/localstore"
	"github.com/hiddenhaul/haul/internal/client/services"
	"github.com/hiddenhaul/haul/internal/client/session"
	"github.com/hiddenhaul/haul/internal/client/soldout"
	"github.com/hiddenhaul/haul/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the client together: config, session, API client, services,
// and the ephemeral state containers. One App per process.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	client  api.Client
	auth    services.AuthService
	shop    services.ShopService
	soldOut *soldout.Set
	cats    *categories.Manager

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := localstore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error(ctx, "failed to initialize local store", "err", err)
		return nil, err
	}

	repo := localstore.NewSQLiteRepository(db)
	sess := session.NewStore(repo, logger)

	httpClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, sess, logger)

	app := &App{
		config:  cfg,
		log:     logger,
		session: sess,
		client:  httpClient,
		auth:    services.NewAuthService(httpClient, sess),
		soldOut: soldout.NewSet(),
		cats:    categories.NewManager(repo),
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	app.shop = services.NewShopService(httpClient, app.soldOut)

	// the global reaction to a 401: purge the session and drop the REPL
	// back to the login surface, whatever command was running
	httpClient.SetAuthFailureHook(app.handleAuthFailure)

	return app, nil
}

func (a *App) handleAuthFailure(ctx context.Context) {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "failed to purge session after auth failure", "err", err)
	}
	fmt.Fprintln(a.out, "Session expired. Please log in again.")
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.auth.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "err", err)
	}
	if err := a.cats.Load(ctx); err != nil {
		a.log.Warn(ctx, "category tree load failed", "err", err)
	}

	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) role() models.Role {
	return a.session.Role()
}

func (a *App) getStatus() string {
	if !a.session.IsLoggedIn() {
		return ""
	}
	s := a.session.Name() + " " + string(a.session.Role())
	if exp, ok := a.session.TokenExpiry(); ok && time.Now().After(exp) {
		s += " expired"
	}
	return fmt.Sprintf("(%s)", s)
}
