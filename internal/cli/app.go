// Package cli implements the interactive shell consuming the account store:
// registration, login/logout, session restore, and directory-grant handling.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mkarpovs/accountvault/internal/account"
	"github.com/mkarpovs/accountvault/internal/config"
	"github.com/mkarpovs/accountvault/internal/logging"
	"github.com/mkarpovs/accountvault/internal/snapshot"
	"github.com/mkarpovs/accountvault/internal/vault"
)

type App struct {
	store  *account.Store
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires up the snapshot database, the storage provider, and the
// account store. The returned cleanup closes the database.
func NewApp(cfg *config.Config, log logging.Logger) (*App, func(), error) {
	ctx := context.Background()

	db, err := snapshot.InitDatabase(ctx, cfg.SnapshotDSN)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }

	provider := vault.NewOSProvider(cfg.VaultDir)
	store := account.NewStore(provider, db, log)

	store.Initialize(ctx)
	if store.RestoreSession(ctx) {
		log.Info(ctx, "previous session restored", "email", store.CurrentUser().Email)
	}

	app := &App{
		store:  store,
		log:    log.With("component", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	return app, cleanup, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
