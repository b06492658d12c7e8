// Package cli implements the ledgerline command set. Each command opens its
// own database handle for the duration of one Execute call.
package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/ledgerline/ledgerline/internal/account"
	acctStore "github.com/ledgerline/ledgerline/internal/account/store"
	"github.com/ledgerline/ledgerline/internal/balance"
	balanceStore "github.com/ledgerline/ledgerline/internal/balance/store"
	"github.com/ledgerline/ledgerline/internal/config"
	"github.com/ledgerline/ledgerline/internal/database"
	"github.com/ledgerline/ledgerline/internal/ledger"
	ledgerStore "github.com/ledgerline/ledgerline/internal/ledger/store"
	"github.com/ledgerline/ledgerline/internal/sync"
)

// Commands returns every ledgerline subcommand for registration.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&importCmd{},
		&syncCmd{},
		&backfillCmd{},
		&anchorCmd{},
		&tagCmd{},
		&accountsCmd{},
	}
}

type app struct {
	cfg *config.Config
	db  *sql.DB

	accounts *account.Service
	ledger   *ledger.Service
	balances *balance.Service

	balanceRepo balance.Repository
}

func newApp(ctx context.Context) (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	balanceRepo := balanceStore.New(db)

	return &app{
		cfg:         cfg,
		db:          db,
		accounts:    account.NewService(acctStore.New(db)),
		ledger:      ledger.NewService(ledgerStore.New(db)),
		balances:    balance.NewService(balanceRepo),
		balanceRepo: balanceRepo,
	}, nil
}

func (a *app) Close() {
	a.db.Close()
}

func (a *app) syncService() (*sync.Service, error) {
	var provider sync.Provider = sync.NewDemoProvider()

	if a.cfg.Sync.AccessURL != "" {
		feed, err := sync.NewFeedClient(a.cfg.Sync.AccessURL)
		if err != nil {
			return nil, err
		}

		provider = feed
	}

	return sync.NewService(provider, a.accounts, a.ledger, a.balanceRepo, a.balances), nil
}

// printJSON writes command results as indented JSON, the machine-readable
// output format shared by all commands.
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
