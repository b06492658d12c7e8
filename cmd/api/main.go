package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ledgerline/ledgerline/internal/account"
	acctStore "github.com/ledgerline/ledgerline/internal/account/store"
	"github.com/ledgerline/ledgerline/internal/balance"
	balanceStore "github.com/ledgerline/ledgerline/internal/balance/store"
	"github.com/ledgerline/ledgerline/internal/config"
	"github.com/ledgerline/ledgerline/internal/database"
	ledgerlineHttp "github.com/ledgerline/ledgerline/internal/http"
	acctHandler "github.com/ledgerline/ledgerline/internal/http/account"
	balanceHandler "github.com/ledgerline/ledgerline/internal/http/balance"
	importHandler "github.com/ledgerline/ledgerline/internal/http/importcsv"
	syncHandler "github.com/ledgerline/ledgerline/internal/http/syncrun"
	txHandler "github.com/ledgerline/ledgerline/internal/http/transaction"
	"github.com/ledgerline/ledgerline/internal/importer"
	"github.com/ledgerline/ledgerline/internal/ledger"
	ledgerStore "github.com/ledgerline/ledgerline/internal/ledger/store"
	"github.com/ledgerline/ledgerline/internal/sync"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	balanceRepo := balanceStore.New(db)

	var (
		accountService = account.NewService(acctStore.New(db))
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		balanceService = balance.NewService(balanceRepo)
	)

	provider, err := newProvider(cfg)
	if err != nil {
		slog.Error("failed to configure sync provider", "error", err)
		os.Exit(1)
	}

	syncService := sync.NewService(provider, accountService, ledgerService, balanceRepo, balanceService)

	var (
		transactionH = txHandler.NewHandler(ledgerService)
		importH      = importHandler.NewHandler(importer.NewParser(), ledgerService)
		balanceH     = balanceHandler.NewHandler(balanceService)
		accountH     = acctHandler.NewHandler(accountService)
		syncH        = syncHandler.NewHandler(syncService)
	)

	router := ledgerlineHttp.New(transactionH, importH, balanceH, accountH, syncH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr, "provider", provider.Name())

	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// newProvider picks the configured feed, falling back to generated demo
// data when no access URL is set.
func newProvider(cfg *config.Config) (sync.Provider, error) {
	if cfg.Sync.AccessURL == "" {
		return sync.NewDemoProvider(), nil
	}

	return sync.NewFeedClient(cfg.Sync.AccessURL)
}
