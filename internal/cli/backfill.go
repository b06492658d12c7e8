package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/balance"
)

type backfillCmd struct {
	accountName   string
	days          int
	dryRun        bool
	requireAnchor bool
}

func (*backfillCmd) Name() string     { return "backfill" }
func (*backfillCmd) Synopsis() string { return "reconstruct daily balance snapshots for an account" }
func (*backfillCmd) Usage() string {
	return `ledgerline backfill -account <name> [-days <n>] [-dry-run] [-require-anchor]

  Replays ledger deltas from the account's most recent anchor and writes one
  computed snapshot per day. Anchor dates are never overwritten. With
  -dry-run, prints the series without writing it.
`
}

func (c *backfillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountName, "account", "", "Account name.")
	f.IntVar(&c.days, "days", 0, "Lookback window in days; 0 means full history.")
	f.BoolVar(&c.dryRun, "dry-run", false, "Compute without writing.")
	f.BoolVar(&c.requireAnchor, "require-anchor", false, "Fail instead of assuming a zero baseline for anchorless accounts.")
}

func (c *backfillCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountName == "" {
		fmt.Fprintln(os.Stderr, "Error: -account is required")
		return subcommands.ExitUsageError
	}

	app, err := newApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	acct, err := app.accounts.GetByName(ctx, c.accountName)
	if err != nil {
		return fail(err)
	}

	requireAnchor := c.requireAnchor || app.cfg.Backfill.RequireAnchor

	result, err := app.balances.Backfill(ctx, acct.ID, balance.Options{
		Days:          c.days,
		DryRun:        c.dryRun,
		RequireAnchor: requireAnchor,
	})
	if err != nil {
		return fail(err)
	}

	if err := printJSON(result); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

type anchorCmd struct {
	accountName string
	date        string
	balanceStr  string
}

func (*anchorCmd) Name() string     { return "anchor" }
func (*anchorCmd) Synopsis() string { return "record a known balance for an account at a date" }
func (*anchorCmd) Usage() string {
	return `ledgerline anchor -account <name> -date <YYYY-MM-DD> -balance <amount>

  Records a user-entered balance snapshot. Anchors are the fixed points the
  backfill replays from and are never overwritten by computed snapshots.
`
}

func (c *anchorCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountName, "account", "", "Account name.")
	f.StringVar(&c.date, "date", "", "Snapshot date, YYYY-MM-DD.")
	f.StringVar(&c.balanceStr, "balance", "", "End-of-day balance, e.g. 1234.56.")
}

func (c *anchorCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.accountName == "" || c.date == "" || c.balanceStr == "" {
		fmt.Fprintln(os.Stderr, "Error: -account, -date, and -balance are required")
		return subcommands.ExitUsageError
	}

	date, err := time.Parse(time.DateOnly, c.date)
	if err != nil {
		return fail(fmt.Errorf("parsing date: %w", err))
	}

	bal, err := decimal.NewFromString(c.balanceStr)
	if err != nil {
		return fail(fmt.Errorf("parsing balance: %w", err))
	}

	app, err := newApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	acct, err := app.accounts.GetByName(ctx, c.accountName)
	if err != nil {
		return fail(err)
	}

	snap, err := app.balances.AddAnchor(ctx, acct.ID, date, bal)
	if err != nil {
		return fail(err)
	}

	if err := printJSON(snap); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}
