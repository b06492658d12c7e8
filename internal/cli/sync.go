package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/ledgerline/ledgerline/internal/sync"
)

type syncCmd struct {
	dryRun bool
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "pull accounts and transactions from the configured feed" }
func (*syncCmd) Usage() string {
	return `ledgerline sync [-dry-run]

  Fetches the feed named by SYNC_ACCESS_URL (or generated demo data when
  unset) and reconciles it into the ledger. Safe to repeat: rows already
  present are skipped.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "dry-run", false, "Fetch and count without writing.")
}

func (c *syncCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	svc, err := app.syncService()
	if err != nil {
		return fail(err)
	}

	result, err := svc.Sync(ctx, sync.Options{DryRun: c.dryRun})
	if err != nil {
		return fail(err)
	}

	if err := printJSON(result); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}
