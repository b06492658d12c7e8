package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type tagCmd struct {
	id      string
	replace bool
}

func (*tagCmd) Name() string     { return "tag" }
func (*tagCmd) Synopsis() string { return "apply tags to a transaction" }
func (*tagCmd) Usage() string {
	return `ledgerline tag -id <transaction-id> [-replace] <tag> [<tag>...]

  Merges the given tags into the transaction's tag set, or replaces the set
  with -replace. Tags survive re-imports and syncs.
`
}

func (c *tagCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction ID.")
	f.BoolVar(&c.replace, "replace", false, "Replace the tag set instead of merging.")
}

func (c *tagCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := uuid.Parse(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: -id must be a transaction ID")
		return subcommands.ExitUsageError
	}

	if f.NArg() == 0 && !c.replace {
		fmt.Fprintln(os.Stderr, "Error: at least one tag is required (or -replace to clear)")
		return subcommands.ExitUsageError
	}

	app, err := newApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	tx, err := app.ledger.Tag(ctx, id, f.Args(), c.replace)
	if err != nil {
		return fail(err)
	}

	if err := printJSON(tx); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}
