package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/ledgerline/ledgerline/internal/account"
)

type accountsCmd struct {
	create     string
	accType    string
	jsonOutput bool
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts or create one" }
func (*accountsCmd) Usage() string {
	return `ledgerline accounts [-json] [-create <name> [-type <type>]]

  Without flags, lists all accounts. With -create, creates one first.
  Types: checking, savings, credit_card, investment.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.create, "create", "", "Create an account with this name.")
	f.StringVar(&c.accType, "type", string(account.TypeChecking), "Account type for -create.")
	f.BoolVar(&c.jsonOutput, "json", false, "Print accounts as JSON.")
}

func (c *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := newApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	if c.create != "" {
		if _, err := app.accounts.Create(ctx, c.create, account.Type(c.accType)); err != nil {
			return fail(err)
		}
	}

	accounts, err := app.accounts.List(ctx)
	if err != nil {
		return fail(err)
	}

	if c.jsonOutput {
		if err := printJSON(accounts); err != nil {
			return fail(err)
		}

		return subcommands.ExitSuccess
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE")

	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\n", a.ID, a.Name, a.Type)
	}

	if err := w.Flush(); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}
