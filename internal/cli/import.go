package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/ledgerline/ledgerline/internal/account"
	enc "github.com/ledgerline/ledgerline/internal/encoding"
	"github.com/ledgerline/ledgerline/internal/importer"
	"github.com/ledgerline/ledgerline/internal/ledger"
)

type importCmd struct {
	accountName string
	profilePath string

	dateCol   string
	amountCol string
	descCol   string
	debitCol  string
	creditCol string

	dateFormat    string
	skipRows      int
	numberFormat  string
	flipSigns     bool
	debitNegative bool

	detect bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a CSV export into an account" }
func (*importCmd) Usage() string {
	return `ledgerline import -account <name> [-profile <file> | column flags] <csv-file>

  Parses a bank CSV export and reconciles it into the ledger. Re-importing
  the same file is safe: rows already present are skipped and their tags
  kept. With -detect, prints the guessed column mapping and exits.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.accountName, "account", "", "Target account name (created if missing).")
	f.StringVar(&c.profilePath, "profile", "", "Path to a JSON import profile.")
	f.StringVar(&c.dateCol, "date", "", "Date column name.")
	f.StringVar(&c.amountCol, "amount", "", "Amount column name (single signed column).")
	f.StringVar(&c.descCol, "desc", "", "Description column name.")
	f.StringVar(&c.debitCol, "debit", "", "Debit column name (with -credit).")
	f.StringVar(&c.creditCol, "credit", "", "Credit column name (with -debit).")
	f.StringVar(&c.dateFormat, "date-format", "", "Go reference layout for ambiguous dates, e.g. 02-01-2006.")
	f.IntVar(&c.skipRows, "skip-rows", 0, "Junk lines before the header row.")
	f.StringVar(&c.numberFormat, "number-format", "us", "Amount format: us, eu, or eu_space.")
	f.BoolVar(&c.flipSigns, "flip-signs", false, "Negate all amounts (credit card statements).")
	f.BoolVar(&c.debitNegative, "debit-negative", false, "Negate positive debit values.")
	f.BoolVar(&c.detect, "detect", false, "Print the detected column mapping and exit.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one CSV file is required")
		return subcommands.ExitUsageError
	}

	path := f.Arg(0)

	if c.detect {
		return c.runDetect(path)
	}

	if c.accountName == "" {
		fmt.Fprintln(os.Stderr, "Error: -account is required")
		return subcommands.ExitUsageError
	}

	profile, err := c.profile(path)
	if err != nil {
		return fail(err)
	}

	file, err := os.Open(path)
	if err != nil {
		return fail(err)
	}
	defer file.Close()

	app, err := newApp(ctx)
	if err != nil {
		return fail(err)
	}
	defer app.Close()

	parsed, err := importer.NewParser().Parse(file, profile)
	if err != nil {
		return fail(err)
	}

	acct, err := app.accounts.GetOrCreate(ctx, c.accountName, account.TypeChecking)
	if err != nil {
		return fail(err)
	}

	result, err := app.ledger.Reconcile(ctx, acct.ID, ledger.SourceImport, parsed.Records)
	if err != nil {
		return fail(err)
	}

	summary := result.Summary()
	summary.Errors = append(parsed.Errors, summary.Errors...)

	if err := printJSON(summary); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

// profile builds the import profile from -profile or the column flags,
// falling back to header auto-detection when neither is given.
func (c *importCmd) profile(path string) (importer.Profile, error) {
	var profile importer.Profile

	switch {
	case c.profilePath != "":
		data, err := os.ReadFile(c.profilePath)
		if err != nil {
			return profile, err
		}

		if err := json.Unmarshal(data, &profile); err != nil {
			return profile, fmt.Errorf("parsing profile %s: %w", c.profilePath, err)
		}

		return profile, nil

	case c.dateCol != "":
		profile.Mapping = importer.Mapping{
			Mode:        importer.ModeSingle,
			Date:        c.dateCol,
			Amount:      c.amountCol,
			Description: c.descCol,
			Debit:       c.debitCol,
			Credit:      c.creditCol,
		}
		if c.amountCol == "" {
			profile.Mapping.Mode = importer.ModeDebitCredit
		}

	default:
		mapping, ok, err := detectMapping(path)
		if err != nil {
			return profile, err
		}

		if !ok {
			return profile, fmt.Errorf("could not detect columns in %s, use -date/-amount or -profile", path)
		}

		profile.Mapping = mapping
	}

	profile.DateFormat = c.dateFormat
	profile.SkipRows = c.skipRows
	profile.NumberFormat = importer.NumberFormat(c.numberFormat)
	profile.Options.FlipSigns = c.flipSigns
	profile.Options.DebitNegative = c.debitNegative

	return profile, nil
}

func (c *importCmd) runDetect(path string) subcommands.ExitStatus {
	mapping, ok, err := detectMapping(path)
	if err != nil {
		return fail(err)
	}

	if !ok {
		fmt.Fprintln(os.Stderr, "Error: no usable date or amount columns found")
		return subcommands.ExitFailure
	}

	if err := printJSON(mapping); err != nil {
		return fail(err)
	}

	return subcommands.ExitSuccess
}

func detectMapping(path string) (importer.Mapping, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return importer.Mapping{}, false, err
	}
	defer file.Close()

	utf8r, err := enc.NewUTF8Reader(file)
	if err != nil {
		return importer.Mapping{}, false, err
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return importer.Mapping{}, false, fmt.Errorf("reading header row: %w", err)
	}

	mapping, ok := importer.Detect(headers)

	return mapping, ok, nil
}
