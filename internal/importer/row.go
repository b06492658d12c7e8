package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/ledger"
)

// NormalizeRow converts one raw row, keyed by column name, into a canonical
// record using the profile's mapping. Errors are row-scoped: callers report
// them and move on to the next row.
func NormalizeRow(row map[string]string, p Profile) (ledger.CanonicalRecord, error) {
	if err := p.Mapping.validate(); err != nil {
		return ledger.CanonicalRecord{}, err
	}

	dateCell, ok := row[p.Mapping.Date]
	if !ok {
		return ledger.CanonicalRecord{}, fmt.Errorf("%w: missing column %q", ErrMalformedRow, p.Mapping.Date)
	}

	date, err := parseDate(strings.TrimSpace(dateCell), p.DateFormat)
	if err != nil {
		return ledger.CanonicalRecord{}, err
	}

	amount, err := rowAmount(row, p)
	if err != nil {
		return ledger.CanonicalRecord{}, err
	}

	if p.Options.FlipSigns {
		amount = amount.Neg()
	}

	return ledger.CanonicalRecord{
		Date:        date,
		Amount:      amount,
		Description: strings.TrimSpace(row[p.Mapping.Description]),
	}, nil
}

func rowAmount(row map[string]string, p Profile) (decimal.Decimal, error) {
	if p.Mapping.Mode == ModeSingle {
		cell, ok := row[p.Mapping.Amount]
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("%w: missing column %q", ErrMalformedRow, p.Mapping.Amount)
		}

		return parseAmount(cell, p.NumberFormat)
	}

	debitCell, debitOK := row[p.Mapping.Debit]
	creditCell, creditOK := row[p.Mapping.Credit]

	if !debitOK && !creditOK {
		return decimal.Decimal{}, fmt.Errorf("%w: missing columns %q and %q", ErrMalformedRow, p.Mapping.Debit, p.Mapping.Credit)
	}

	hasDebit := strings.TrimSpace(debitCell) != ""
	hasCredit := strings.TrimSpace(creditCell) != ""

	switch {
	case !hasDebit && !hasCredit:
		return decimal.Zero, nil

	case hasDebit && hasCredit:
		// A row is expected to fill exactly one side. When an export fills
		// both, net them rather than reject the row.
		debit, err := parseAmount(debitCell, p.NumberFormat)
		if err != nil {
			return decimal.Decimal{}, err
		}

		credit, err := parseAmount(creditCell, p.NumberFormat)
		if err != nil {
			return decimal.Decimal{}, err
		}

		return credit.Sub(debit), nil

	case hasDebit:
		debit, err := parseAmount(debitCell, p.NumberFormat)
		if err != nil {
			return decimal.Decimal{}, err
		}

		// Debit signs are preserved as read; DebitNegative is for exports
		// whose debit column is unsigned.
		if p.Options.DebitNegative && debit.IsPositive() {
			debit = debit.Neg()
		}

		return debit, nil

	default:
		return parseAmount(creditCell, p.NumberFormat)
	}
}
