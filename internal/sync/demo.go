package sync

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/account"
	"github.com/ledgerline/ledgerline/internal/ledger"
)

const (
	demoCheckingID = "demo-checking-001"
	demoSavingsID  = "demo-savings-001"
)

// DemoProvider serves generated accounts and transactions so the sync path
// can be exercised without feed credentials. Output is a pure function of
// the requested window, so repeated syncs reconcile to all-skipped.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

func (p *DemoProvider) Name() string {
	return "demo"
}

func (p *DemoProvider) Accounts(_ context.Context) ([]Account, error) {
	checkingBalance := decimal.RequireFromString("4823.47")
	savingsBalance := decimal.RequireFromString("18750.00")

	return []Account{
		{
			ExternalID: demoCheckingID,
			Name:       "Demo Checking",
			Type:       account.TypeChecking,
			Balance:    &checkingBalance,
		},
		{
			ExternalID: demoSavingsID,
			Name:       "Demo Savings",
			Type:       account.TypeSavings,
			Balance:    &savingsBalance,
		},
	}, nil
}

func (p *DemoProvider) Transactions(_ context.Context, externalID string, start, end time.Time) ([]ledger.CanonicalRecord, error) {
	var records []ledger.CanonicalRecord

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		switch externalID {
		case demoCheckingID:
			records = append(records, checkingRecords(day)...)
		case demoSavingsID:
			records = append(records, savingsRecords(day)...)
		}
	}

	return records, nil
}

func checkingRecords(day time.Time) []ledger.CanonicalRecord {
	var records []ledger.CanonicalRecord

	if day.Day() == 1 || day.Day() == 15 {
		records = append(records, ledger.CanonicalRecord{
			Date:        day,
			Amount:      decimal.RequireFromString("2400.00"),
			Description: "ACME PAYROLL DIRECT DEP",
		})
	}

	if day.Day() == 1 {
		records = append(records, ledger.CanonicalRecord{
			Date:        day,
			Amount:      decimal.RequireFromString("-1850.00"),
			Description: "OAKWOOD PROPERTY RENT",
		})
	}

	if day.Day()%3 == 0 {
		records = append(records, ledger.CanonicalRecord{
			Date:        day,
			Amount:      decimal.RequireFromString("-67.30"),
			Description: "GREENLEAF GROCERY",
		})
	}

	if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
		records = append(records, ledger.CanonicalRecord{
			Date:        day,
			Amount:      decimal.RequireFromString("-4.50"),
			Description: "CORNER COFFEE",
		})
	}

	return records
}

func savingsRecords(day time.Time) []ledger.CanonicalRecord {
	if day.Day() != 1 {
		return nil
	}

	return []ledger.CanonicalRecord{
		{
			Date:        day,
			Amount:      decimal.RequireFromString("500.00"),
			Description: "TRANSFER FROM CHECKING",
		},
		{
			Date:        day,
			Amount:      decimal.RequireFromString("12.40"),
			Description: "INTEREST PAYMENT",
		},
	}
}
