package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/account"
	"github.com/ledgerline/ledgerline/internal/balance"
	"github.com/ledgerline/ledgerline/internal/ledger"
)

const (
	// overlapDays is how far an incremental sync reaches behind the newest
	// ledger transaction, to pick up late-posting rows. The overlap is safe
	// because reconciliation skips duplicates.
	overlapDays = 7

	// initialWindowDays is the lookback for an account's first sync.
	initialWindowDays = 90
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=sync
type Accounts interface {
	GetOrCreate(ctx context.Context, name string, accType account.Type) (*account.Account, error)
}

type Ledger interface {
	Reconcile(ctx context.Context, accountID uuid.UUID, source ledger.Source, records []ledger.CanonicalRecord) (*ledger.ReconcileResult, error)
}

// LedgerDates reports the transaction date span of an account, used to
// decide between an initial and an incremental window.
type LedgerDates interface {
	TransactionDateRange(ctx context.Context, accountID uuid.UUID) (earliest, latest time.Time, ok bool, err error)
}

// Anchors records provider-reported balances as anchor snapshots.
type Anchors interface {
	AddAnchor(ctx context.Context, accountID uuid.UUID, date time.Time, bal decimal.Decimal) (*balance.Snapshot, error)
}

type Service struct {
	provider Provider
	accounts Accounts
	ledger   Ledger
	dates    LedgerDates
	anchors  Anchors
}

func NewService(provider Provider, accounts Accounts, ledgerSvc Ledger, dates LedgerDates, anchors Anchors) *Service {
	return &Service{
		provider: provider,
		accounts: accounts,
		ledger:   ledgerSvc,
		dates:    dates,
		anchors:  anchors,
	}
}

type Options struct {
	// DryRun fetches and counts without writing to the ledger.
	DryRun bool
}

// AccountResult reports one account's sync outcome.
type AccountResult struct {
	AccountID   uuid.UUID           `json:"account_id"`
	Account     string              `json:"account"`
	SyncType    string              `json:"sync_type"` // "initial" or "incremental"
	WindowStart time.Time           `json:"window_start"`
	WindowEnd   time.Time           `json:"window_end"`
	Discovered  int                 `json:"discovered"`
	Batch       ledger.BatchSummary `json:"batch"`
}

type Result struct {
	Provider string          `json:"provider"`
	DryRun   bool            `json:"dry_run,omitempty"`
	Accounts []AccountResult `json:"accounts"`
}

// Sync pulls every provider account through reconciliation. Accounts are
// matched to local ones by name, created on first sight.
func (s *Service) Sync(ctx context.Context, opts Options) (*Result, error) {
	providerAccounts, err := s.provider.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching provider accounts: %w", err)
	}

	result := &Result{Provider: s.provider.Name(), DryRun: opts.DryRun}
	end := balance.Day(time.Now().UTC())

	for _, pa := range providerAccounts {
		acct, err := s.accounts.GetOrCreate(ctx, pa.Name, pa.Type)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", pa.Name, err)
		}

		ar, err := s.syncAccount(ctx, pa, acct, end, opts)
		if err != nil {
			return nil, fmt.Errorf("account %q: %w", pa.Name, err)
		}

		result.Accounts = append(result.Accounts, *ar)
	}

	return result, nil
}

func (s *Service) syncAccount(ctx context.Context, pa Account, acct *account.Account, end time.Time, opts Options) (*AccountResult, error) {
	_, latest, ok, err := s.dates.TransactionDateRange(ctx, acct.ID)
	if err != nil {
		return nil, fmt.Errorf("transaction date range: %w", err)
	}

	syncType := "initial"
	start := end.AddDate(0, 0, -initialWindowDays)

	if ok {
		syncType = "incremental"
		start = balance.Day(latest).AddDate(0, 0, -overlapDays)
	}

	records, err := s.provider.Transactions(ctx, pa.ExternalID, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetching transactions: %w", err)
	}

	ar := &AccountResult{
		AccountID:   acct.ID,
		Account:     acct.Name,
		SyncType:    syncType,
		WindowStart: start,
		WindowEnd:   end,
		Discovered:  len(records),
	}

	if opts.DryRun {
		return ar, nil
	}

	res, err := s.ledger.Reconcile(ctx, acct.ID, ledger.SourceSync, records)
	if err != nil {
		return nil, fmt.Errorf("reconciling: %w", err)
	}

	ar.Batch = res.Summary()

	if pa.Balance != nil {
		date := pa.BalanceDate
		if date.IsZero() {
			date = end
		}

		if _, err := s.anchors.AddAnchor(ctx, acct.ID, date, *pa.Balance); err != nil &&
			!errors.Is(err, balance.ErrDuplicateAnchor) {
			return nil, fmt.Errorf("recording balance anchor: %w", err)
		}
	}

	return ar, nil
}
