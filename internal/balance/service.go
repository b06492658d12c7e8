package balance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=balance
type Repository interface {
	ListSnapshots(ctx context.Context, accountID uuid.UUID) ([]*Snapshot, error)

	// DailyDeltas returns the net transaction amount per calendar day for
	// the account over [from, to], keyed by Day(date). Days without
	// transactions are absent.
	DailyDeltas(ctx context.Context, accountID uuid.UUID, from, to time.Time) (map[time.Time]decimal.Decimal, error)

	// TransactionDateRange reports the account's earliest and latest
	// transaction dates; ok is false when the account has no transactions.
	TransactionDateRange(ctx context.Context, accountID uuid.UUID) (earliest, latest time.Time, ok bool, err error)

	UpsertAnchor(ctx context.Context, snap *Snapshot) error

	BeginBackfill(ctx context.Context) (BackfillTx, error)
}

// BackfillTx scopes one backfill write batch; like reconciliation, a run
// either commits all of its computed snapshots or none of them.
type BackfillTx interface {
	UpsertComputed(ctx context.Context, snaps []*Snapshot) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Options control one backfill run.
type Options struct {
	// Days bounds how far back recomputation reaches from the window end.
	// Zero means the full ledger history for the account.
	Days int

	// DryRun computes the snapshots without persisting them.
	DryRun bool

	// RequireAnchor fails the run with ErrNoAnchor when the account has no
	// anchor snapshot. When unset, an anchorless account is replayed
	// forward from a zero balance at its earliest transaction date.
	RequireAnchor bool
}

type Result struct {
	AccountID      uuid.UUID
	Created        int
	SkippedAnchors int
	WindowStart    time.Time
	WindowEnd      time.Time
	DryRun         bool
	// Snapshots holds the computed rows; populated for dry runs so callers
	// can preview the series.
	Snapshots []*Snapshot
}

// Backfill reconstructs the daily balance series for one account.
//
// The window ends at the later of the newest anchor date and the newest
// transaction date, and reaches back Options.Days days (or the full history).
// Balances are replayed from the most recent anchor: forward of the anchor
// each day adds its net delta, behind the anchor each day's balance is the
// next day's balance minus the next day's delta. A day with no transactions
// carries its neighbor's balance unchanged.
//
// One computed snapshot is written per day in the window. Anchor dates are
// left untouched; previously computed snapshots are replaced. Days outside
// the window are not visited even if stale.
func (s *Service) Backfill(ctx context.Context, accountID uuid.UUID, opts Options) (*Result, error) {
	result := &Result{AccountID: accountID, DryRun: opts.DryRun}

	snaps, err := s.repo.ListSnapshots(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	anchorDates := make(map[time.Time]struct{})

	var latestAnchor *Snapshot

	for _, snap := range snaps {
		if !snap.IsAnchor {
			continue
		}

		day := Day(snap.Date)
		anchorDates[day] = struct{}{}

		if latestAnchor == nil || day.After(Day(latestAnchor.Date)) {
			latestAnchor = snap
		}
	}

	earliestTx, latestTx, hasTx, err := s.repo.TransactionDateRange(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("transaction date range: %w", err)
	}

	var anchorDay time.Time

	var anchorBalance decimal.Decimal

	switch {
	case latestAnchor != nil:
		anchorDay = Day(latestAnchor.Date)
		anchorBalance = latestAnchor.Balance
	case opts.RequireAnchor:
		return nil, ErrNoAnchor
	case !hasTx:
		// No anchor and no transactions: nothing to reconstruct.
		return result, nil
	default:
		// Zero baseline the day before the first transaction, so the first
		// active day's snapshot equals that day's net delta.
		anchorDay = Day(earliestTx).AddDate(0, 0, -1)
		anchorBalance = decimal.Zero
	}

	end := anchorDay
	if hasTx && Day(latestTx).After(end) {
		end = Day(latestTx)
	}

	var start time.Time
	if opts.Days > 0 {
		start = end.AddDate(0, 0, -opts.Days)
	} else {
		start = anchorDay
		if hasTx && Day(earliestTx).Before(start) {
			start = Day(earliestTx)
		}
	}

	result.WindowStart = start
	result.WindowEnd = end

	// The replay needs every delta after the anchor or after the window
	// start, whichever is earlier.
	deltasFrom := start
	if anchorDay.Before(deltasFrom) {
		deltasFrom = anchorDay
	}

	deltas, err := s.repo.DailyDeltas(ctx, accountID, deltasFrom.AddDate(0, 0, 1), end)
	if err != nil {
		return nil, fmt.Errorf("daily deltas: %w", err)
	}

	balances := replaySeries(anchorDay, anchorBalance, start, end, deltas)

	var computed []*Snapshot

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if _, isAnchor := anchorDates[day]; isAnchor {
			result.SkippedAnchors++
			continue
		}

		computed = append(computed, &Snapshot{
			ID:        uuid.New(),
			AccountID: accountID,
			Date:      day,
			Balance:   balances[day],
			IsAnchor:  false,
		})
	}

	result.Created = len(computed)
	result.Snapshots = computed

	if opts.DryRun || len(computed) == 0 {
		return result, nil
	}

	btx, err := s.repo.BeginBackfill(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin backfill: %w", err)
	}
	defer btx.Rollback()

	if err := btx.UpsertComputed(ctx, computed); err != nil {
		return nil, fmt.Errorf("upsert snapshots: %w", err)
	}

	if err := btx.Commit(); err != nil {
		return nil, fmt.Errorf("commit backfill: %w", err)
	}

	return result, nil
}

// replaySeries computes the end-of-day balance for every day in [start, end]
// given a known balance at the end of anchorDay.
func replaySeries(anchorDay time.Time, anchorBalance decimal.Decimal, start, end time.Time, deltas map[time.Time]decimal.Decimal) map[time.Time]decimal.Decimal {
	balances := make(map[time.Time]decimal.Decimal)
	balances[anchorDay] = anchorBalance

	// Forward of the anchor: each day ends at the prior day plus its delta.
	bal := anchorBalance
	for day := anchorDay.AddDate(0, 0, 1); !day.After(end); day = day.AddDate(0, 0, 1) {
		bal = bal.Add(deltas[day])
		balances[day] = bal
	}

	// Behind the anchor: a day ends where the next day started.
	bal = anchorBalance
	for day := anchorDay.AddDate(0, 0, -1); !day.Before(start); day = day.AddDate(0, 0, -1) {
		bal = bal.Sub(deltas[day.AddDate(0, 0, 1)])
		balances[day] = bal
	}

	return balances
}

// AddAnchor records a user-entered balance for an account at a date. An
// anchor replaces whatever snapshot exists on that date, computed or anchor,
// except an identical one, which is rejected so accidental double entry is
// visible.
func (s *Service) AddAnchor(ctx context.Context, accountID uuid.UUID, date time.Time, bal decimal.Decimal) (*Snapshot, error) {
	day := Day(date)

	snaps, err := s.repo.ListSnapshots(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}

	for _, snap := range snaps {
		if snap.IsAnchor && Day(snap.Date).Equal(day) && snap.Balance.Equal(bal) {
			return nil, ErrDuplicateAnchor
		}
	}

	snap := &Snapshot{
		ID:        uuid.New(),
		AccountID: accountID,
		Date:      day,
		Balance:   bal,
		IsAnchor:  true,
	}

	if err := s.repo.UpsertAnchor(ctx, snap); err != nil {
		return nil, fmt.Errorf("upserting anchor: %w", err)
	}

	return snap, nil
}

// Snapshots returns the stored series for an account, anchors included.
func (s *Service) Snapshots(ctx context.Context, accountID uuid.UUID) ([]*Snapshot, error) {
	return s.repo.ListSnapshots(ctx, accountID)
}
