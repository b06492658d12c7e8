package balance

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoAnchor is returned by Backfill when Options.RequireAnchor is set
	// and the account has no user-entered anchor snapshot.
	ErrNoAnchor = errors.New("no anchor snapshot for account")

	// ErrDuplicateAnchor is returned when an identical anchor (same account,
	// date, balance) already exists.
	ErrDuplicateAnchor = errors.New("anchor snapshot already exists")
)

// Snapshot is a per-account end-of-day balance. Anchor snapshots are
// user-entered ground truth and are never overwritten by backfill; computed
// snapshots are derived and may be replaced by any later run.
//
// For one account there is at most one snapshot per date.
type Snapshot struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Date      time.Time
	Balance   decimal.Decimal
	IsAnchor  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Day normalizes a time to its calendar date at midnight UTC. Snapshot math
// works on whole days only.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
