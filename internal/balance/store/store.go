package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/balance"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListSnapshots(ctx context.Context, accountID uuid.UUID) ([]*balance.Snapshot, error) {
	query := `
		SELECT id, account_id, date, balance, is_anchor, created_at, updated_at
		FROM balance_snapshots
		WHERE account_id = $1
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*balance.Snapshot

	for rows.Next() {
		var snap balance.Snapshot
		if err := rows.Scan(
			&snap.ID, &snap.AccountID, &snap.Date, &snap.Balance,
			&snap.IsAnchor, &snap.CreatedAt, &snap.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}

		snap.Date = balance.Day(snap.Date)
		snaps = append(snaps, &snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}

	return snaps, nil
}

func (s *Store) DailyDeltas(ctx context.Context, accountID uuid.UUID, from, to time.Time) (map[time.Time]decimal.Decimal, error) {
	query := `
		SELECT date, SUM(amount)
		FROM transactions
		WHERE account_id = $1 AND date >= $2 AND date <= $3
		GROUP BY date
	`

	rows, err := s.db.QueryContext(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying daily deltas: %w", err)
	}
	defer rows.Close()

	deltas := make(map[time.Time]decimal.Decimal)

	for rows.Next() {
		var day time.Time

		var sum decimal.Decimal

		if err := rows.Scan(&day, &sum); err != nil {
			return nil, fmt.Errorf("scanning delta: %w", err)
		}

		deltas[balance.Day(day)] = sum
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deltas: %w", err)
	}

	return deltas, nil
}

func (s *Store) TransactionDateRange(ctx context.Context, accountID uuid.UUID) (time.Time, time.Time, bool, error) {
	query := `SELECT MIN(date), MAX(date) FROM transactions WHERE account_id = $1`

	var earliest, latest sql.NullTime
	if err := s.db.QueryRowContext(ctx, query, accountID).Scan(&earliest, &latest); err != nil {
		return time.Time{}, time.Time{}, false, fmt.Errorf("querying date range: %w", err)
	}

	if !earliest.Valid || !latest.Valid {
		return time.Time{}, time.Time{}, false, nil
	}

	return balance.Day(earliest.Time), balance.Day(latest.Time), true, nil
}

// UpsertAnchor records a user-entered anchor, replacing whatever snapshot
// occupies that date. Anchors are ground truth, so they win over both
// computed rows and earlier anchors.
func (s *Store) UpsertAnchor(ctx context.Context, snap *balance.Snapshot) error {
	query := `
		INSERT INTO balance_snapshots (id, account_id, date, balance, is_anchor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		ON CONFLICT (account_id, date) DO UPDATE
		SET balance = EXCLUDED.balance, is_anchor = TRUE, updated_at = NOW()
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, snap.ID, snap.AccountID, snap.Date, snap.Balance).Scan(&snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting anchor: %w", err)
	}

	return nil
}

type backfillTx struct {
	tx *sql.Tx
}

func (s *Store) BeginBackfill(ctx context.Context) (balance.BackfillTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning backfill tx: %w", err)
	}

	return &backfillTx{tx: dbTx}, nil
}

func (btx *backfillTx) Commit() error   { return btx.tx.Commit() }
func (btx *backfillTx) Rollback() error { return btx.tx.Rollback() }

// UpsertComputed writes computed snapshots. The conflict guard keeps anchor
// rows untouched even if the service handed us an anchor date by mistake.
func (btx *backfillTx) UpsertComputed(ctx context.Context, snaps []*balance.Snapshot) error {
	query := `
		INSERT INTO balance_snapshots (id, account_id, date, balance, is_anchor, created_at, updated_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
		ON CONFLICT (account_id, date) DO UPDATE
		SET balance = EXCLUDED.balance, updated_at = NOW()
		WHERE balance_snapshots.is_anchor = FALSE
	`

	for _, snap := range snaps {
		if _, err := btx.tx.ExecContext(ctx, query, snap.ID, snap.AccountID, snap.Date, snap.Balance); err != nil {
			return fmt.Errorf("upserting snapshot: %w", err)
		}
	}

	return nil
}
