package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ledgerline/ledgerline/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// pgTypes drives text[] scanning through database/sql. The tags column is a
// real array column so membership and length push down to the database.
var pgTypes = pgtype.NewMap()

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	id, account_id, date, amount, description, normalized_description,
	tags, fingerprint, fingerprint_version, source, created_at, updated_at
`

// scanTransaction reads one ledger row in selectTransactionColumns order.
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var tx ledger.Transaction

	var sourceStr string

	var normDesc sql.NullString

	if err := s.Scan(
		&tx.ID, &tx.AccountID, &tx.Date, &tx.Amount, &tx.Description, &normDesc,
		pgTypes.SQLScanner(&tx.Tags), &tx.Fingerprint, &tx.FingerprintVersion,
		&sourceStr, &tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.NormalizedDescription = normDesc.String
	tx.Source = ledger.Source(sourceStr)

	if tx.Tags == nil {
		tx.Tags = []string{}
	}

	return &tx, nil
}

func (s *Store) GetTransaction(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE id = $1`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ledger.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter ledger.ListFilter) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions
		WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.AccountID != nil {
		query += fmt.Sprintf(" AND account_id = $%d", argIdx)

		args = append(args, *filter.AccountID)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Tag != nil {
		// Array membership on the tags column.
		query += fmt.Sprintf(" AND $%d = ANY(tags)", argIdx)

		args = append(args, *filter.Tag)
		argIdx++
	}

	query += " ORDER BY date ASC, created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error {
	query := `
		UPDATE transactions
		SET tags = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, tags, id)
	if err != nil {
		return fmt.Errorf("updating tags: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ledger.ErrNotFound
	}

	return nil
}

// reconcileLockKey derives the advisory lock key that serializes batches
// for one account.
func reconcileLockKey(accountID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write([]byte("reconcile"))
	h.Write([]byte{0})
	h.Write([]byte(accountID.String()))

	return int64(h.Sum64())
}

type reconcileTx struct {
	tx *sql.Tx
}

// BeginReconcile opens the batch transaction and takes a per-account
// advisory lock, so two batches for the same account never interleave.
func (s *Store) BeginReconcile(ctx context.Context, accountID uuid.UUID) (ledger.ReconcileTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning reconcile tx: %w", err)
	}

	lockKey := reconcileLockKey(accountID)
	if _, err := dbTx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		dbTx.Rollback()
		return nil, fmt.Errorf("acquiring reconcile lock: %w", err)
	}

	return &reconcileTx{tx: dbTx}, nil
}

func (rtx *reconcileTx) Commit() error   { return rtx.tx.Commit() }
func (rtx *reconcileTx) Rollback() error { return rtx.tx.Rollback() }

func (rtx *reconcileTx) ExistingFingerprints(ctx context.Context, accountID uuid.UUID, fingerprints []string) (map[string]struct{}, error) {
	if len(fingerprints) == 0 {
		return map[string]struct{}{}, nil
	}

	query := `
		SELECT fingerprint
		FROM transactions
		WHERE account_id = $1 AND fingerprint = ANY($2)
	`

	rows, err := rtx.tx.QueryContext(ctx, query, accountID, fingerprints)
	if err != nil {
		return nil, fmt.Errorf("querying fingerprints: %w", err)
	}
	defer rows.Close()

	existing := make(map[string]struct{})

	for rows.Next() {
		var fp string
		if err := rows.Scan(&fp); err != nil {
			return nil, fmt.Errorf("scanning fingerprint: %w", err)
		}

		existing[fp] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fingerprints: %w", err)
	}

	return existing, nil
}

func (rtx *reconcileTx) InsertTransactions(ctx context.Context, txs []*ledger.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, account_id, date, amount, description, normalized_description,
			tags, fingerprint, fingerprint_version, source, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at
	`

	for _, tx := range txs {
		err := rtx.tx.QueryRowContext(ctx, query,
			tx.ID,
			tx.AccountID,
			tx.Date,
			tx.Amount,
			tx.Description,
			tx.NormalizedDescription,
			tx.Tags,
			tx.Fingerprint,
			tx.FingerprintVersion,
			string(tx.Source),
		).Scan(&tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting transaction: %w", err)
		}
	}

	return nil
}
