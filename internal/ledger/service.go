package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	UpdateTags(ctx context.Context, id uuid.UUID, tags []string) error

	BeginReconcile(ctx context.Context, accountID uuid.UUID) (ReconcileTx, error)
}

// ReconcileTx scopes one reconciliation batch. Everything between
// BeginReconcile and Commit happens in a single storage transaction, so a
// failed batch leaves the ledger exactly as it was.
type ReconcileTx interface {
	ExistingFingerprints(ctx context.Context, accountID uuid.UUID, fingerprints []string) (map[string]struct{}, error)
	InsertTransactions(ctx context.Context, txs []*Transaction) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RowError reports a row that could not be processed. Row is the 1-based
// position in the source file or feed.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// BatchSummary is the machine-consumable outcome of one batch.
type BatchSummary struct {
	NewTransactions int        `json:"new_transactions"`
	Skipped         int        `json:"skipped"`
	Errors          []RowError `json:"errors,omitempty"`
}

// ReconcileResult carries the inserted rows alongside the summary counts.
type ReconcileResult struct {
	Inserted []*Transaction
	Skipped  int
	Errors   []RowError
}

func (r *ReconcileResult) Summary() BatchSummary {
	return BatchSummary{
		NewTransactions: len(r.Inserted),
		Skipped:         r.Skipped,
		Errors:          r.Errors,
	}
}

// Reconcile upserts a batch of canonical records for one account.
//
// Each record is fingerprinted over (account, date, amount, normalized
// description). Records whose fingerprint already exists in the ledger are
// skipped without touching the stored row, which is what makes re-imports
// idempotent and keeps user tags intact. New records are inserted with a
// fresh ID, empty tags, and the caller's source.
//
// The whole batch commits atomically: a storage failure rolls everything
// back and is returned as a fatal error.
func (s *Service) Reconcile(ctx context.Context, accountID uuid.UUID, source Source, records []CanonicalRecord) (*ReconcileResult, error) {
	if len(records) == 0 {
		return &ReconcileResult{}, nil
	}

	type candidate struct {
		record      CanonicalRecord
		normalized  string
		fingerprint string
	}

	candidates := make([]candidate, 0, len(records))
	fingerprints := make([]string, 0, len(records))

	for _, rec := range records {
		normalized := NormalizeDescription(rec.Description)
		fp := Fingerprint(accountID, rec.Date, rec.Amount, normalized)

		candidates = append(candidates, candidate{record: rec, normalized: normalized, fingerprint: fp})
		fingerprints = append(fingerprints, fp)
	}

	rtx, err := s.repo.BeginReconcile(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("begin reconcile: %w", err)
	}
	defer rtx.Rollback()

	existing, err := rtx.ExistingFingerprints(ctx, accountID, fingerprints)
	if err != nil {
		return nil, fmt.Errorf("lookup fingerprints: %w", err)
	}

	result := &ReconcileResult{}

	// seen guards against duplicate rows inside the same batch: the first
	// occurrence inserts, the rest skip.
	seen := make(map[string]struct{}, len(candidates))

	var inserts []*Transaction

	for _, c := range candidates {
		if _, dup := existing[c.fingerprint]; dup {
			result.Skipped++
			continue
		}

		if _, dup := seen[c.fingerprint]; dup {
			result.Skipped++
			continue
		}

		seen[c.fingerprint] = struct{}{}

		inserts = append(inserts, &Transaction{
			ID:                    uuid.New(),
			AccountID:             accountID,
			Date:                  c.record.Date,
			Amount:                c.record.Amount,
			Description:           c.record.Description,
			NormalizedDescription: c.normalized,
			Tags:                  []string{},
			Fingerprint:           c.fingerprint,
			FingerprintVersion:    FingerprintVersion,
			Source:                source,
		})
	}

	if len(inserts) > 0 {
		if err := rtx.InsertTransactions(ctx, inserts); err != nil {
			return nil, fmt.Errorf("insert transactions: %w", err)
		}
	}

	if err := rtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit reconcile: %w", err)
	}

	result.Inserted = inserts

	return result, nil
}

// Tag applies tags to a transaction. By default tags are additive and
// deduplicated while preserving existing order; replace swaps the whole set.
func (s *Service) Tag(ctx context.Context, id uuid.UUID, tags []string, replace bool) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := tx.Tags
	if replace {
		merged = nil
	}

	for _, tag := range tags {
		if containsTag(merged, tag) {
			continue
		}

		merged = append(merged, tag)
	}

	if merged == nil {
		merged = []string{}
	}

	if err := s.repo.UpdateTags(ctx, id, merged); err != nil {
		return nil, fmt.Errorf("update tags: %w", err)
	}

	tx.Tags = merged

	return tx, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}

	return false
}
