package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("transaction not found")

// Source records where a transaction entered the ledger.
type Source string

const (
	SourceImport Source = "import"
	SourceSync   Source = "sync"
	SourceManual Source = "manual"
)

// Transaction is a row in the ledger. The ID is assigned once at insert and
// never reassigned; the fingerprint is a derived dedup key and can be
// recomputed if the normalization rules change.
type Transaction struct {
	ID                    uuid.UUID
	AccountID             uuid.UUID
	Date                  time.Time // calendar date, no time component
	Amount                decimal.Decimal
	Description           string // raw text as imported
	NormalizedDescription string
	Tags                  []string // user-owned, insertion order preserved
	Fingerprint           string
	FingerprintVersion    int
	Source                Source
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

// CanonicalRecord is the normalized row shape produced by the CSV importer
// and delivered by sync providers. It is the only input the reconciliation
// engine accepts.
type CanonicalRecord struct {
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}

// ListFilter narrows List results. Nil fields are ignored.
type ListFilter struct {
	AccountID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Tag       *string
}
