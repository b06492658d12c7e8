package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

// Type classifies an account for reporting; the reconciliation core treats
// all types the same.
type Type string

const (
	TypeChecking   Type = "checking"
	TypeSavings    Type = "savings"
	TypeCreditCard Type = "credit_card"
	TypeInvestment Type = "investment"
)

// Account is referenced by transactions and balance snapshots; it is created
// by setup or import and never mutated by reconciliation or backfill.
type Account struct {
	ID        uuid.UUID
	Name      string
	Type      Type
	CreatedAt time.Time
}
