// Package sync pulls accounts and transactions from an external feed and
// runs them through the same reconciliation path as CSV imports, so repeated
// syncs never duplicate rows or disturb user tags.
package sync

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerline/ledgerline/internal/account"
	"github.com/ledgerline/ledgerline/internal/ledger"
)

// Account is an account as the provider reports it, before it is matched to
// a local ledger account.
type Account struct {
	// ExternalID is the provider's identifier, used to request transactions.
	ExternalID string
	Name       string
	Type       account.Type

	// Balance is the provider-reported balance as of BalanceDate, when the
	// feed carries one.
	Balance     *decimal.Decimal
	BalanceDate time.Time
}

//go:generate mockgen -source=provider.go -destination=provider_mock.go -package=sync
type Provider interface {
	Name() string

	Accounts(ctx context.Context) ([]Account, error)

	// Transactions returns canonical records for one account with dates
	// in [start, end].
	Transactions(ctx context.Context, externalID string, start, end time.Time) ([]ledger.CanonicalRecord, error)
}
