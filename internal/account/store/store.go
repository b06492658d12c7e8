package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/account"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (id, name, type, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING created_at
	`

	err := s.db.QueryRowContext(ctx, query, acc.ID, acc.Name, string(acc.Type)).Scan(&acc.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT id, name, type, created_at FROM accounts WHERE id = $1`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

func (s *Store) GetAccountByName(ctx context.Context, name string) (*account.Account, error) {
	query := `SELECT id, name, type, created_at FROM accounts WHERE name = $1`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, name))
}

func (s *Store) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	query := `SELECT id, name, type, created_at FROM accounts ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accs []*account.Account

	for rows.Next() {
		var acc account.Account

		var typeStr string

		if err := rows.Scan(&acc.ID, &acc.Name, &typeStr, &acc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		acc.Type = account.Type(typeStr)
		accs = append(accs, &acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	return accs, nil
}

func (s *Store) scanAccount(row *sql.Row) (*account.Account, error) {
	var acc account.Account

	var typeStr string

	if err := row.Scan(&acc.ID, &acc.Name, &typeStr, &acc.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	acc.Type = account.Type(typeStr)

	return &acc, nil
}
