package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	GetAccountByName(ctx context.Context, name string) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name string, accType Type) (*Account, error) {
	acc := &Account{
		ID:   uuid.New(),
		Name: name,
		Type: accType,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}

// GetOrCreate resolves an account by name, creating it when absent. Sync
// providers use this to land feed accounts on first contact.
func (s *Service) GetOrCreate(ctx context.Context, name string, accType Type) (*Account, error) {
	acc, err := s.repo.GetAccountByName(ctx, name)
	if err == nil {
		return acc, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return s.Create(ctx, name, accType)
}

func (s *Service) GetByName(ctx context.Context, name string) (*Account, error) {
	return s.repo.GetAccountByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}
