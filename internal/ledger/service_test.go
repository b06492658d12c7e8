package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerline/ledgerline/internal/ledger"
)

func record(day int, amount, desc string) ledger.CanonicalRecord {
	return ledger.CanonicalRecord{
		Date:        time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.RequireFromString(amount),
		Description: desc,
	}
}

func TestService_Reconcile(t *testing.T) {
	accountID := uuid.MustParse("3f2f3f0a-95b4-4dd0-8f3b-0a4f5b7c9d11")

	type args struct {
		records []ledger.CanonicalRecord
	}

	type testCase struct {
		name        string
		args        args
		setupMock   func(repo *ledger.MockRepository, rtx *ledger.MockReconcileTx)
		wantNew     int
		wantSkipped int
		wantErr     bool
	}

	tests := []testCase{
		{
			name: "AllNew",
			args: args{records: []ledger.CanonicalRecord{
				record(1, "-100.00", "Payment"),
				record(2, "50.00", "Refund"),
			}},
			setupMock: func(repo *ledger.MockRepository, rtx *ledger.MockReconcileTx) {
				repo.EXPECT().BeginReconcile(gomock.Any(), accountID).Return(rtx, nil)
				rtx.EXPECT().
					ExistingFingerprints(gomock.Any(), accountID, gomock.Len(2)).
					Return(map[string]struct{}{}, nil)
				rtx.EXPECT().
					InsertTransactions(gomock.Any(), gomock.Len(2)).
					DoAndReturn(func(_ context.Context, txs []*ledger.Transaction) error {
						for _, tx := range txs {
							assert.NotEqual(t, uuid.Nil, tx.ID)
							assert.Equal(t, accountID, tx.AccountID)
							assert.Equal(t, ledger.SourceImport, tx.Source)
							assert.Empty(t, tx.Tags)
							assert.NotEmpty(t, tx.Fingerprint)
						}
						return nil
					})
				rtx.EXPECT().Commit().Return(nil)
				rtx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantNew: 2,
		},
		{
			name: "DuplicateInLedgerSkipped",
			args: args{records: []ledger.CanonicalRecord{
				record(1, "-100.00", "Payment"),
			}},
			setupMock: func(repo *ledger.MockRepository, rtx *ledger.MockReconcileTx) {
				repo.EXPECT().BeginReconcile(gomock.Any(), accountID).Return(rtx, nil)
				rtx.EXPECT().
					ExistingFingerprints(gomock.Any(), accountID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, fps []string) (map[string]struct{}, error) {
						existing := make(map[string]struct{}, len(fps))
						for _, fp := range fps {
							existing[fp] = struct{}{}
						}
						return existing, nil
					})
				rtx.EXPECT().Commit().Return(nil)
				rtx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantSkipped: 1,
		},
		{
			name: "DuplicateWithinBatchSkipped",
			args: args{records: []ledger.CanonicalRecord{
				record(1, "-100.00", "Payment null null"),
				record(1, "-100.00", "Payment"),
			}},
			setupMock: func(repo *ledger.MockRepository, rtx *ledger.MockReconcileTx) {
				repo.EXPECT().BeginReconcile(gomock.Any(), accountID).Return(rtx, nil)
				rtx.EXPECT().
					ExistingFingerprints(gomock.Any(), accountID, gomock.Any()).
					Return(map[string]struct{}{}, nil)
				rtx.EXPECT().InsertTransactions(gomock.Any(), gomock.Len(1)).Return(nil)
				rtx.EXPECT().Commit().Return(nil)
				rtx.EXPECT().Rollback().Return(nil).AnyTimes()
			},
			wantNew:     1,
			wantSkipped: 1,
		},
		{
			name: "InsertFailureRollsBack",
			args: args{records: []ledger.CanonicalRecord{
				record(1, "-100.00", "Payment"),
			}},
			setupMock: func(repo *ledger.MockRepository, rtx *ledger.MockReconcileTx) {
				repo.EXPECT().BeginReconcile(gomock.Any(), accountID).Return(rtx, nil)
				rtx.EXPECT().
					ExistingFingerprints(gomock.Any(), accountID, gomock.Any()).
					Return(map[string]struct{}{}, nil)
				rtx.EXPECT().
					InsertTransactions(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
				rtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			rtx := ledger.NewMockReconcileTx(ctrl)
			tt.setupMock(repo, rtx)

			svc := ledger.NewService(repo)
			got, err := svc.Reconcile(context.Background(), accountID, ledger.SourceImport, tt.args.records)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got.Inserted, tt.wantNew)
			assert.Equal(t, tt.wantSkipped, got.Skipped)

			summary := got.Summary()
			assert.Equal(t, tt.wantNew, summary.NewTransactions)
			assert.Equal(t, tt.wantSkipped, summary.Skipped)
		})
	}
}

func TestService_Reconcile_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No repository calls expected for an empty batch.
	repo := ledger.NewMockRepository(ctrl)

	svc := ledger.NewService(repo)
	got, err := svc.Reconcile(context.Background(), uuid.New(), ledger.SourceSync, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Inserted)
	assert.Zero(t, got.Skipped)
}

func TestService_Reconcile_Idempotent(t *testing.T) {
	// Reconciling the same batch twice: the second run inserts nothing and
	// skips every row.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	records := []ledger.CanonicalRecord{
		record(1, "-100.00", "Payment"),
		record(2, "25.00", "Refund"),
		record(3, "-3.20", "Coffee"),
	}

	stored := make(map[string]struct{})

	repo := ledger.NewMockRepository(ctrl)
	rtx := ledger.NewMockReconcileTx(ctrl)

	repo.EXPECT().BeginReconcile(gomock.Any(), accountID).Return(rtx, nil).Times(2)
	rtx.EXPECT().
		ExistingFingerprints(gomock.Any(), accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fps []string) (map[string]struct{}, error) {
			existing := make(map[string]struct{})
			for _, fp := range fps {
				if _, ok := stored[fp]; ok {
					existing[fp] = struct{}{}
				}
			}
			return existing, nil
		}).
		Times(2)
	rtx.EXPECT().
		InsertTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*ledger.Transaction) error {
			for _, tx := range txs {
				stored[tx.Fingerprint] = struct{}{}
			}
			return nil
		})
	rtx.EXPECT().Commit().Return(nil).Times(2)
	rtx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := ledger.NewService(repo)

	first, err := svc.Reconcile(context.Background(), accountID, ledger.SourceImport, records)
	require.NoError(t, err)
	assert.Len(t, first.Inserted, 3)
	assert.Zero(t, first.Skipped)

	second, err := svc.Reconcile(context.Background(), accountID, ledger.SourceImport, records)
	require.NoError(t, err)
	assert.Empty(t, second.Inserted)
	assert.Equal(t, 3, second.Skipped)
}

func TestService_Tag(t *testing.T) {
	type args struct {
		tags    []string
		replace bool
	}

	type testCase struct {
		name      string
		args      args
		existing  []string
		wantTags  []string
		setupMock func(repo *ledger.MockRepository, id uuid.UUID, existing, want []string)
		wantErr   bool
	}

	applyMocks := func(repo *ledger.MockRepository, id uuid.UUID, existing, want []string) {
		repo.EXPECT().
			GetTransaction(gomock.Any(), id).
			Return(&ledger.Transaction{ID: id, Tags: existing}, nil)
		repo.EXPECT().UpdateTags(gomock.Any(), id, want).Return(nil)
	}

	tests := []testCase{
		{
			name:      "AdditiveMerge",
			args:      args{tags: []string{"groceries", "food"}},
			existing:  []string{"food"},
			wantTags:  []string{"food", "groceries"},
			setupMock: applyMocks,
		},
		{
			name:      "Replace",
			args:      args{tags: []string{"travel"}, replace: true},
			existing:  []string{"food", "groceries"},
			wantTags:  []string{"travel"},
			setupMock: applyMocks,
		},
		{
			name:      "ReplaceWithEmptyClears",
			args:      args{tags: nil, replace: true},
			existing:  []string{"food"},
			wantTags:  []string{},
			setupMock: applyMocks,
		},
		{
			name:     "NotFound",
			args:     args{tags: []string{"x"}},
			existing: nil,
			setupMock: func(repo *ledger.MockRepository, id uuid.UUID, _, _ []string) {
				repo.EXPECT().
					GetTransaction(gomock.Any(), id).
					Return(nil, ledger.ErrNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			id := uuid.New()
			repo := ledger.NewMockRepository(ctrl)
			tt.setupMock(repo, id, tt.existing, tt.wantTags)

			svc := ledger.NewService(repo)
			got, err := svc.Tag(context.Background(), id, tt.args.tags, tt.args.replace)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTags, got.Tags)
		})
	}
}
