package balance_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerline/ledgerline/internal/balance"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func anchorSnap(accountID uuid.UUID, date time.Time, bal string) *balance.Snapshot {
	return &balance.Snapshot{
		ID:        uuid.New(),
		AccountID: accountID,
		Date:      date,
		Balance:   dec(bal),
		IsAnchor:  true,
	}
}

// balancesByDate flattens computed snapshots for assertion.
func balancesByDate(snaps []*balance.Snapshot) map[string]string {
	out := make(map[string]string, len(snaps))
	for _, s := range snaps {
		out[s.Date.Format(time.DateOnly)] = s.Balance.StringFixed(2)
	}

	return out
}

func TestService_Backfill_QuietWindowCarriesAnchor(t *testing.T) {
	// Anchor of 1000.00 at D and zero transactions in [D-7, D]: a 7-day
	// window yields 7 computed snapshots, all 1000.00, anchor untouched.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	anchorDay := day(2025, 6, 30)

	repo := balance.NewMockRepository(ctrl)
	btx := balance.NewMockBackfillTx(ctrl)

	repo.EXPECT().
		ListSnapshots(gomock.Any(), accountID).
		Return([]*balance.Snapshot{anchorSnap(accountID, anchorDay, "1000.00")}, nil)
	repo.EXPECT().
		TransactionDateRange(gomock.Any(), accountID).
		Return(time.Time{}, time.Time{}, false, nil)
	repo.EXPECT().
		DailyDeltas(gomock.Any(), accountID, gomock.Any(), gomock.Any()).
		Return(map[time.Time]decimal.Decimal{}, nil)
	repo.EXPECT().BeginBackfill(gomock.Any()).Return(btx, nil)

	var written []*balance.Snapshot

	btx.EXPECT().
		UpsertComputed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snaps []*balance.Snapshot) error {
			written = snaps
			return nil
		})
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := balance.NewService(repo)
	result, err := svc.Backfill(context.Background(), accountID, balance.Options{Days: 7})
	require.NoError(t, err)

	assert.Equal(t, 7, result.Created)
	assert.Equal(t, 1, result.SkippedAnchors)
	require.Len(t, written, 7)

	for _, snap := range written {
		assert.False(t, snap.IsAnchor)
		assert.True(t, snap.Balance.Equal(dec("1000.00")), "day %s", snap.Date)
		assert.True(t, snap.Date.Before(anchorDay))
	}
}

func TestService_Backfill_ReplaysDeltasBackward(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	anchorDay := day(2025, 1, 10)

	repo := balance.NewMockRepository(ctrl)
	btx := balance.NewMockBackfillTx(ctrl)

	repo.EXPECT().
		ListSnapshots(gomock.Any(), accountID).
		Return([]*balance.Snapshot{anchorSnap(accountID, anchorDay, "100.00")}, nil)
	repo.EXPECT().
		TransactionDateRange(gomock.Any(), accountID).
		Return(day(2025, 1, 7), day(2025, 1, 9), true, nil)
	repo.EXPECT().
		DailyDeltas(gomock.Any(), accountID, gomock.Any(), gomock.Any()).
		Return(map[time.Time]decimal.Decimal{
			day(2025, 1, 9): dec("30.00"),
			day(2025, 1, 7): dec("-20.00"),
		}, nil)
	repo.EXPECT().BeginBackfill(gomock.Any()).Return(btx, nil)

	var written []*balance.Snapshot

	btx.EXPECT().
		UpsertComputed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snaps []*balance.Snapshot) error {
			written = snaps
			return nil
		})
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := balance.NewService(repo)
	result, err := svc.Backfill(context.Background(), accountID, balance.Options{Days: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Created)

	// End-of-day balances walking back from the anchor: the 30.00 credit on
	// the 9th means the 8th ended 30.00 lower; the -20.00 on the 7th means
	// the 6th ended 20.00 higher than the 7th.
	assert.Equal(t, map[string]string{
		"2025-01-09": "100.00",
		"2025-01-08": "70.00",
		"2025-01-07": "70.00",
		"2025-01-06": "90.00",
		"2025-01-05": "90.00",
	}, balancesByDate(written))
}

func TestService_Backfill_ExtendsPastAnchor(t *testing.T) {
	// Transactions newer than the anchor extend the window forward.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	repo := balance.NewMockRepository(ctrl)
	btx := balance.NewMockBackfillTx(ctrl)

	repo.EXPECT().
		ListSnapshots(gomock.Any(), accountID).
		Return([]*balance.Snapshot{anchorSnap(accountID, day(2025, 1, 5), "50.00")}, nil)
	repo.EXPECT().
		TransactionDateRange(gomock.Any(), accountID).
		Return(day(2025, 1, 7), day(2025, 1, 7), true, nil)
	repo.EXPECT().
		DailyDeltas(gomock.Any(), accountID, gomock.Any(), gomock.Any()).
		Return(map[time.Time]decimal.Decimal{
			day(2025, 1, 7): dec("10.00"),
		}, nil)
	repo.EXPECT().BeginBackfill(gomock.Any()).Return(btx, nil)

	var written []*balance.Snapshot

	btx.EXPECT().
		UpsertComputed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snaps []*balance.Snapshot) error {
			written = snaps
			return nil
		})
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := balance.NewService(repo)
	result, err := svc.Backfill(context.Background(), accountID, balance.Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SkippedAnchors)
	assert.Equal(t, map[string]string{
		"2025-01-06": "50.00",
		"2025-01-07": "60.00",
	}, balancesByDate(written))
}

func TestService_Backfill_NoAnchorZeroBaseline(t *testing.T) {
	// Without an anchor the series replays forward from zero at the first
	// transaction date.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	repo := balance.NewMockRepository(ctrl)
	btx := balance.NewMockBackfillTx(ctrl)

	repo.EXPECT().ListSnapshots(gomock.Any(), accountID).Return(nil, nil)
	repo.EXPECT().
		TransactionDateRange(gomock.Any(), accountID).
		Return(day(2025, 3, 2), day(2025, 3, 4), true, nil)
	repo.EXPECT().
		DailyDeltas(gomock.Any(), accountID, gomock.Any(), gomock.Any()).
		Return(map[time.Time]decimal.Decimal{
			day(2025, 3, 2): dec("10.00"),
			day(2025, 3, 4): dec("-5.00"),
		}, nil)
	repo.EXPECT().BeginBackfill(gomock.Any()).Return(btx, nil)

	var written []*balance.Snapshot

	btx.EXPECT().
		UpsertComputed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snaps []*balance.Snapshot) error {
			written = snaps
			return nil
		})
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil).AnyTimes()

	svc := balance.NewService(repo)
	_, err := svc.Backfill(context.Background(), accountID, balance.Options{})
	require.NoError(t, err)

	// The zero baseline the day before the first transaction is part of the
	// window, so it gets a snapshot too.
	assert.Equal(t, map[string]string{
		"2025-03-01": "0.00",
		"2025-03-02": "10.00",
		"2025-03-03": "10.00",
		"2025-03-04": "5.00",
	}, balancesByDate(written))
}

func TestService_Backfill_RequireAnchor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	repo := balance.NewMockRepository(ctrl)
	repo.EXPECT().ListSnapshots(gomock.Any(), accountID).Return(nil, nil)
	repo.EXPECT().
		TransactionDateRange(gomock.Any(), accountID).
		Return(day(2025, 3, 2), day(2025, 3, 4), true, nil)

	svc := balance.NewService(repo)
	_, err := svc.Backfill(context.Background(), accountID, balance.Options{RequireAnchor: true})
	assert.ErrorIs(t, err, balance.ErrNoAnchor)
}

func TestService_Backfill_EmptyAccount(t *testing.T) {
	// No anchor and no transactions: nothing to do, not an error.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	repo := balance.NewMockRepository(ctrl)
	repo.EXPECT().ListSnapshots(gomock.Any(), accountID).Return(nil, nil)
	repo.EXPECT().
		TransactionDateRange(gomock.Any(), accountID).
		Return(time.Time{}, time.Time{}, false, nil)

	svc := balance.NewService(repo)
	result, err := svc.Backfill(context.Background(), accountID, balance.Options{})
	require.NoError(t, err)
	assert.Zero(t, result.Created)
	assert.Empty(t, result.Snapshots)
}

func TestService_Backfill_DryRun(t *testing.T) {
	// Dry run computes the series but never opens a write transaction.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	repo := balance.NewMockRepository(ctrl)
	repo.EXPECT().
		ListSnapshots(gomock.Any(), accountID).
		Return([]*balance.Snapshot{anchorSnap(accountID, day(2025, 6, 30), "1000.00")}, nil)
	repo.EXPECT().
		TransactionDateRange(gomock.Any(), accountID).
		Return(time.Time{}, time.Time{}, false, nil)
	repo.EXPECT().
		DailyDeltas(gomock.Any(), accountID, gomock.Any(), gomock.Any()).
		Return(map[time.Time]decimal.Decimal{}, nil)

	svc := balance.NewService(repo)
	result, err := svc.Backfill(context.Background(), accountID, balance.Options{Days: 3, DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, 3, result.Created)
	assert.Len(t, result.Snapshots, 3)
}

func TestService_AddAnchor(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(repo *balance.MockRepository, accountID uuid.UUID)
		wantErr   error
	}

	anchorDay := day(2025, 2, 1)

	tests := []testCase{
		{
			name: "NewAnchor",
			setupMock: func(repo *balance.MockRepository, accountID uuid.UUID) {
				repo.EXPECT().ListSnapshots(gomock.Any(), accountID).Return(nil, nil)
				repo.EXPECT().
					UpsertAnchor(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, snap *balance.Snapshot) error {
						assert.True(t, snap.IsAnchor)
						assert.Equal(t, anchorDay, snap.Date)
						return nil
					})
			},
		},
		{
			name: "ReplacesComputedSnapshot",
			setupMock: func(repo *balance.MockRepository, accountID uuid.UUID) {
				computed := &balance.Snapshot{
					AccountID: accountID,
					Date:      anchorDay,
					Balance:   dec("123.00"),
					IsAnchor:  false,
				}
				repo.EXPECT().ListSnapshots(gomock.Any(), accountID).Return([]*balance.Snapshot{computed}, nil)
				repo.EXPECT().UpsertAnchor(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "DuplicateRejected",
			setupMock: func(repo *balance.MockRepository, accountID uuid.UUID) {
				repo.EXPECT().
					ListSnapshots(gomock.Any(), accountID).
					Return([]*balance.Snapshot{anchorSnap(accountID, anchorDay, "500.00")}, nil)
			},
			wantErr: balance.ErrDuplicateAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountID := uuid.New()
			repo := balance.NewMockRepository(ctrl)
			tt.setupMock(repo, accountID)

			svc := balance.NewService(repo)
			snap, err := svc.AddAnchor(context.Background(), accountID, anchorDay, dec("500.00"))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, snap.IsAnchor)
		})
	}
}
