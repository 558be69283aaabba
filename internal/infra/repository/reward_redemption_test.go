//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/domain/staff"
	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/infra/repository"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/tests/common/builder"
	repositorymock "brainbox-retailplus/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func approvedRedemption(t *testing.T) *reward.Redemption {
	t.Helper()
	req := builder.NewRewardRequestBuilder().AsPercentageOff("10").MustBuildDomain()
	red, err := req.Approve(reward.Approval{ApprovedBy: uuid.New(), Role: staff.RoleManager}, "RW-20260314-QWERTY", builder.RewardFixedNow)
	require.NoError(t, err)
	return red
}

func TestRewardRedemptionRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: redemption inserted"},
		{
			name:          "error: slip or request already redeemed",
			queryErr:      &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{name: "error: database error occurs", queryErr: errors.New("broken pipe"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardRedemptionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRewardRedemptionRepository(mockQueries, mockDB)
			red := approvedRedemption(t)

			mockQueries.EXPECT().CreateRewardRedemption(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRewardRedemptionParams) error {
					assert.Equal(t, red.ID(), arg.ID)
					assert.Equal(t, "RW-20260314-QWERTY", arg.RedemptionSlip)
					assert.Equal(t, "approved", arg.Status)
					return tc.queryErr
				})

			actualError := repo.Create(ctx, mockDB, red)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestRewardRedemptionRepository_FindBySlipForUpdate(t *testing.T) {
	ctx := context.Background()
	slip := reward.Slip("RW-20260314-QWERTY")

	t.Run("success: row reconstructed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRewardRedemptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRewardRedemptionRepository(mockQueries, mockDB)

		row := sqlc.RewardRedemptions{
			ID:             uuid.New(),
			RequestID:      uuid.New(),
			CustomerID:     uuid.New(),
			CustomerName:   "Chioma Okafor",
			RewardType:     "cash_discount",
			RewardAmount:   pgtype.Numeric{Int: builder.Dec("1500").Coefficient(), Exp: 0, Valid: true},
			Status:         "approved",
			RedemptionSlip: slip.String(),
			CreatedAt:      pgtype.Timestamptz{Time: builder.RewardFixedNow, Valid: true},
		}
		mockQueries.EXPECT().GetRedemptionBySlipForUpdate(ctx, mockDB, slip.String()).Return(row, nil)

		red, err := repo.FindBySlipForUpdate(ctx, mockDB, slip)

		require.NoError(t, err)
		assert.Equal(t, row.ID, red.ID())
		assert.Equal(t, reward.RedemptionApproved, red.Status())
		assert.Equal(t, "1500", red.RewardAmount().String())
		assert.Nil(t, red.AppliedDiscount())
	})

	t.Run("error: unknown slip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockRewardRedemptionWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewRewardRedemptionRepository(mockQueries, mockDB)

		mockQueries.EXPECT().GetRedemptionBySlipForUpdate(ctx, mockDB, slip.String()).Return(sqlc.RewardRedemptions{}, pgx.ErrNoRows)

		red, err := repo.FindBySlipForUpdate(ctx, mockDB, slip)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, red)
	})
}

func TestRewardRedemptionRepository_MarkApplied(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: applied", affected: 1},
		{name: "error: already applied elsewhere", affected: 0, expectedError: true, expectKind: infra.KindConflict},
		{name: "error: database error occurs", queryErr: errors.New("timeout"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardRedemptionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRewardRedemptionRepository(mockQueries, mockDB)

			red := approvedRedemption(t)
			sale := builder.NewSaleBuilder().WithItem(uuid.New(), "Rice 5kg", "2000", 1, 10).BuildDomain()
			_, err := red.Apply(sale, builder.RewardFixedNow)
			require.NoError(t, err)

			mockQueries.EXPECT().MarkRedemptionApplied(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkRedemptionAppliedParams) (int64, error) {
					assert.Equal(t, red.ID(), arg.ID)
					assert.True(t, arg.AppliedDiscount.Valid)
					assert.True(t, arg.AppliedAt.Valid)
					return tc.affected, tc.queryErr
				})

			actualError := repo.MarkApplied(ctx, mockDB, red)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestRewardRedemptionRepository_MarkCompleted(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		expectedError bool
	}{
		{name: "success: completed", affected: 1},
		{name: "error: redemption already completed", affected: 0, expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardRedemptionWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRewardRedemptionRepository(mockQueries, mockDB)

			red := approvedRedemption(t)
			_, err := red.Apply(builder.NewSaleBuilder().WithItem(uuid.New(), "Rice 5kg", "2000", 1, 10).BuildDomain(), builder.RewardFixedNow)
			require.NoError(t, err)
			_, err = red.Complete("SALE-0042", builder.RewardFixedNow)
			require.NoError(t, err)

			mockQueries.EXPECT().MarkRedemptionCompleted(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.MarkRedemptionCompletedParams) (int64, error) {
					assert.Equal(t, "SALE-0042", arg.AppliedToSale.String)
					assert.True(t, arg.CompletedAt.Valid)
					return tc.affected, nil
				})

			actualError := repo.MarkCompleted(ctx, mockDB, red)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, infra.KindConflict))
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
