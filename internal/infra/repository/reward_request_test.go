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

// =============================================================================
// Create Reward Request Tests
// =============================================================================

func TestRewardRequestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRewardRequestWriteQueries, *reward.Request, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: request persisted as pending",
			setupMock: func(mock *repositorymock.MockRewardRequestWriteQueries, req *reward.Request, tx sqlc.DBTX) {
				mock.EXPECT().CreateRewardRequest(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateRewardRequestParams) error {
						assert.Equal(t, req.ID(), arg.ID)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, "cash_discount", arg.RewardType)
						assert.True(t, arg.RewardAmount.Valid)
						return nil
					})
			},
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRewardRequestWriteQueries, req *reward.Request, tx sqlc.DBTX) {
				mock.EXPECT().CreateRewardRequest(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: unknown requester violates foreign key",
			setupMock: func(mock *repositorymock.MockRewardRequestWriteQueries, req *reward.Request, tx sqlc.DBTX) {
				fk := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
				mock.EXPECT().CreateRewardRequest(ctx, tx, gomock.Any()).Return(fk)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRewardRequestRepository(mockQueries, mockDB)

			req, err := builder.NewRewardRequestBuilder().AsCashDiscount("1000").BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, req, mockDB)

			actualError := repo.Create(ctx, mockDB, req)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// FindByIDForUpdate Tests
// =============================================================================

func TestRewardRequestRepository_FindByIDForUpdate(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()

	testCases := []struct {
		name          string
		row           sqlc.RewardRequests
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: row reconstructed into a pending request",
			row: sqlc.RewardRequests{
				ID:            requestID,
				CustomerID:    uuid.New(),
				CustomerName:  "Emeka Nwosu",
				RequestedBy:   uuid.New(),
				RewardType:    "free_items",
				FreeItems:     []byte(`[{"product_id":"6f1c3f7e-9b0a-4d7e-8c51-2f0d5b1f9a11","product_name":"Malt drink","quantity":2,"total_value":"700"}]`),
				Reason:        "birthday",
				Status:        "pending",
				CreatedAt:     pgtype.Timestamptz{Time: builder.RewardFixedNow, Valid: true},
				RewardAmount:  pgtype.Numeric{},
				PercentageOff: pgtype.Numeric{},
			},
		},
		{
			name:          "error: request not found",
			queryErr:      pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: corrupt free items payload",
			row: sqlc.RewardRequests{
				ID:         requestID,
				RewardType: "free_items",
				FreeItems:  []byte(`{not json`),
				Status:     "pending",
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRewardRequestRepository(mockQueries, mockDB)

			mockQueries.EXPECT().GetRewardRequestForUpdate(ctx, mockDB, requestID).Return(tc.row, tc.queryErr)

			req, actualError := repo.FindByIDForUpdate(ctx, mockDB, requestID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, requestID, req.ID())
			assert.Equal(t, reward.RequestPending, req.Status())
			require.Len(t, req.FreeItems(), 1)
			assert.Equal(t, 2, req.FreeItems()[0].Quantity)
			assert.Equal(t, "700", req.FreeItems()[0].TotalValue.String())
		})
	}
}

// =============================================================================
// Approve Tests
// =============================================================================

func TestRewardRequestRepository_Approve(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		affected      int64
		queryErr      error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{name: "success: pending row approved", affected: 1},
		{name: "error: row no longer pending", affected: 0, expectedError: true, expectKind: infra.KindConflict},
		{name: "error: database error occurs", queryErr: errors.New("timeout"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRewardRequestWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRewardRequestRepository(mockQueries, mockDB)

			req := builder.NewRewardRequestBuilder().MustBuildDomain()
			approver := uuid.New()
			_, err := req.Approve(reward.Approval{ApprovedBy: approver, Role: staff.RoleSupervisor}, "RW-20260314-ABCDEF", builder.RewardFixedNow)
			require.NoError(t, err)

			mockQueries.EXPECT().ApproveRewardRequest(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.ApproveRewardRequestParams) (int64, error) {
					assert.Equal(t, req.ID(), arg.ID)
					assert.Equal(t, approver, uuid.UUID(arg.ApprovedBy.Bytes))
					assert.True(t, arg.ApprovedAt.Valid)
					assert.False(t, arg.ApprovalNotes.Valid)
					return tc.affected, tc.queryErr
				})

			actualError := repo.Approve(ctx, mockDB, req)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
