//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/infra/readstore"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/pkg/pgconv"
	"brainbox-retailplus/tests/common/builder"
	readstoremock "brainbox-retailplus/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedTime = pgtype.Timestamptz{Time: builder.RewardFixedNow, Valid: true}

// =============================================================================
// Request views
// =============================================================================

func TestRewardReadStore_FindRequestByID(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	approver := uuid.New()

	testCases := []struct {
		name       string
		row        sqlc.GetRewardRequestViewRow
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: approved request with approver name",
			row: sqlc.GetRewardRequestViewRow{
				ID:              requestID,
				CustomerID:      uuid.New(),
				CustomerName:    "Chioma Okafor",
				RequestedBy:     uuid.New(),
				RequestedByName: "Tunde Cashier",
				RewardType:      "cash_discount",
				RewardAmount:    pgconv.DecimalToNumeric(decimal.RequireFromString("1500.50")),
				Reason:          "loyal customer",
				Status:          "approved",
				ApprovedBy:      pgconv.UUIDToPgtype(approver),
				ApprovedByName:  pgtype.Text{String: "Ada Manager", Valid: true},
				ApprovalNotes:   pgtype.Text{String: "ok", Valid: true},
				CreatedAt:       fixedTime,
				ApprovedAt:      fixedTime,
			},
		},
		{
			name:       "error: request not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database error occurs",
			queryErr:   errors.New("connection reset"),
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockRewardViewQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewRewardReadStore(mockQueries, mockDB)

			mockQueries.EXPECT().GetRewardRequestView(ctx, mockDB, requestID).Return(tc.row, tc.queryErr)

			view, err := store.FindRequestByID(ctx, requestID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, requestID, view.ID)
			assert.Equal(t, "Tunde Cashier", view.RequestedByName)
			assert.Equal(t, "1500.5", view.RewardAmount.String())
			assert.Nil(t, view.PercentageOff)
			assert.Nil(t, view.FreeItems)
			require.NotNil(t, view.ApprovedBy)
			assert.Equal(t, approver, *view.ApprovedBy)
			assert.Equal(t, "Ada Manager", *view.ApprovedByName)
			assert.Equal(t, builder.RewardFixedNow, *view.ApprovedAt)
		})
	}
}

func TestRewardReadStore_ListRequestsByStatus(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRewardViewQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewRewardReadStore(mockQueries, mockDB)

	productID := uuid.New()
	mockQueries.EXPECT().ListRewardRequestsByStatus(ctx, mockDB, sqlc.ListRewardRequestsByStatusParams{Status: "pending", Limit: 20}).
		Return([]sqlc.ListRewardRequestsByStatusRow{
			{
				ID:         uuid.New(),
				RewardType: "free_items",
				FreeItems:  []byte(`[{"product_id":"` + productID.String() + `","product_name":"Malt drink","quantity":3,"total_value":"1050"}]`),
				Status:     "pending",
				CreatedAt:  fixedTime,
			},
			{
				ID:            uuid.New(),
				RewardType:    "percentage_off",
				PercentageOff: pgconv.DecimalToNumeric(decimal.NewFromInt(10)),
				Status:        "pending",
				CreatedAt:     fixedTime,
			},
		}, nil)

	views, err := store.ListRequestsByStatus(ctx, "pending", 20)

	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Len(t, views[0].FreeItems, 1)
	assert.Equal(t, productID, views[0].FreeItems[0].ProductID)
	assert.Equal(t, 3, views[0].FreeItems[0].Quantity)
	assert.Equal(t, "10", views[1].PercentageOff.String())
	assert.Nil(t, views[1].ApprovedByName)
}

// =============================================================================
// Redemption views
// =============================================================================

func TestRewardReadStore_FindRedemptionBySlip(t *testing.T) {
	ctx := context.Background()
	slip := "RW-20260314-ABC234"

	t.Run("success: applied redemption", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRewardViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewRewardReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetRedemptionViewBySlip(ctx, mockDB, slip).Return(sqlc.GetRedemptionViewBySlipRow{
			ID:              uuid.New(),
			RewardType:      "percentage_off",
			RewardAmount:    pgconv.DecimalToNumeric(decimal.NewFromInt(10)),
			ApprovedByName:  "Ada Manager",
			Status:          "applied",
			RedemptionSlip:  slip,
			StockDeducted:   true,
			AppliedDiscount: pgconv.DecimalToNumeric(decimal.NewFromInt(200)),
			CreatedAt:       fixedTime,
			AppliedAt:       fixedTime,
		}, nil)

		view, err := store.FindRedemptionBySlip(ctx, slip)

		require.NoError(t, err)
		assert.Equal(t, slip, view.RedemptionSlip)
		assert.True(t, view.StockDeducted)
		assert.Equal(t, "200", view.AppliedDiscount.String())
		assert.Nil(t, view.CompletedAt)
		assert.Nil(t, view.AppliedToSale)
	})

	t.Run("error: unknown slip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRewardViewQueries(ctrl)
		mockDB := &mockDBTX{}
		store := readstore.NewRewardReadStore(mockQueries, mockDB)

		mockQueries.EXPECT().GetRedemptionViewBySlip(ctx, mockDB, slip).Return(sqlc.GetRedemptionViewBySlipRow{}, pgx.ErrNoRows)

		view, err := store.FindRedemptionBySlip(ctx, slip)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Nil(t, view)
	})
}

func TestRewardReadStore_ListRedemptionsByStatus(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockRewardViewQueries(ctrl)
	mockDB := &mockDBTX{}
	store := readstore.NewRewardReadStore(mockQueries, mockDB)

	mockQueries.EXPECT().ListRedemptionsByStatus(ctx, mockDB, sqlc.ListRedemptionsByStatusParams{Status: "approved", Limit: 50}).
		Return(nil, errors.New("statement timeout"))

	views, err := store.ListRedemptionsByStatus(ctx, "approved", 50)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Nil(t, views)
}

// =============================================================================
// Report inputs
// =============================================================================

func TestRewardReportStore(t *testing.T) {
	ctx := context.Background()
	period := reward.Period{
		From: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
	}

	t.Run("counts requests in the period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRewardReportQueries(ctrl)
		store := readstore.NewRewardReportStore(mockQueries)
		mockDB := &mockDBTX{}

		mockQueries.EXPECT().CountRewardRequestsBetween(ctx, mockDB, sqlc.CountRewardRequestsBetweenParams{
			FromTime: pgtype.Timestamptz{Time: period.From, Valid: true},
			ToTime:   pgtype.Timestamptz{Time: period.To, Valid: true},
		}).Return(sqlc.CountRewardRequestsBetweenRow{Total: 7, Pending: 2, Approved: 5}, nil)

		counts, err := store.CountRequestsBetween(ctx, mockDB, period)

		require.NoError(t, err)
		assert.Equal(t, reward.RequestCounts{Total: 7, Pending: 2, Approved: 5}, counts)
	})

	t.Run("reconstructs redemptions in the period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRewardReportQueries(ctrl)
		store := readstore.NewRewardReportStore(mockQueries)
		mockDB := &mockDBTX{}

		approver := uuid.New()
		mockQueries.EXPECT().ListRedemptionsCreatedBetween(ctx, mockDB, gomock.Any()).Return([]sqlc.RewardRedemptions{{
			ID:             uuid.New(),
			RewardType:     "cash_discount",
			RewardAmount:   pgconv.DecimalToNumeric(decimal.NewFromInt(500)),
			ApprovedBy:     approver,
			Status:         "completed",
			RedemptionSlip: "RW-20260302-ZZZ222",
			CreatedAt:      fixedTime,
		}}, nil)

		redemptions, err := store.ListRedemptionsBetween(ctx, mockDB, period)

		require.NoError(t, err)
		require.Len(t, redemptions, 1)
		assert.Equal(t, approver, redemptions[0].ApprovedBy())
		assert.Equal(t, reward.RedemptionCompleted, redemptions[0].Status())
		assert.True(t, decimal.NewFromInt(500).Equal(redemptions[0].Value()))
	})

	t.Run("skips the name lookup when there are no approvers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRewardReportQueries(ctrl)
		store := readstore.NewRewardReportStore(mockQueries)

		names, err := store.StaffDisplayNames(ctx, &mockDBTX{}, nil)

		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("maps approver names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockRewardReportQueries(ctrl)
		store := readstore.NewRewardReportStore(mockQueries)
		mockDB := &mockDBTX{}

		ada, bola := uuid.New(), uuid.New()
		mockQueries.EXPECT().GetStaffDisplayNames(ctx, mockDB, []uuid.UUID{ada, bola}).Return([]sqlc.GetStaffDisplayNamesRow{
			{ID: ada, DisplayName: "Ada Manager"},
			{ID: bola, DisplayName: "Bola Supervisor"},
		}, nil)

		names, err := store.StaffDisplayNames(ctx, mockDB, []uuid.UUID{ada, bola})

		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]string{ada: "Ada Manager", bola: "Bola Supervisor"}, names)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
