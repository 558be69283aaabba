package readstore

import (
	"context"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/infra/repository/converter"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/pkg/pgconv"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reward.go -destination=../../../tests/mock/readstore/reward.go -package=readstoremock

type RewardViewQueries interface {
	GetRewardRequestView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetRewardRequestViewRow, error)
	ListRewardRequestsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRewardRequestsByStatusParams) ([]sqlc.ListRewardRequestsByStatusRow, error)
	GetRedemptionViewBySlip(ctx context.Context, db sqlc.DBTX, redemptionSlip string) (sqlc.GetRedemptionViewBySlipRow, error)
	ListRedemptionsByStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRedemptionsByStatusParams) ([]sqlc.ListRedemptionsByStatusRow, error)
}

type RewardReportQueries interface {
	CountRewardRequestsBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.CountRewardRequestsBetweenParams) (sqlc.CountRewardRequestsBetweenRow, error)
	ListRedemptionsCreatedBetween(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRedemptionsCreatedBetweenParams) ([]sqlc.RewardRedemptions, error)
	GetStaffDisplayNames(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.GetStaffDisplayNamesRow, error)
}

type RewardReadStore struct {
	queries RewardViewQueries
	db      sqlc.DBTX
}

func NewRewardReadStore(queries RewardViewQueries, db sqlc.DBTX) *RewardReadStore {
	return &RewardReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RewardReadStore) FindRequestByID(ctx context.Context, id uuid.UUID) (*queries.RewardRequestView, error) {
	row, err := r.queries.GetRewardRequestView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reward request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reward request view", err)
	}

	view, err := toRequestView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reward request view", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *RewardReadStore) ListRequestsByStatus(ctx context.Context, status string, limit int32) ([]*queries.RewardRequestView, error) {
	rows, err := r.queries.ListRewardRequestsByStatus(ctx, r.db, sqlc.ListRewardRequestsByStatusParams{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reward requests", err)
	}

	result := make([]*queries.RewardRequestView, 0, len(rows))
	for _, row := range rows {
		view, err := toRequestView(sqlc.GetRewardRequestViewRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode reward request view", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

func (r *RewardReadStore) FindRedemptionBySlip(ctx context.Context, slip string) (*queries.RedemptionView, error) {
	row, err := r.queries.GetRedemptionViewBySlip(ctx, r.db, slip)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get redemption view", err)
	}

	view, err := toRedemptionView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode redemption view", err, infra.KindDBFailure)
	}
	return view, nil
}

func (r *RewardReadStore) ListRedemptionsByStatus(ctx context.Context, status string, limit int32) ([]*queries.RedemptionView, error) {
	rows, err := r.queries.ListRedemptionsByStatus(ctx, r.db, sqlc.ListRedemptionsByStatusParams{
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions", err)
	}

	result := make([]*queries.RedemptionView, 0, len(rows))
	for _, row := range rows {
		view, err := toRedemptionView(sqlc.GetRedemptionViewBySlipRow(row))
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode redemption view", err, infra.KindDBFailure)
		}
		result = append(result, view)
	}
	return result, nil
}

// RewardReportStore reads report inputs on whatever connection the caller passes,
// typically a read-only transaction.
type RewardReportStore struct {
	queries RewardReportQueries
}

func NewRewardReportStore(queries RewardReportQueries) *RewardReportStore {
	return &RewardReportStore{queries: queries}
}

func (r *RewardReportStore) CountRequestsBetween(ctx context.Context, db sqlc.DBTX, period reward.Period) (reward.RequestCounts, error) {
	row, err := r.queries.CountRewardRequestsBetween(ctx, db, sqlc.CountRewardRequestsBetweenParams{
		FromTime: pgconv.TimeToPgtype(period.From),
		ToTime:   pgconv.TimeToPgtype(period.To),
	})
	if err != nil {
		return reward.RequestCounts{}, infra.WrapRepoErr("failed to count reward requests", err)
	}

	return reward.RequestCounts{
		Total:    int(row.Total),
		Pending:  int(row.Pending),
		Approved: int(row.Approved),
	}, nil
}

func (r *RewardReportStore) ListRedemptionsBetween(ctx context.Context, db sqlc.DBTX, period reward.Period) ([]*reward.Redemption, error) {
	rows, err := r.queries.ListRedemptionsCreatedBetween(ctx, db, sqlc.ListRedemptionsCreatedBetweenParams{
		FromTime: pgconv.TimeToPgtype(period.From),
		ToTime:   pgconv.TimeToPgtype(period.To),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list redemptions for report", err)
	}

	redemptions, err := converter.RedemptionsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode redemptions for report", err, infra.KindDBFailure)
	}
	return redemptions, nil
}

func (r *RewardReportStore) StaffDisplayNames(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := r.queries.GetStaffDisplayNames(ctx, db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get staff display names", err)
	}
	for _, row := range rows {
		names[row.ID] = row.DisplayName
	}
	return names, nil
}

func toRequestView(row sqlc.GetRewardRequestViewRow) (*queries.RewardRequestView, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.RewardAmount)
	if err != nil {
		return nil, errs.Wrap(err, "reward amount")
	}
	percentageOff, err := pgconv.DecimalPtrFromNumeric(row.PercentageOff)
	if err != nil {
		return nil, errs.Wrap(err, "percentage off")
	}
	freeItems, err := pgconv.SliceFromJSON[reward.FreeItem](row.FreeItems)
	if err != nil {
		return nil, errs.Wrap(err, "free items")
	}

	return &queries.RewardRequestView{
		ID:              row.ID,
		CustomerID:      row.CustomerID,
		CustomerName:    row.CustomerName,
		RequestedBy:     row.RequestedBy,
		RequestedByName: row.RequestedByName,
		RewardType:      row.RewardType,
		RewardAmount:    amount,
		FreeItems:       freeItems,
		PercentageOff:   percentageOff,
		Reason:          row.Reason,
		Status:          row.Status,
		ApprovedBy:      pgconv.UUIDPtrFromPgtype(row.ApprovedBy),
		ApprovedByName:  pgconv.StringPtrFromPgtype(row.ApprovedByName),
		ApprovalNotes:   pgconv.StringPtrFromPgtype(row.ApprovalNotes),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		ApprovedAt:      pgconv.TimePtrFromPgtype(row.ApprovedAt),
	}, nil
}

func toRedemptionView(row sqlc.GetRedemptionViewBySlipRow) (*queries.RedemptionView, error) {
	amount, err := pgconv.DecimalPtrFromNumeric(row.RewardAmount)
	if err != nil {
		return nil, errs.Wrap(err, "reward amount")
	}
	applied, err := pgconv.DecimalPtrFromNumeric(row.AppliedDiscount)
	if err != nil {
		return nil, errs.Wrap(err, "applied discount")
	}
	freeItems, err := pgconv.SliceFromJSON[reward.FreeItem](row.FreeItems)
	if err != nil {
		return nil, errs.Wrap(err, "free items")
	}

	return &queries.RedemptionView{
		ID:              row.ID,
		RequestID:       row.RequestID,
		CustomerID:      row.CustomerID,
		CustomerName:    row.CustomerName,
		RewardType:      row.RewardType,
		RewardAmount:    amount,
		FreeItems:       freeItems,
		RequestedBy:     row.RequestedBy,
		ApprovedBy:      row.ApprovedBy,
		ApprovedByName:  row.ApprovedByName,
		Status:          row.Status,
		RedemptionSlip:  row.RedemptionSlip,
		StockDeducted:   row.StockDeducted,
		AppliedDiscount: applied,
		AppliedToSale:   pgconv.StringPtrFromPgtype(row.AppliedToSale),
		Notes:           pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		AppliedAt:       pgconv.TimePtrFromPgtype(row.AppliedAt),
		CompletedAt:     pgconv.TimePtrFromPgtype(row.CompletedAt),
	}, nil
}
