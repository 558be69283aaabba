package repository

import (
	"context"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/infra/repository/converter"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/pkg/pgconv"
)

//go:generate mockgen -source=reward_redemption.go -destination=../../../tests/mock/repository/reward_redemption.go -package=repositorymock

type RewardRedemptionWriteQueries interface {
	CreateRewardRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRewardRedemptionParams) error
	GetRedemptionBySlipForUpdate(ctx context.Context, db sqlc.DBTX, redemptionSlip string) (sqlc.RewardRedemptions, error)
	MarkRedemptionApplied(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkRedemptionAppliedParams) (int64, error)
	MarkRedemptionCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkRedemptionCompletedParams) (int64, error)
}

type RewardRedemptionRepository struct {
	queries RewardRedemptionWriteQueries
	db      sqlc.DBTX
}

func NewRewardRedemptionRepository(queries RewardRedemptionWriteQueries, db sqlc.DBTX) *RewardRedemptionRepository {
	return &RewardRedemptionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RewardRedemptionRepository) Create(ctx context.Context, tx sqlc.DBTX, red *reward.Redemption) error {
	params, err := converter.RedemptionToCreateParams(red)
	if err != nil {
		return infra.WrapRepoErr("failed to encode redemption", err, infra.KindDBFailure)
	}

	if err := r.queries.CreateRewardRedemption(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create redemption", err)
	}
	return nil
}

func (r *RewardRedemptionRepository) FindBySlipForUpdate(ctx context.Context, tx sqlc.DBTX, slip reward.Slip) (*reward.Redemption, error) {
	row, err := r.queries.GetRedemptionBySlipForUpdate(ctx, tx, slip.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load redemption", err)
	}

	red, err := converter.RedemptionFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode redemption", err, infra.KindDBFailure)
	}
	return red, nil
}

func (r *RewardRedemptionRepository) MarkApplied(ctx context.Context, tx sqlc.DBTX, red *reward.Redemption) error {
	params := sqlc.MarkRedemptionAppliedParams{
		ID:              red.ID(),
		AppliedDiscount: pgconv.DecimalPtrToNumeric(red.AppliedDiscount()),
		AppliedAt:       pgconv.TimePtrToPgtype(red.AppliedAt()),
	}

	affected, err := r.queries.MarkRedemptionApplied(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark redemption applied", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("redemption is no longer approved", nil, infra.KindConflict)
	}
	return nil
}

func (r *RewardRedemptionRepository) MarkCompleted(ctx context.Context, tx sqlc.DBTX, red *reward.Redemption) error {
	params := sqlc.MarkRedemptionCompletedParams{
		ID:            red.ID(),
		AppliedToSale: pgconv.StringPtrToPgtype(red.AppliedToSale()),
		CompletedAt:   pgconv.TimePtrToPgtype(red.CompletedAt()),
	}

	affected, err := r.queries.MarkRedemptionCompleted(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to mark redemption completed", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("redemption is no longer applied", nil, infra.KindConflict)
	}
	return nil
}
