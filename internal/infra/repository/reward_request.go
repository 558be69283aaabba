package repository

import (
	"context"

	"brainbox-retailplus/internal/domain/reward"
	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/infra/repository/converter"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reward_request.go -destination=../../../tests/mock/repository/reward_request.go -package=repositorymock

type RewardRequestWriteQueries interface {
	CreateRewardRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRewardRequestParams) error
	GetRewardRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.RewardRequests, error)
	ApproveRewardRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.ApproveRewardRequestParams) (int64, error)
}

type RewardRequestRepository struct {
	queries RewardRequestWriteQueries
	db      sqlc.DBTX
}

func NewRewardRequestRepository(queries RewardRequestWriteQueries, db sqlc.DBTX) *RewardRequestRepository {
	return &RewardRequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RewardRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *reward.Request) error {
	params, err := converter.RequestToCreateParams(req)
	if err != nil {
		return infra.WrapRepoErr("failed to encode reward request", err, infra.KindDBFailure)
	}

	if err := r.queries.CreateRewardRequest(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create reward request", err)
	}
	return nil
}

func (r *RewardRequestRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*reward.Request, error) {
	row, err := r.queries.GetRewardRequestForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reward request", err)
	}

	req, err := converter.RequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode reward request", err, infra.KindDBFailure)
	}
	return req, nil
}

// Approve persists the approval. The update is guarded on pending status, so a
// concurrent approval leaves zero rows affected.
func (r *RewardRequestRepository) Approve(ctx context.Context, tx sqlc.DBTX, req *reward.Request) error {
	params := sqlc.ApproveRewardRequestParams{
		ID:            req.ID(),
		ApprovedBy:    pgconv.UUIDPtrToPgtype(req.ApprovedBy()),
		ApprovalNotes: pgconv.StringPtrToPgtype(req.ApprovalNotes()),
		ApprovedAt:    pgconv.TimePtrToPgtype(req.ApprovedAt()),
	}

	affected, err := r.queries.ApproveRewardRequest(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to approve reward request", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("reward request is no longer pending", nil, infra.KindConflict)
	}
	return nil
}
