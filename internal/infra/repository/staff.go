package repository

import (
	"context"

	"brainbox-retailplus/internal/infra"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=staff.go -destination=../../../tests/mock/repository/staff.go -package=repositorymock

type StaffWriteQueries interface {
	UpdateStaffLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type StaffRepository struct {
	queries StaffWriteQueries
}

func NewStaffRepository(queries StaffWriteQueries) *StaffRepository {
	return &StaffRepository{
		queries: queries,
	}
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, staffID uuid.UUID) error {
	err := r.queries.UpdateStaffLastLogin(ctx, tx, staffID)
	if err != nil {
		return infra.WrapRepoErr("failed to update staff last login", err)
	}
	return nil
}
