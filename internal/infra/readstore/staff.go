package readstore

import (
	"context"

	"brainbox-retailplus/internal/infra"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffReadQueries interface {
	FindStaffByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindStaffByIDRow, error)
	FindStaffByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.StaffUsers, error)
}

type StaffReadStore struct {
	queries StaffReadQueries
	db      sqlc.DBTX
}

func NewStaffReadStore(queries StaffReadQueries, db sqlc.DBTX) *StaffReadStore {
	return &StaffReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedStaffView, error) {
	row, err := r.queries.FindStaffByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find staff by ID", err)
	}

	return &queries.AuthorizedStaffView{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		Role:        row.Role,
		IsActive:    row.IsActive,
	}, nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedStaffView, string, error) {
	row, err := r.queries.FindStaffByEmail(ctx, r.db, email)
	if err != nil {
		return nil, "", infra.WrapRepoErr("failed to find staff by email", err)
	}

	return &queries.AuthorizedStaffView{
		ID:          row.ID,
		Email:       row.Email,
		DisplayName: row.DisplayName,
		Role:        row.Role,
		IsActive:    row.IsActive,
	}, row.PasswordHash, nil
}
