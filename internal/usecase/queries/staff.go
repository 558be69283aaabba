package queries

import (
	"context"

	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=staff.go -destination=../../../tests/mock/queries/staff.go -package=queriesmock

var (
	ErrStaffNotFound = errs.NewMarked("staff not found", errs.ErrNotFound)
	ErrStaffInactive = errs.NewMarked("staff inactive", errs.ErrAuthorization)
)

type StaffQueries interface {
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error)
}

type StaffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedStaffView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedStaffView, string, error)
}

type staffQueriesImpl struct {
	readStore StaffReadStore
}

func NewStaffQueries(readStore StaffReadStore) StaffQueries {
	return &staffQueriesImpl{
		readStore: readStore,
	}
}

func (q *staffQueriesImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*AuthorizedStaffView, error) {
	member, err := q.readStore.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}

	if !member.IsActive {
		return nil, ErrStaffInactive
	}

	return member, nil
}
