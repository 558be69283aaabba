//go:build unit

package readstore

import (
	"context"
	"testing"

	"brainbox-retailplus/internal/infra"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockStaffReadQueries struct {
	mock.Mock
}

func (m *MockStaffReadQueries) FindStaffByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.StaffUsers, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.StaffUsers), args.Error(1)
}

func (m *MockStaffReadQueries) FindStaffByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindStaffByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindStaffByIDRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	manager := builder.NewStaffBuilder().BuildInfra()
	inactive := builder.NewStaffBuilder().WithEmail("former@retailplus.test").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.StaffUsers
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active staff",
			email:      manager.Email,
			mockReturn: manager,
			wantHash:   manager.PasswordHash,
		},
		{
			name:       "success - inactive staff (for validation)",
			email:      inactive.Email,
			mockReturn: inactive,
			wantHash:   inactive.PasswordHash,
		},
		{
			name:       "staff not found",
			email:      "nobody@retailplus.test",
			mockReturn: sqlc.StaffUsers{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			email:      manager.Email,
			mockReturn: sqlc.StaffUsers{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockStaffReadQueries)
			mockQueries.On("FindStaffByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewStaffReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.DisplayName, view.DisplayName)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	cashier := builder.NewStaffBuilder().WithRole("cashier").BuildInfra()
	row := sqlc.FindStaffByIDRow{
		ID:          cashier.ID,
		Email:       cashier.Email,
		DisplayName: cashier.DisplayName,
		Role:        cashier.Role,
		IsActive:    cashier.IsActive,
	}

	tests := []struct {
		name       string
		staffID    uuid.UUID
		mockReturn sqlc.FindStaffByIDRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success", staffID: row.ID, mockReturn: row},
		{name: "staff not found", staffID: uuid.New(), mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", staffID: row.ID, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockStaffReadQueries)
			mockQueries.On("FindStaffByID", mock.Anything, mock.Anything, tt.staffID).Return(tt.mockReturn, tt.mockError)

			readStore := NewStaffReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.staffID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.staffID, view.ID)
				assert.Equal(t, "cashier", view.Role)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
