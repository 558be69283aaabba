//go:build unit

package repository_test

import (
	"context"
	"testing"

	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/infra/repository"
	repositorymock "brainbox-retailplus/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestStaffRepository_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	staffID := uuid.New()

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success", mockError: nil, wantError: false},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := repositorymock.NewMockStaffWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			mockQueries.EXPECT().UpdateStaffLastLogin(ctx, mockDB, staffID).Return(tt.mockError)

			repo := repository.NewStaffRepository(mockQueries)

			err := repo.UpdateLastLogin(ctx, mockDB, staffID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
