//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/usecase/queries"
	"brainbox-retailplus/tests/common/builder"
	"brainbox-retailplus/tests/common/errtest"
	queriesmock "brainbox-retailplus/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStaffQueries_GetCurrentStaff(t *testing.T) {
	ctx := context.Background()
	active := builder.NewStaffBuilder().BuildView()
	inactive := builder.NewStaffBuilder().AsInactive().BuildView()
	dbErr := errors.New("db down")

	testCases := []struct {
		name        string
		view        *queries.AuthorizedStaffView
		storeErr    error
		expectedErr error
	}{
		{name: "active staff", view: active},
		{name: "inactive staff", view: inactive, expectedErr: queries.ErrStaffInactive},
		{name: "missing staff", storeErr: infra.WrapRepoErr("missing", nil, infra.KindNotFound), expectedErr: queries.ErrStaffNotFound},
		{name: "store failure passes through", storeErr: dbErr, expectedErr: dbErr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockStaffReadStore(ctrl)
			id := active.ID
			if tc.view != nil {
				id = tc.view.ID
			}
			store.EXPECT().FindByID(ctx, id).Return(tc.view, tc.storeErr)

			got, err := queries.NewStaffQueries(store).GetCurrentStaff(ctx, id)

			if tc.expectedErr != nil {
				errtest.RequireIs(t, err, tc.expectedErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.view, got)
		})
	}
}
