//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"brainbox-retailplus/internal/domain/staff"
	reqdto "brainbox-retailplus/internal/handler/dto/request"
	"brainbox-retailplus/internal/infra"
	"brainbox-retailplus/internal/pkg/jwt"
	"brainbox-retailplus/internal/pkg/password"
	"brainbox-retailplus/internal/usecase/commands"
	"brainbox-retailplus/internal/usecase/shared"
	"brainbox-retailplus/tests/common/builder"
	"brainbox-retailplus/tests/common/errtest"
	queriesmock "brainbox-retailplus/tests/mock/queries"
	sharedmock "brainbox-retailplus/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const plainPassword = "correct-horse-battery"

type authFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	staffRepo *sharedmock.MockStaffRepository
	store     *queriesmock.MockStaffReadStore
	jwt       *jwt.Service
	sut       commands.AuthCommands
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		staffRepo: sharedmock.NewMockStaffRepository(ctrl),
		store:     queriesmock.NewMockStaffReadStore(ctrl),
		jwt:       jwt.NewService("test-secret", 15*time.Minute, time.Hour),
	}
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Staff().Return(f.staffRepo).AnyTimes()
	f.sut = commands.NewAuthCommands(f.uow, f.store, f.jwt)
	return f
}

func hashed(t *testing.T) string {
	t.Helper()
	h, err := password.HashPassword(plainPassword)
	require.NoError(t, err)
	return h
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues an access and refresh pair", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewStaffBuilder().WithRole(staff.RoleSupervisor.String()).BuildView()
		f.store.EXPECT().FindByEmail(ctx, view.Email).Return(view, hashed(t), nil)
		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, f.tx)
			})
		f.staffRepo.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).Return(nil)

		result, err := f.sut.Login(ctx, reqdto.LoginRequest{Email: view.Email, Password: plainPassword})

		require.NoError(t, err)
		assert.Equal(t, view.ID, result.StaffID)
		assert.Equal(t, staff.RoleSupervisor, result.Role)

		access, err := f.jwt.ValidateToken(result.TokenPair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeAccess, access.TokenType)
		refresh, err := f.jwt.ValidateToken(result.TokenPair.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, jwt.TokenTypeRefresh, refresh.TokenType)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewStaffBuilder().BuildView()
		f.store.EXPECT().FindByEmail(ctx, view.Email).Return(view, hashed(t), nil)
		f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, f.tx)
			})
		f.staffRepo.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), view.ID).
			Return(infra.WrapRepoErr("missing", nil, infra.KindNotFound))

		_, err := f.sut.Login(ctx, reqdto.LoginRequest{Email: view.Email, Password: plainPassword})

		require.NoError(t, err)
	})

	testCases := []struct {
		name        string
		setup       func(f *authFixture, view *builder.StaffBuilder) string
		expectedErr error
	}{
		{
			name: "unknown email",
			setup: func(f *authFixture, b *builder.StaffBuilder) string {
				v := b.BuildView()
				f.store.EXPECT().FindByEmail(gomock.Any(), v.Email).
					Return(nil, "", infra.WrapRepoErr("missing", nil, infra.KindNotFound))
				return v.Email
			},
			expectedErr: commands.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(f *authFixture, b *builder.StaffBuilder) string {
				v := b.BuildView()
				f.store.EXPECT().FindByEmail(gomock.Any(), v.Email).Return(v, "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinva", nil)
				return v.Email
			},
			expectedErr: commands.ErrInvalidCredentials,
		},
		{
			name: "inactive staff",
			setup: func(f *authFixture, b *builder.StaffBuilder) string {
				v := b.AsInactive().BuildView()
				f.store.EXPECT().FindByEmail(gomock.Any(), v.Email).Return(v, "hash", nil)
				return v.Email
			},
			expectedErr: commands.ErrStaffInactive,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t)
			email := tc.setup(f, builder.NewStaffBuilder())

			result, err := f.sut.Login(ctx, reqdto.LoginRequest{Email: email, Password: plainPassword})

			errtest.RequireIs(t, err, tc.expectedErr)
			assert.Nil(t, result)
		})
	}
}

func TestAuthCommands_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the pair with the current role", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewStaffBuilder().WithRole(staff.RoleCashier.String()).BuildView()
		refresh, err := f.jwt.GenerateRefreshToken(view.ID, staff.RoleManager)
		require.NoError(t, err)
		f.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		pair, err := f.sut.RefreshToken(ctx, refresh)

		require.NoError(t, err)
		claims, err := f.jwt.ValidateToken(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, staff.RoleCashier.String(), claims.Role)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewStaffBuilder().BuildView()
		access, err := f.jwt.GenerateAccessToken(view.ID, staff.RoleManager)
		require.NoError(t, err)

		_, err = f.sut.RefreshToken(ctx, access)

		errtest.RequireIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("garbage token", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.sut.RefreshToken(ctx, "garbage")

		errtest.RequireIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("deactivated staff", func(t *testing.T) {
		f := newAuthFixture(t)
		view := builder.NewStaffBuilder().AsInactive().BuildView()
		refresh, err := f.jwt.GenerateRefreshToken(view.ID, staff.RoleManager)
		require.NoError(t, err)
		f.store.EXPECT().FindByID(ctx, view.ID).Return(view, nil)

		_, err = f.sut.RefreshToken(ctx, refresh)

		errtest.RequireIs(t, err, commands.ErrStaffInactive)
	})
}
