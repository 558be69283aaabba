//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"brainbox-retailplus/internal/domain/staff"
	"brainbox-retailplus/internal/handler/dto/request"
	resdto "brainbox-retailplus/internal/handler/dto/response"
	"brainbox-retailplus/tests/common/authtest"
	"brainbox-retailplus/tests/common/dbtest"
	"brainbox-retailplus/tests/common/httptest"
	"brainbox-retailplus/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL   = "/api/auth/login"
	logoutURL  = "/api/auth/logout"
	refreshURL = "/api/auth/refresh"
	meURL      = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestStaff(s.T(), s.DB, "manager@retailplus.test", staff.RoleManager.String())
	dbtest.CreateTestStaff(s.T(), s.DB, "cashier@retailplus.test", staff.RoleCashier.String())
	inactive := dbtest.CreateTestStaff(s.T(), s.DB, "inactive@retailplus.test", staff.RoleManager.String())
	dbtest.DeactivateStaff(s.T(), s.DB, inactive)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "manager@retailplus.test", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "email is case-insensitive", email: "Manager@RetailPlus.test", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown staff", email: "nobody@retailplus.test", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "manager@retailplus.test", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive staff", email: "inactive@retailplus.test", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "manager@retailplus.test", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.Equal(t, staff.RoleManager.String(), loginRes.Staff.Role)
				require.NotNil(t, httptest.ExtractCookie(w, "refresh_token"))

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM staff_users WHERE lower(email) = lower($1)", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not stamped")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	s.Run("refresh cookie rotates the pair", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "manager@retailplus.test", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
		refresh := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refresh)

		rw := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, []*http.Cookie{refresh}, "")
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var res resdto.RefreshResponse
		require.NoError(t, json.Unmarshal(rw.Body.Bytes(), &res))
		require.NotEmpty(t, res.AccessToken)
	})

	s.Run("an access token is not accepted as a refresh token", func() {
		t := s.T()

		access := authtest.LoginUser(t, s.Router, "manager@retailplus.test", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: access}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("garbage and missing tokens are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: "invalid"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("valid token logs out", func() {
		token := authtest.LoginUser(s.T(), s.Router, "manager@retailplus.test", dbtest.TestPassword)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("invalid or missing token is 401", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	for _, role := range []staff.Role{staff.RoleBusinessOwner, staff.RoleCashier} {
		s.Run("returns the "+role.String()+" profile", func() {
			t := s.T()
			email := role.String() + "@retailplus.test"

			token := authtest.CreateAndLogin(t, s.DB, s.Router, email, role.String())
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			body := w.Body.String()
			require.Contains(t, body, email)
			require.Contains(t, body, role.String())
			require.NotContains(t, body, "password")
		})
	}

	s.Run("deactivated after login is 403", func() {
		t := s.T()
		id := dbtest.CreateTestStaff(t, s.DB, "leaver@retailplus.test", staff.RoleSupervisor.String())
		token := authtest.LoginUser(t, s.Router, "leaver@retailplus.test", dbtest.TestPassword)
		dbtest.DeactivateStaff(t, s.DB, id)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		staffID := dbtest.CreateTestStaff(t, s.DB, "expiry@retailplus.test", staff.RoleManager.String())
		expired := s.jwtHelper.CreateExpiredToken(t, staffID, staff.RoleManager)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("two sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "manager@retailplus.test", dbtest.TestPassword)
		token2 := authtest.LoginUser(t, s.Router, "manager@retailplus.test", dbtest.TestPassword)
		require.NotEqual(t, token1, token2)

		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1).Code)
		require.Equal(t, http.StatusOK, httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2).Code)
	})
}
