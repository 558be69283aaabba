//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"brainbox-retailplus/internal/handler/dto/request"
	resdto "brainbox-retailplus/internal/handler/dto/response"
	"brainbox-retailplus/internal/pkg/cookie"
	"brainbox-retailplus/tests/common/dbtest"
	"brainbox-retailplus/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginUser logs a staff member in and returns the access token. The token in the body
// must match the one set as a cookie, since tills use the header and the back office the cookie.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")

	var res resdto.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	require.NotEmpty(t, res.AccessToken)

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.Equal(t, res.AccessToken, access.Value)

	return res.AccessToken
}

// CreateAndLogin seeds an active staff member with TestPassword and logs them in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestStaff(t, db, email, role)
	return LoginUser(t, router, email, dbtest.TestPassword)
}
