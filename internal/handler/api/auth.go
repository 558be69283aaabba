package api

import (
	"net/http"

	reqdto "brainbox-retailplus/internal/handler/dto/request"
	resdto "brainbox-retailplus/internal/handler/dto/response"
	"brainbox-retailplus/internal/handler/httperr"
	"brainbox-retailplus/internal/handler/middleware"
	"brainbox-retailplus/internal/pkg/config"
	"brainbox-retailplus/internal/pkg/cookie"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/pkg/jwt"
	"brainbox-retailplus/internal/usecase/commands"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errStaffContextMissing = errs.New("staff id missing from context")
	errRefreshTokenMissing = errs.New("refresh token missing")
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	staffQueries queries.StaffQueries
	jwtService   *jwt.Service
	cfg          config.Config
}

func NewAuthHandler(authCommands commands.AuthCommands, staffQueries queries.StaffQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		staffQueries: staffQueries,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

// @Summary Staff login
// @Description Login with email and password. Tokens are also set as httpOnly cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		h.abortAuth(c, err)
		return
	}

	member, err := h.staffQueries.GetCurrentStaff(c.Request.Context(), result.StaffID)
	if err != nil {
		h.abortStaff(c, err)
		return
	}

	staffRes, err := resdto.FromStaffView(member)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie, result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		Staff:       staffRes,
	})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh cookie or a refresh token in the body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh request"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errRefreshTokenMissing, "Refresh token required", nil)
		return
	}

	pair, err := h.authCommands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		h.abortAuth(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessDuration(), h.jwtService.RefreshDuration())

	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary Staff logout
// @Description Clear the token cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Get current staff
// @Description Get the authenticated staff member
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StaffResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errStaffContextMissing, httperr.MsgInternal, nil)
		return
	}

	member, err := h.staffQueries.GetCurrentStaff(c.Request.Context(), staffID)
	if err != nil {
		h.abortStaff(c, err)
		return
	}

	res, err := resdto.FromStaffView(member)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) abortAuth(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
	case errs.Is(err, commands.ErrStaffInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	case errs.Is(err, commands.ErrTokenValidation):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
	}
}

func (h *AuthHandler) abortStaff(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrStaffNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Staff not found", nil)
	case errs.Is(err, queries.ErrStaffInactive):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.MsgInternal, nil)
	}
}
