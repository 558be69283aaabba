package commands

import (
	"context"
	"log/slog"

	"brainbox-retailplus/internal/domain/staff"
	reqdto "brainbox-retailplus/internal/handler/dto/request"
	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/pkg/jwt"
	"brainbox-retailplus/internal/pkg/password"
	"brainbox-retailplus/internal/usecase/queries"
	"brainbox-retailplus/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrStaffInactive        = errs.New("staff inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	StaffID   uuid.UUID
	Role      staff.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.StaffReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.StaffReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	member, err := a.validateStaff(ctx, credentials.Email().Value(), credentials.Password().Value())
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(member.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issue(member.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Staff().UpdateLastLogin(ctx, tx.DB(), member.ID); updateErr != nil {
			slog.Warn("failed to update last login", "staff_id", member.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// login already succeeded; only the last_login stamp is lost
		slog.Warn("transaction failed during login", "staff_id", member.ID, "error", err.Error())
	}

	return &LoginResult{
		StaffID:   member.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	member, err := a.readStore.FindByID(ctx, claims.StaffID)
	if err != nil || member == nil {
		return nil, ErrTokenValidation
	}

	if !member.IsActive {
		return nil, ErrStaffInactive
	}

	// the role is re-read so a demotion takes effect on the next refresh
	role, err := staff.NewRole(member.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issue(member.ID, role)
}

func (a *authCommandsImpl) issue(staffID uuid.UUID, role staff.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(staffID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(staffID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateStaff(ctx context.Context, email, plain string) (*queries.AuthorizedStaffView, error) {
	member, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil || member == nil {
		// same error as a password mismatch so emails cannot be enumerated
		return nil, ErrInvalidCredentials
	}

	if !member.IsActive {
		return nil, ErrStaffInactive
	}

	if err := password.ComparePassword(hashedPassword, plain); err != nil {
		return nil, ErrInvalidCredentials
	}

	return member, nil
}
