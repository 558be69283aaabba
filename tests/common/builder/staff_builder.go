//go:build unit || e2e

package builder

import (
	"time"

	"brainbox-retailplus/internal/domain/staff"
	sqlc "brainbox-retailplus/internal/infra/sqlc/generated"
	"brainbox-retailplus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type StaffBuilder struct {
	ID           uuid.UUID
	Email        string
	DisplayName  string
	PasswordHash string
	Role         string
	IsActive     bool
	Now          time.Time
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		ID:           uuid.New(),
		Email:        "manager@retailplus.test",
		DisplayName:  "Ada Manager",
		PasswordHash: "hashed_password",
		Role:         "manager",
		IsActive:     true,
		Now:          time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
}

func (s *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(s)
	return s
}

// Build methods
func (s *StaffBuilder) BuildDomain() (*staff.Staff, error) {
	email, err := staff.NewEmail(s.Email)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(s.Role)
	if err != nil {
		return nil, err
	}

	return staff.NewStaff(email, s.DisplayName, s.PasswordHash, role, s.Now)
}

func (s *StaffBuilder) BuildInfra() sqlc.StaffUsers {
	return sqlc.StaffUsers{
		ID:           s.ID,
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
		DisplayName:  s.DisplayName,
		Role:         s.Role,
		IsActive:     s.IsActive,
		LastLogin:    pgtype.Timestamptz{},
		CreatedAt:    pgtype.Timestamptz{Time: s.Now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: s.Now, Valid: true},
	}
}

func (s *StaffBuilder) BuildView() *queries.AuthorizedStaffView {
	return &queries.AuthorizedStaffView{
		ID:          s.ID,
		Email:       s.Email,
		DisplayName: s.DisplayName,
		Role:        s.Role,
		IsActive:    s.IsActive,
	}
}

// Fluent builder methods
func (s *StaffBuilder) WithEmail(email string) *StaffBuilder {
	s.Email = email
	return s
}

func (s *StaffBuilder) WithRole(role string) *StaffBuilder {
	s.Role = role
	return s
}

func (s *StaffBuilder) WithDisplayName(name string) *StaffBuilder {
	s.DisplayName = name
	return s
}

func (s *StaffBuilder) WithPasswordHash(hash string) *StaffBuilder {
	s.PasswordHash = hash
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}
