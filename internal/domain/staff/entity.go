package staff

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Staff is a POS operator. Staff accounts are provisioned out of band; the
// service only reads them for login and for stamping who requested or approved a reward.
type Staff struct {
	id           uuid.UUID
	email        Email
	displayName  string
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
}

func NewStaff(email Email, displayName, passwordHash string, role Role, now time.Time) (*Staff, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, ErrInvalidDisplayName
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	return &Staff{
		id:           uuid.New(),
		email:        email,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
	}, nil
}

func (s *Staff) ID() uuid.UUID         { return s.id }
func (s *Staff) Email() Email          { return s.email }
func (s *Staff) DisplayName() string   { return s.displayName }
func (s *Staff) PasswordHash() string  { return s.passwordHash }
func (s *Staff) Role() Role            { return s.role }
func (s *Staff) LastLogin() *time.Time { return s.lastLogin }
func (s *Staff) IsActive() bool        { return s.isActive }
func (s *Staff) CreatedAt() time.Time  { return s.createdAt }

func (s *Staff) Deactivate() {
	s.isActive = false
}
