package staff

import (
	"regexp"
	"strings"

	"brainbox-retailplus/internal/pkg/errs"
)

var (
	ErrInvalidEmail       = errs.NewMarked("invalid email format", errs.ErrValidation)
	ErrInvalidRole        = errs.NewMarked("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak    = errs.NewMarked("password must be at least 8 characters long", errs.ErrValidation)
	ErrInvalidDisplayName = errs.NewMarked("display name is required", errs.ErrValidation)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
