package auth

import (
	"brainbox-retailplus/internal/domain/staff"
	"brainbox-retailplus/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
)

type Credentials struct {
	email    staff.Email
	password staff.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := staff.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := staff.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() staff.Email {
	return c.email
}

func (c Credentials) Password() staff.Password {
	return c.password
}
