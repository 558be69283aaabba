package password

import (
	"brainbox-retailplus/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPassword = errs.NewMarked("invalid password", errs.ErrValidation)
	ErrMismatch        = errs.New("password does not match")
)

// Cost is the bcrypt work factor for new staff passwords.
const Cost = 12

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// ComparePassword returns ErrMismatch for a wrong password and a wrapped error for a
// malformed hash.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return errs.Wrap(err, "compare password")
	}
}
