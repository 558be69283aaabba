//go:build unit

package password_test

import (
	"testing"

	"brainbox-retailplus/internal/pkg/errs"
	"brainbox-retailplus/internal/pkg/password"
	"brainbox-retailplus/tests/common/errtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hashed, err := password.HashPassword("till-open-0800")
	require.NoError(t, err)
	assert.NotEqual(t, "till-open-0800", hashed)

	assert.NoError(t, password.ComparePassword(hashed, "till-open-0800"))
	errtest.AssertIs(t, password.ComparePassword(hashed, "till-open-0900"), password.ErrMismatch)
}

func TestRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := password.HashPassword("")
	assert.True(t, errs.Is(err, errs.ErrValidation))

	errtest.AssertIs(t, password.ComparePassword("", "secret"), password.ErrInvalidPassword)
	errtest.AssertIs(t, password.ComparePassword("$2a$12$abc", ""), password.ErrInvalidPassword)
}

func TestMalformedHashIsNotAMismatch(t *testing.T) {
	t.Parallel()

	err := password.ComparePassword("not-a-bcrypt-hash", "secret")
	require.Error(t, err)
	errtest.AssertNotIs(t, err, password.ErrMismatch)
}
