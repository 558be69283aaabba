//go:build unit || e2e

// Package errtest asserts error identity the way production code checks it.
// Sentinels built with errs.NewMarked or attached with errs.Mark are invisible
// to the standard errors.Is, so assertions go through errs.Is.
package errtest

import (
	"testing"

	"brainbox-retailplus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func AssertIs(t testing.TB, err, target error) bool {
	t.Helper()
	return assert.Truef(t, errs.Is(err, target), "error %q does not match %q", errString(err), errString(target))
}

func AssertNotIs(t testing.TB, err, target error) bool {
	t.Helper()
	return assert.Falsef(t, errs.Is(err, target), "error %q unexpectedly matches %q", errString(err), errString(target))
}

// RequireIs stops the test when err does not match target.
func RequireIs(t testing.TB, err, target error) {
	t.Helper()
	if !AssertIs(t, err, target) {
		t.FailNow()
	}
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
