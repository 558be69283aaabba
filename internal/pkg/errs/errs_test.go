//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"brainbox-retailplus/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestNewMarked(t *testing.T) {
	errSlipUnknown := errs.NewMarked("slip unknown", errs.ErrNotFound)

	assert.True(t, errs.Is(errSlipUnknown, errs.ErrNotFound))
	assert.True(t, errs.Is(errSlipUnknown, errSlipUnknown))
	assert.False(t, errs.Is(errSlipUnknown, errs.ErrStateConflict))
	assert.True(t, errs.Is(errs.Wrap(errSlipUnknown, "completing reward"), errs.ErrNotFound))
	assert.Equal(t, "slip unknown", errSlipUnknown.Error())
}

func TestMark(t *testing.T) {
	t.Run("nil error returns the marker", func(t *testing.T) {
		assert.Equal(t, errs.ErrValidation, errs.Mark(nil, errs.ErrValidation))
	})

	t.Run("wrapped error keeps both identities", func(t *testing.T) {
		base := errors.New("boom")
		marked := errs.Mark(errs.Wrap(base, "saving ledger"), errs.ErrDatabaseOperationFailed)

		assert.True(t, errs.Is(marked, base))
		assert.True(t, errs.Is(marked, errs.ErrDatabaseOperationFailed))
		assert.Contains(t, marked.Error(), "saving ledger")
	})
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, errs.ExtractStackLines(nil, 3))

	lines := errs.ExtractStackLines(errs.New("stacked"), 2)
	assert.LessOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "stacked")
}

func TestMessage(t *testing.T) {
	errGone := errs.NewMarked("slip already used", errs.ErrStateConflict)

	assert.Equal(t, "", errs.Message(nil))
	assert.Equal(t, "slip already used", errs.Message(errs.Wrap(errGone, "applying reward")))
	assert.Equal(t, "slip already used", errs.Message(errs.Mark(errGone, errs.ErrDatabaseOperationFailed)))
}

// Marks are metadata on the error, not links in its Unwrap chain, so only errs.Is sees them.
func TestMarksAreInvisibleToStandardIs(t *testing.T) {
	marked := errs.Mark(errors.New("invalid token"), errs.ErrValidation)

	assert.False(t, errors.Is(marked, errs.ErrValidation))
	assert.True(t, errs.Is(marked, errs.ErrValidation))
}
