//go:build unit

package patch_test

import (
	"testing"

	"brainbox-retailplus/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	t.Parallel()

	notes := "loyal customer"
	assert.Equal(t, "loyal customer", patch.Coalesce(&notes, ""))
	assert.Equal(t, "", patch.Coalesce[string](nil, ""))
	assert.Equal(t, 5, patch.Coalesce(nil, 5))
}
