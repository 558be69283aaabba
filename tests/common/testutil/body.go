//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so tests can break single fields of an otherwise
// valid request body.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mutate := range muts {
		if mutate != nil {
			mutate(m)
		}
	}
	return m
}

// Field sets key to value, or removes the key when value is nil.
func Field(key string, value any) func(map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Nested applies mutations to the object at m[key][index], for list fields such as sale_items.
func Nested(key string, index int, muts ...func(map[string]any)) func(map[string]any) {
	return func(m map[string]any) {
		list, ok := m[key].([]any)
		if !ok || index >= len(list) {
			return
		}
		item, ok := list[index].(map[string]any)
		if !ok {
			return
		}
		for _, mutate := range muts {
			mutate(item)
		}
	}
}
