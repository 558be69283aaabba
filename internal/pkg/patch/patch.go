// Package patch holds helpers for optional request fields.
package patch

// Coalesce dereferences ptr, or returns fallback when the field was omitted.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr == nil {
		return fallback
	}
	return *ptr
}
