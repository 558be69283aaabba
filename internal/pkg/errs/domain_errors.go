package errs

import "errors"

// Category markers. Domain and usecase errors are marked with one of these so the
// handler layer can map them to a status without knowing every concrete error.
var (
	ErrAuthorization = errors.New("authorization error")
	ErrNotFound      = errors.New("not found")
	ErrStateConflict = errors.New("state conflict")
	ErrValidation    = errors.New("validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
