package apperr

import "errors"

// Sentinel errors shared across features. Services wrap these with
// fmt.Errorf("...: %w", err) and controllers branch on errors.Is.
var (
	// ErrNotFound means the referenced file, user or account does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable means the object store could not resolve or
	// delete a payload; the enclosing operation is aborted.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnauthorized means the caller's account does not own the file.
	ErrUnauthorized = errors.New("unauthorized")
)
