package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrCaseNotFound indicates that case was not found or is deleted
	ErrCaseNotFound = errors.New("case not found")

	// ErrVersionConflict indicates that stored case is newer than the expected version
	ErrVersionConflict = errors.New("case version conflict")
)
