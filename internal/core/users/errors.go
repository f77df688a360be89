package users

import "errors"

var (
	// ErrUserNotFound indicates the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingExternalID indicates an upsert without a provider subject id
	ErrMissingExternalID = errors.New("external id is required")
)
