package server

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a protected route is hit
	// without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	// ErrInvalidAuthorizationHeader is returned when the header is not a
	// bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmailAlreadyExists is returned on registration with a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login with a wrong email or
	// password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrRecordNotFound is returned for update/delete of an unknown cloud
	// id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrStaleVersion is returned when a write carries a version lower than
	// the stored one.
	ErrStaleVersion = errors.New("stale record version")
)
