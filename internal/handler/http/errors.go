package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when a guarded route is hit
	// without an Authorization header.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the Authorization
	// header does not follow the "Bearer <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)
