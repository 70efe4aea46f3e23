package service

import "errors"

// Error kinds surfaced to the adapter. Handlers match them with
// errors.Is and translate to status codes; storage failures coming out
// of the gateway pass through unmodified.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrConflict             = errors.New("username already exists")
	ErrAuthenticationFailed = errors.New("invalid username or password")
	ErrNotFound             = errors.New("not found")
)
