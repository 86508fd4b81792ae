package errors

import "errors"

var (
	ErrMissingToken      = errors.New("session token is required")
	ErrInvalidOrExpired  = errors.New("session token is invalid or expired")
	ErrInvalidSubject    = errors.New("session subject requires a registration number")
	ErrSigningKeyMissing = errors.New("session signing key is not configured")
)
