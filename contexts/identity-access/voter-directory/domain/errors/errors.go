package errors

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateIdentity = errors.New("identity document, email or registration number already registered")
	ErrInvalidFormat     = errors.New("invalid voter field format")
	ErrInvalidAge        = errors.New("voter must be of legal age")
	ErrWeakCredential    = errors.New("credential does not satisfy complexity policy")
	ErrVoterNotFound     = errors.New("voter not found")

	ErrInvalidIdentityDocument   = fmt.Errorf("%w: identity document must be 13 digits", ErrInvalidFormat)
	ErrInvalidRegistrationNumber = fmt.Errorf("%w: registration number must be 5 to 10 digits", ErrInvalidFormat)
)
