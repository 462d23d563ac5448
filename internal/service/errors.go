package service

import "errors"

var (
	// ErrValidation marks a request rejected for bad input
	ErrValidation = errors.New("validation failed")
	// ErrInvalidCredentials is returned on a failed sign-in or a bad token
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is returned when the request clashes with current state
	ErrConflict = errors.New("conflict")
	// ErrForbidden is returned when the caller does not own the resource
	ErrForbidden = errors.New("forbidden")
)

// Error is a failure whose message is safe to show the client.
// errors.Is matches it against its Kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.Kind }

func invalid(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}
