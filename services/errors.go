package services

import "errors"

// Service errors map to HTTP statuses at the controllers: validation → 400,
// ErrForbidden → 403, ErrNotFound → 404, anything else → 500.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("permission denied")
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
