package employees

import "errors"

var (
	// ErrNotFound indicates the employee does not exist.
	ErrNotFound = errors.New("employee not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEmail indicates another employee already uses the email.
	ErrDuplicateEmail = errors.New("email already in use")
)
