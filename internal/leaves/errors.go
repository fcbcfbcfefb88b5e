package leaves

import "errors"

var (
	// ErrNotFound indicates the leave request does not exist.
	ErrNotFound = errors.New("leave request not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition indicates the request was already reviewed.
	ErrInvalidTransition = errors.New("leave request is not pending")

	// ErrEmployeeNotFound indicates the applicant does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
)
