package attendance

import "errors"

var (
	// ErrNotFound indicates no record exists for the employee and day.
	ErrNotFound = errors.New("attendance record not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyCheckedIn indicates the employee already checked in today.
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrNotCheckedIn indicates a check-out without a check-in.
	ErrNotCheckedIn = errors.New("not checked in today")

	// ErrAlreadyCheckedOut indicates the employee already checked out today.
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// ErrEmployeeNotFound indicates the employee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")
)
