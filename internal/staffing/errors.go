package staffing

import "errors"

var (
	// ErrTaskNotFound indicates the task to staff does not exist.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmployeeNotFound indicates the employee to score does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
