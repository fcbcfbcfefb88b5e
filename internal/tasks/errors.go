package tasks

import "errors"

var (
	// ErrNotFound indicates the task does not exist.
	ErrNotFound = errors.New("task not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmployeeNotFound indicates the assignee does not exist.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrInvalidTransition indicates the task cannot move to the requested state.
	ErrInvalidTransition = errors.New("invalid status transition")
)
