package attendance

import "context"

// Repo defines persistence operations for attendance.
type Repo interface {
	// Create returns ErrAlreadyCheckedIn when the employee already has a record for the day.
	Create(ctx context.Context, rec Record) error
	Get(ctx context.Context, employeeID, date string) (Record, error)
	Update(ctx context.Context, rec Record) error
	List(ctx context.Context, filter Filter) ([]Record, error)
}
