package attendance

import "time"

// DateLayout is the calendar date format used for attendance days.
const DateLayout = "2006-01-02"

// Status describes an attendance day.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

// Record is one employee's attendance for one day.
type Record struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Date       string     `json:"date"`
	CheckIn    *time.Time `json:"checkIn,omitempty"`
	CheckOut   *time.Time `json:"checkOut,omitempty"`
	Status     Status     `json:"status"`
	Hours      float64    `json:"hours"`
}

// Filter narrows List results; empty fields match everything.
type Filter struct {
	EmployeeID string
	Date       string
}

func (f Filter) matches(r Record) bool {
	if f.EmployeeID != "" && r.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Date != "" && r.Date != f.Date {
		return false
	}
	return true
}
