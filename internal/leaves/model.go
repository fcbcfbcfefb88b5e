package leaves

import "time"

// DateLayout is the calendar date format used for leave ranges.
const DateLayout = "2006-01-02"

// Type classifies a leave request.
type Type string

const (
	TypeSick      Type = "sick"
	TypeVacation  Type = "vacation"
	TypePersonal  Type = "personal"
	TypeEmergency Type = "emergency"
)

// Valid reports whether t is a known leave type.
func (t Type) Valid() bool {
	switch t {
	case TypeSick, TypeVacation, TypePersonal, TypeEmergency:
		return true
	default:
		return false
	}
}

// Status is the review state of a leave request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee's application for time off.
type Request struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employeeId"`
	Type       Type       `json:"type"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Days       int        `json:"days"`
	Reason     string     `json:"reason,omitempty"`
	Status     Status     `json:"status"`
	AppliedAt  time.Time  `json:"appliedAt"`
	ReviewedBy string     `json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `json:"reviewedAt,omitempty"`
}
