package leave

import (
	"time"
)

// LeaveRequest is one leave application. Start and end dates are inclusive
// calendar dates normalized to UTC midnight.
type LeaveRequest struct {
	ID              string
	EmployeeID      string
	LeaveType       LeaveType
	StartDate       time.Time
	EndDate         time.Time
	DaysRequested   int
	Status          LeaveRequestStatus
	Reason          string
	ManagerComments *string
	ReviewedBy      *string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO
	EmployeeName *string
}

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "vacation"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypePersonal LeaveType = "personal"
	LeaveTypeUnpaid   LeaveType = "unpaid"
)

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending   LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved  LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected  LeaveRequestStatus = "rejected"
	LeaveRequestStatusCancelled LeaveRequestStatus = "cancelled"
)

// IsTerminal reports whether no further status transition is permitted.
func (s LeaveRequestStatus) IsTerminal() bool {
	switch s {
	case LeaveRequestStatusApproved, LeaveRequestStatusRejected, LeaveRequestStatusCancelled:
		return true
	}
	return false
}

// Blocks reports whether a request in this status occupies its date range for
// conflict purposes. Rejected and cancelled requests free their interval.
func (s LeaveRequestStatus) Blocks() bool {
	return s == LeaveRequestStatusPending || s == LeaveRequestStatusApproved
}
