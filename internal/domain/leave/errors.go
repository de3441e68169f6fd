package leave

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLeaveRequestNotFound   = errors.New("leave request not found")
	ErrLeaveRequestNotPending = errors.New("leave request is no longer pending")
)

// ConflictError reports an overlap with an existing pending or approved
// request for the same employee.
type ConflictError struct {
	StartDate time.Time
	EndDate   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("leave from %s to %s overlaps an existing request",
		e.StartDate.Format("2006-01-02"), e.EndDate.Format("2006-01-02"))
}

// StatusTransitionError reports an attempt to move a request out of a
// terminal status.
type StatusTransitionError struct {
	Current   LeaveRequestStatus
	Attempted LeaveRequestStatus
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("cannot change leave request status from %s to %s", e.Current, e.Attempted)
}
