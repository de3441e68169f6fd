package leave

import (
	"context"
	"time"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// CreateLeaveRequest validates dates, checks for interval conflicts and
	// files a pending request
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// HasConflict reports whether the interval overlaps any pending or
	// approved request for the employee, optionally excluding one request ID
	HasConflict(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeRequestID *string) (bool, error)

	// UpdateStatus moves a pending request to approved, rejected or
	// cancelled; terminal requests cannot transition again
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)

	// GetLeaveRequest retrieves a single request by ID
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	// ListLeaveRequests retrieves all requests for an employee
	ListLeaveRequests(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)

	// RemainingLeaveDays computes allowance minus approved days for the year
	RemainingLeaveDays(ctx context.Context, employeeID string, year int) (LeaveBalanceResponse, error)
}
