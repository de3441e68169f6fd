package leave

import (
	"context"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	// Create inserts a new leave request.
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// Update applies a review to a pending leave request. A request that is
	// no longer pending returns ErrLeaveRequestNotPending instead of being
	// overwritten.
	Update(ctx context.Context, request LeaveRequest) error

	// ListByEmployee retrieves all leave requests for an employee, newest
	// first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// ListApprovedByEmployeeAndYear retrieves approved requests whose start
	// date falls in the given calendar year.
	ListApprovedByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]LeaveRequest, error)

	// WithEmployeeLock runs fn while holding a store-level lock keyed by
	// employee, serializing conflict-check-then-insert against concurrent
	// requests for the same employee.
	WithEmployeeLock(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error
}
