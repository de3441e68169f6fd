package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID.
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a calendar
	// date, or nil when none exists. Used to guard against double clock-in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Update rewrites an existing attendance record.
	Update(ctx context.Context, attendance Attendance) error

	// ListByEmployeeAndRange retrieves all records for an employee whose date
	// falls in [from, to] inclusive, ordered by date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// WithEmployeeLock runs fn while holding a store-level lock keyed by
	// employee, so the find-then-write sequences in the service cannot race
	// against a concurrent request for the same employee.
	WithEmployeeLock(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error
}
