package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn records the start of an employee's working day
	ClockIn(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// ClockOut records the end of the working day and computes the
	// worked/overtime hours split
	ClockOut(ctx context.Context, req ClockRequest) (AttendanceResponse, error)

	// CreateAttendance records a full day explicitly (back-office entry)
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// GetAttendance retrieves a single attendance record by ID
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// MonthlyWorkedHours sums regular worked hours for an employee over a
	// calendar month
	MonthlyWorkedHours(ctx context.Context, employeeID string, year int, month int) (MonthlySummaryResponse, error)
}
