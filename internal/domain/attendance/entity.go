package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one worked day for one employee. At most one record exists
// per (employee, date); the date carries no time-of-day component and is
// always UTC midnight.
type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	ClockIn       *time.Time
	ClockOut      *time.Time
	BreakMinutes  *int
	WorkedHours   decimal.Decimal
	OvertimeHours decimal.Decimal
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}
