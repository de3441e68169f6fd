package attendance

import (
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockRequest struct {
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
	Notes      string `json:"notes"`

	// ParsedTimestamp is filled by Validate.
	ParsedTimestamp time.Time `json:"-"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Timestamp) {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp is required",
		})
	} else if ts, ok := validator.IsValidTimestamp(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be RFC 3339",
		})
	} else {
		r.ParsedTimestamp = ts.UTC()
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in"`
	ClockOut     *string `json:"clock_out"`
	BreakMinutes *int    `json:"break_minutes"`
	Notes        string  `json:"notes"`

	// Parsed fields filled by Validate.
	ParsedDate     time.Time  `json:"-"`
	ParsedClockIn  *time.Time `json:"-"`
	ParsedClockOut *time.Time `json:"-"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	} else {
		r.ParsedDate = date.UTC()
	}

	if r.ClockIn != nil {
		if ts, ok := validator.IsValidTimestamp(*r.ClockIn); ok {
			utc := ts.UTC()
			r.ParsedClockIn = &utc
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_in",
				Message: "clock_in must be RFC 3339",
			})
		}
	}

	if r.ClockOut != nil {
		if ts, ok := validator.IsValidTimestamp(*r.ClockOut); ok {
			utc := ts.UTC()
			r.ParsedClockOut = &utc
		} else {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be RFC 3339",
			})
		}
	}

	if r.ParsedClockOut != nil && r.ParsedClockIn == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out requires clock_in",
		})
	}

	if r.ParsedClockIn != nil && r.ParsedClockOut != nil && r.ParsedClockOut.Before(*r.ParsedClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must not be before clock_in",
		})
	}

	if r.BreakMinutes != nil && *r.BreakMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_minutes",
			Message: "break_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Date          string  `json:"date"`
	ClockIn       *string `json:"clock_in"`
	ClockOut      *string `json:"clock_out"`
	BreakMinutes  *int    `json:"break_minutes"`
	WorkedHours   string  `json:"worked_hours"`
	OvertimeHours string  `json:"overtime_hours"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type MonthlySummaryResponse struct {
	EmployeeID  string `json:"employee_id"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	WorkedHours string `json:"worked_hours"`
	RecordCount int    `json:"record_count"`
}
