package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/config"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/attendance"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy config.PolicyConfig
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy config.PolicyConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		policy:               policy,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

// ClockIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.requireEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ts := req.ParsedTimestamp
	date := dateOf(ts)

	var recordID string
	err := a.AttendanceRepository.WithEmployeeLock(ctx, req.EmployeeID, func(ctx context.Context) error {
		record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to get attendance by employee and date: %w", err)
		}

		if record == nil {
			created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
				ID:         uuid.NewString(),
				EmployeeID: req.EmployeeID,
				Date:       date,
				ClockIn:    &ts,
				Notes:      req.Notes,
			})
			if err != nil {
				return fmt.Errorf("failed to create attendance record: %w", err)
			}
			recordID = created.ID
			return nil
		}

		if record.ClockIn != nil {
			return attendance.ErrAlreadyClockedIn
		}

		record.ClockIn = &ts
		record.Notes = appendNotes(record.Notes, req.Notes)
		if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		recordID = record.ID
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.reload(ctx, recordID)
}

// ClockOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.requireEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	ts := req.ParsedTimestamp
	date := dateOf(ts)

	var recordID string
	err := a.AttendanceRepository.WithEmployeeLock(ctx, req.EmployeeID, func(ctx context.Context) error {
		record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to get attendance by employee and date: %w", err)
		}

		if record == nil || record.ClockIn == nil {
			return attendance.ErrNotClockedIn
		}
		if record.ClockOut != nil {
			return attendance.ErrAlreadyClockedOut
		}
		if ts.Before(*record.ClockIn) {
			return validator.ValidationErrors{{
				Field:   "timestamp",
				Message: "clock-out cannot be before clock-in",
			}}
		}

		record.ClockOut = &ts
		record.Notes = appendNotes(record.Notes, req.Notes)
		record.WorkedHours, record.OvertimeHours = splitHours(*record.ClockIn, *record.ClockOut, record.BreakMinutes, a.policy.StandardDailyHours)

		if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
			return fmt.Errorf("failed to update attendance record: %w", err)
		}
		recordID = record.ID
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.reload(ctx, recordID)
}

// CreateAttendance implements attendance.AttendanceService.
// This is the back-office entry path for recording a day in one call.
func (a *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.requireEmployee(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date := dateOf(req.ParsedDate)

	var recordID string
	err := a.AttendanceRepository.WithEmployeeLock(ctx, req.EmployeeID, func(ctx context.Context) error {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			return fmt.Errorf("failed to get attendance by employee and date: %w", err)
		}
		if existing != nil {
			return attendance.ErrAttendanceExists
		}

		record := attendance.Attendance{
			ID:           uuid.NewString(),
			EmployeeID:   req.EmployeeID,
			Date:         date,
			ClockIn:      req.ParsedClockIn,
			ClockOut:     req.ParsedClockOut,
			BreakMinutes: req.BreakMinutes,
			Notes:        req.Notes,
		}
		if record.ClockIn != nil && record.ClockOut != nil {
			record.WorkedHours, record.OvertimeHours = splitHours(*record.ClockIn, *record.ClockOut, record.BreakMinutes, a.policy.StandardDailyHours)
		}

		created, err := a.AttendanceRepository.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
		recordID = created.ID
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return a.reload(ctx, recordID)
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return mapAttendanceToResponse(record), nil
}

// MonthlyWorkedHours implements attendance.AttendanceService.
// The sum covers regular worked hours only; overtime is reported per record
// and excluded from the monthly figure.
func (a *AttendanceServiceImpl) MonthlyWorkedHours(ctx context.Context, employeeID string, year int, month int) (attendance.MonthlySummaryResponse, error) {
	if month < 1 || month > 12 {
		return attendance.MonthlySummaryResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be between 1 and 12",
		}}
	}

	if err := a.requireEmployee(ctx, employeeID); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := a.AttendanceRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.WorkedHours)
	}

	return attendance.MonthlySummaryResponse{
		EmployeeID:  employeeID,
		Year:        year,
		Month:       month,
		WorkedHours: total.StringFixed(2),
		RecordCount: len(records),
	}, nil
}

func (a *AttendanceServiceImpl) requireEmployee(ctx context.Context, employeeID string) error {
	exists, err := a.EmployeeRepository.ExistsByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// reload fetches the persisted record so the response reflects store-derived
// fields (timestamps, joined employee name).
func (a *AttendanceServiceImpl) reload(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to reload attendance record: %w", err)
	}
	return mapAttendanceToResponse(record), nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(record attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            record.ID,
		EmployeeID:    record.EmployeeID,
		EmployeeName:  record.EmployeeName,
		Date:          record.Date.Format("2006-01-02"),
		ClockIn:       timePtrToString(record.ClockIn),
		ClockOut:      timePtrToString(record.ClockOut),
		BreakMinutes:  record.BreakMinutes,
		WorkedHours:   record.WorkedHours.StringFixed(2),
		OvertimeHours: record.OvertimeHours.StringFixed(2),
		Notes:         record.Notes,
		CreatedAt:     record.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     record.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
