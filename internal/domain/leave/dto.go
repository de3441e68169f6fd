package leave

import (
	"time"

	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE REQUEST DTOs
// ========================================

var leaveTypes = []string{
	string(LeaveTypeVacation),
	string(LeaveTypeSick),
	string(LeaveTypePersonal),
	string(LeaveTypeUnpaid),
}

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`

	// Parsed fields filled by Validate.
	ParsedStartDate time.Time `json:"-"`
	ParsedEndDate   time.Time `json:"-"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.LeaveType, leaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of vacation, sick, personal, unpaid",
		})
	}

	if date, ok := validator.IsValidDate(r.StartDate); ok {
		r.ParsedStartDate = date.UTC()
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if date, ok := validator.IsValidDate(r.EndDate); ok {
		r.ParsedEndDate = date.UTC()
	} else {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	RequestID       string `json:"-"`
	Status          string `json:"status"`
	ManagerComments string `json:"manager_comments"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	allowed := []string{
		string(LeaveRequestStatusApproved),
		string(LeaveRequestStatusRejected),
		string(LeaveRequestStatusCancelled),
	}
	if !validator.IsInSlice(r.Status, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of approved, rejected, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	LeaveType       string  `json:"leave_type"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	DaysRequested   int     `json:"days_requested"`
	Status          string  `json:"status"`
	Reason          string  `json:"reason,omitempty"`
	ManagerComments *string `json:"manager_comments,omitempty"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type LeaveBalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Year          int    `json:"year"`
	Allowance     int    `json:"allowance"`
	UsedDays      int    `json:"used_days"`
	RemainingDays int    `json:"remaining_days"`
}
