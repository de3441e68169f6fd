package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/staffhub-hr/staffhub-backend-go/internal/config"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	policy config.PolicyConfig
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	policy config.PolicyConfig,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		EmployeeRepository:     employeeRepo,
		policy:                 policy,
	}
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if err := s.requireEmployee(ctx, req.EmployeeID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate := dateOf(req.ParsedStartDate)
	endDate := dateOf(req.ParsedEndDate)

	// Range checks in contract order: the end-before-start failure wins over
	// the start-in-the-past failure.
	if endDate.Before(startDate) {
		return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must be on or after start_date",
		}}
	}

	today := dateOf(time.Now())
	if startDate.Before(today) {
		return leave.LeaveRequestResponse{}, validator.ValidationErrors{{
			Field:   "start_date",
			Message: "start_date cannot be in the past",
		}}
	}

	daysRequested := countBusinessDays(startDate, endDate)

	var requestID string
	err := s.LeaveRequestRepository.WithEmployeeLock(ctx, req.EmployeeID, func(ctx context.Context) error {
		conflict, err := s.HasConflict(ctx, req.EmployeeID, startDate, endDate, nil)
		if err != nil {
			return err
		}
		if conflict {
			return &leave.ConflictError{StartDate: startDate, EndDate: endDate}
		}

		created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			ID:            uuid.NewString(),
			EmployeeID:    req.EmployeeID,
			LeaveType:     leave.LeaveType(req.LeaveType),
			StartDate:     startDate,
			EndDate:       endDate,
			DaysRequested: daysRequested,
			Status:        leave.LeaveRequestStatusPending,
			Reason:        req.Reason,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		requestID = created.ID
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	reloaded, err := s.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}

	return mapLeaveRequestToResponse(reloaded), nil
}

// HasConflict implements leave.LeaveService.
// Two intervals conflict when existing.start <= end AND existing.end >= start,
// with both ranges inclusive. Rejected and cancelled requests never block.
func (s *LeaveServiceImpl) HasConflict(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeRequestID *string) (bool, error) {
	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to list leave requests: %w", err)
	}

	for _, existing := range requests {
		if !existing.Status.Blocks() {
			continue
		}
		if excludeRequestID != nil && existing.ID == *excludeRequestID {
			continue
		}
		if !existing.StartDate.After(endDate) && !existing.EndDate.Before(startDate) {
			return true, nil
		}
	}

	return false, nil
}

// UpdateStatus implements leave.LeaveService.
// Transitions are legal only out of pending; approved, rejected and cancelled
// are terminal. The read-check-write runs under the employee lock, with the
// pending-only UPDATE in the repository as the second line of defense.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	newStatus := leave.LeaveRequestStatus(req.Status)
	err = s.LeaveRequestRepository.WithEmployeeLock(ctx, request.EmployeeID, func(ctx context.Context) error {
		current, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID)
		if err != nil {
			return err
		}
		if current.Status != leave.LeaveRequestStatusPending {
			return &leave.StatusTransitionError{
				Current:   current.Status,
				Attempted: newStatus,
			}
		}

		reviewedAt := time.Now().UTC()
		current.Status = newStatus
		current.ReviewedAt = &reviewedAt
		if req.ManagerComments != "" {
			current.ManagerComments = &req.ManagerComments
		}
		if reviewer := reviewerFromContext(ctx); reviewer != "" {
			current.ReviewedBy = &reviewer
		}

		if err := s.LeaveRequestRepository.Update(ctx, current); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	reloaded, err := s.LeaveRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}

	return mapLeaveRequestToResponse(reloaded), nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return mapLeaveRequestToResponse(request), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapLeaveRequestToResponse(request))
	}

	return responses, nil
}

// RemainingLeaveDays implements leave.LeaveService.
// The balance is allowance minus approved days for the year and is not
// clamped: an over-allocated employee shows a negative remainder.
func (s *LeaveServiceImpl) RemainingLeaveDays(ctx context.Context, employeeID string, year int) (leave.LeaveBalanceResponse, error) {
	if err := s.requireEmployee(ctx, employeeID); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}

	approved, err := s.LeaveRequestRepository.ListApprovedByEmployeeAndYear(ctx, employeeID, year)
	if err != nil {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to list approved leave requests: %w", err)
	}

	used := 0
	for _, request := range approved {
		used += request.DaysRequested
	}

	allowance := s.policy.AnnualLeaveAllowance

	return leave.LeaveBalanceResponse{
		EmployeeID:    employeeID,
		Year:          year,
		Allowance:     allowance,
		UsedDays:      used,
		RemainingDays: allowance - used,
	}, nil
}

func (s *LeaveServiceImpl) requireEmployee(ctx context.Context, employeeID string) error {
	exists, err := s.EmployeeRepository.ExistsByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to check employee existence: %w", err)
	}
	if !exists {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// reviewerFromContext reads the acting principal out of the verified token
// claims. Review actions recorded without a token keep a nil reviewer.
func reviewerFromContext(ctx context.Context) string {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return ""
	}
	if userID, ok := claims["user_id"].(string); ok {
		return userID
	}
	return ""
}

// dateOf strips the time-of-day component, normalizing to UTC midnight.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func mapLeaveRequestToResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	var reviewedAt *string
	if request.ReviewedAt != nil {
		formatted := request.ReviewedAt.UTC().Format(time.RFC3339)
		reviewedAt = &formatted
	}

	return leave.LeaveRequestResponse{
		ID:              request.ID,
		EmployeeID:      request.EmployeeID,
		EmployeeName:    request.EmployeeName,
		LeaveType:       string(request.LeaveType),
		StartDate:       request.StartDate.Format("2006-01-02"),
		EndDate:         request.EndDate.Format("2006-01-02"),
		DaysRequested:   request.DaysRequested,
		Status:          string(request.Status),
		Reason:          request.Reason,
		ManagerComments: request.ManagerComments,
		ReviewedBy:      request.ReviewedBy,
		ReviewedAt:      reviewedAt,
		CreatedAt:       request.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       request.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
