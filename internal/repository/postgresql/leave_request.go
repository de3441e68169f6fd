package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date,
			days_requested, status, reason
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.DaysRequested,
		request.Status,
		request.Reason,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
		       lr.days_requested, lr.status, lr.reason, lr.manager_comments,
		       lr.reviewed_by, lr.reviewed_at, lr.created_at, lr.updated_at,
		       e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.LeaveType, &request.StartDate, &request.EndDate,
		&request.DaysRequested, &request.Status, &request.Reason, &request.ManagerComments,
		&request.ReviewedBy, &request.ReviewedAt, &request.CreatedAt, &request.UpdatedAt,
		&request.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by id: %w", err)
	}

	return request, nil
}

// Update implements leave.LeaveRequestRepository.
// The WHERE clause only matches pending rows, so a transition that lost a
// race fails here instead of overwriting the winner.
func (r *leaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
		    manager_comments = $3,
		    reviewed_by = $4,
		    reviewed_at = $5,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query,
		request.ID,
		request.Status,
		request.ManagerComments,
		request.ReviewedBy,
		request.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var status leave.LeaveRequestStatus
		err := q.QueryRow(ctx, `SELECT status FROM leave_requests WHERE id = $1`, request.ID).Scan(&status)
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveRequestNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check leave request status: %w", err)
		}
		return leave.ErrLeaveRequestNotPending
	}

	return nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date,
		       days_requested, status, reason, manager_comments,
		       reviewed_by, reviewed_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`

	return r.queryList(ctx, q, query, employeeID)
}

// ListApprovedByEmployeeAndYear implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListApprovedByEmployeeAndYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date,
		       days_requested, status, reason, manager_comments,
		       reviewed_by, reviewed_at, created_at, updated_at
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $2
		ORDER BY start_date
	`

	return r.queryList(ctx, q, query, employeeID, year)
}

// WithEmployeeLock implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) WithEmployeeLock(ctx context.Context, employeeID string, fn func(ctx context.Context) error) error {
	return withEmployeeLock(ctx, r.db, employeeID, fn)
}

func (r *leaveRequestRepository) queryList(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		if err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.LeaveType, &request.StartDate, &request.EndDate,
			&request.DaysRequested, &request.Status, &request.Reason, &request.ManagerComments,
			&request.ReviewedBy, &request.ReviewedAt, &request.CreatedAt, &request.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}
