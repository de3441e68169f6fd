package leave

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/staffhub-hr/staffhub-backend-go/internal/config"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = employee.Employee{ID: id, FullName: "Employee " + id}
	}
	return repo
}

func (r *fakeEmployeeRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	_, ok := r.employees[id]
	return ok, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

type fakeLeaveRepo struct {
	mu       sync.Mutex
	lockMu   sync.Mutex
	requests map[string]leave.LeaveRequest
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = request
	return request, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, request leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.requests[request.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	// Pending-only write, matching the store's conditional UPDATE.
	if stored.Status != leave.LeaveRequestStatusPending {
		return leave.ErrLeaveRequestNotPending
	}
	request.UpdatedAt = time.Now().UTC()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) ListApprovedByEmployeeAndYear(_ context.Context, employeeID string, year int) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []leave.LeaveRequest
	for _, request := range r.requests {
		if request.EmployeeID == employeeID &&
			request.Status == leave.LeaveRequestStatusApproved &&
			request.StartDate.Year() == year {
			out = append(out, request)
		}
	}
	return out, nil
}

func (r *fakeLeaveRepo) WithEmployeeLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()
	return fn(ctx)
}

// seed stores a request directly, bypassing service-level checks.
func (r *fakeLeaveRepo) seed(request leave.LeaveRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = request
}

func testPolicy() config.PolicyConfig {
	return config.PolicyConfig{
		StandardDailyHours:   decimal.NewFromInt(8),
		AnnualLeaveAllowance: 25,
	}
}

func newTestService(employeeIDs ...string) (leave.LeaveService, *fakeLeaveRepo) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, newFakeEmployeeRepo(employeeIDs...), testPolicy())
	return svc, leaveRepo
}

// nextMonday returns the first Monday strictly after today at UTC midnight.
// Leave creation rejects past start dates, so fixtures have to live in the
// future.
func nextMonday() time.Time {
	t := time.Now().UTC()
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for {
		t = t.AddDate(0, 0, 1)
		if t.Weekday() == time.Monday {
			break
		}
	}
	return t
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ===== CREATION =====

func TestCreateLeaveRequest_PendingWithBusinessDays(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()

	result, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)), // Friday
		Reason:     "family trip",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, 5, result.DaysRequested)
	assert.Equal(t, "family trip", result.Reason)
	assert.Nil(t, result.ReviewedAt)
}

func TestCreateLeaveRequest_WeekendSpanSkipsWeekend(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()

	result, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 6)), // Sunday
	})

	require.NoError(t, err)
	assert.Equal(t, 5, result.DaysRequested)
}

func TestCreateLeaveRequest_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "ghost",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateLeaveRequest_EndBeforeStart(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday.AddDate(0, 0, 4)),
		EndDate:    fmtDate(monday),
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "end_date", validationErrs[0].Field)
}

func TestCreateLeaveRequest_PastStartDate(t *testing.T) {
	svc, _ := newTestService("emp-1")
	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "sick",
		StartDate:  fmtDate(yesterday),
		EndDate:    fmtDate(yesterday.AddDate(0, 0, 2)),
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "start_date", validationErrs[0].Field)
}

func TestCreateLeaveRequest_InvalidType(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()

	_, err := svc.CreateLeaveRequest(context.Background(), leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "sabbatical",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday),
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "leave_type", validationErrs[0].Field)
}

// ===== CONFLICTS =====

func TestCreateLeaveRequest_OverlapConflicts(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})
	require.NoError(t, err)

	// Second request starting mid-range of the first.
	_, err = svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "personal",
		StartDate:  fmtDate(monday.AddDate(0, 0, 2)),
		EndDate:    fmtDate(monday.AddDate(0, 0, 8)),
	})

	var conflictErr *leave.ConflictError
	require.ErrorAs(t, err, &conflictErr)
}

func TestCreateLeaveRequest_ContainedRangeConflicts(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 11)),
	})
	require.NoError(t, err)

	_, err = svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "personal",
		StartDate:  fmtDate(monday.AddDate(0, 0, 2)),
		EndDate:    fmtDate(monday.AddDate(0, 0, 3)),
	})

	var conflictErr *leave.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestCreateLeaveRequest_SharedBoundaryDayConflicts(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 2)),
	})
	require.NoError(t, err)

	// Ranges are inclusive, so meeting on the same day is a conflict.
	_, err = svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "personal",
		StartDate:  fmtDate(monday.AddDate(0, 0, 2)),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})

	var conflictErr *leave.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestCreateLeaveRequest_AdjacentRangesAllowed(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 2)),
	})
	require.NoError(t, err)

	_, err = svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "personal",
		StartDate:  fmtDate(monday.AddDate(0, 0, 3)),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})
	assert.NoError(t, err)
}

func TestCreateLeaveRequest_OtherEmployeeDoesNotConflict(t *testing.T) {
	svc, _ := newTestService("emp-1", "emp-2")
	monday := nextMonday()
	ctx := context.Background()

	_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})
	require.NoError(t, err)

	_, err = svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-2",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})
	assert.NoError(t, err)
}

func TestHasConflict_IgnoresRejectedAndCancelled(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")
	monday := nextMonday()

	for i, status := range []leave.LeaveRequestStatus{
		leave.LeaveRequestStatusRejected,
		leave.LeaveRequestStatusCancelled,
	} {
		leaveRepo.seed(leave.LeaveRequest{
			ID:         fmt.Sprintf("seed-%d", i),
			EmployeeID: "emp-1",
			LeaveType:  leave.LeaveTypeVacation,
			StartDate:  monday,
			EndDate:    monday.AddDate(0, 0, 4),
			Status:     status,
		})
	}

	conflict, err := svc.HasConflict(context.Background(), "emp-1", monday, monday.AddDate(0, 0, 4), nil)
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_ApprovedBlocks(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")
	monday := nextMonday()

	leaveRepo.seed(leave.LeaveRequest{
		ID:         "seed-approved",
		EmployeeID: "emp-1",
		LeaveType:  leave.LeaveTypeVacation,
		StartDate:  monday,
		EndDate:    monday.AddDate(0, 0, 4),
		Status:     leave.LeaveRequestStatusApproved,
	})

	conflict, err := svc.HasConflict(context.Background(), "emp-1", monday.AddDate(0, 0, 4), monday.AddDate(0, 0, 8), nil)
	require.NoError(t, err)
	assert.True(t, conflict)
}

func TestHasConflict_ExcludesGivenRequest(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")
	monday := nextMonday()

	leaveRepo.seed(leave.LeaveRequest{
		ID:         "seed-self",
		EmployeeID: "emp-1",
		LeaveType:  leave.LeaveTypeVacation,
		StartDate:  monday,
		EndDate:    monday.AddDate(0, 0, 4),
		Status:     leave.LeaveRequestStatusPending,
	})

	exclude := "seed-self"
	conflict, err := svc.HasConflict(context.Background(), "emp-1", monday, monday.AddDate(0, 0, 4), &exclude)
	require.NoError(t, err)
	assert.False(t, conflict)
}

// ===== STATUS TRANSITIONS =====

func TestUpdateStatus_ApprovePending(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	created, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})
	require.NoError(t, err)

	result, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{
		RequestID:       created.ID,
		Status:          "approved",
		ManagerComments: "enjoy",
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", result.Status)
	require.NotNil(t, result.ManagerComments)
	assert.Equal(t, "enjoy", *result.ManagerComments)
	assert.NotNil(t, result.ReviewedAt)
}

func TestUpdateStatus_ResponseReflectsStoredRecord(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	created, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday),
	})
	require.NoError(t, err)

	result, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{
		RequestID: created.ID,
		Status:    "approved",
	})
	require.NoError(t, err)

	stored, err := leaveRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.UpdatedAt.UTC().Format(time.RFC3339), result.UpdatedAt)
	assert.Equal(t, string(stored.Status), result.Status)
}

func TestUpdateStatus_ConcurrentReviewsSingleWinner(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	created, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})
	require.NoError(t, err)

	// Two reviewers race on the same pending request; the employee lock
	// serializes them, so exactly one transition lands.
	start := make(chan struct{})
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for _, status := range []string{"approved", "rejected"} {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			<-start
			_, err := svc.UpdateStatus(ctx, leave.UpdateStatusRequest{
				RequestID: created.ID,
				Status:    status,
			})
			results <- err
		}(status)
	}
	close(start)
	wg.Wait()
	close(results)

	failures := 0
	for err := range results {
		if err != nil {
			var transitionErr *leave.StatusTransitionError
			require.ErrorAs(t, err, &transitionErr)
			failures++
		}
	}
	assert.Equal(t, 1, failures)

	stored, err := leaveRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Status.IsTerminal())
}

func TestUpdateStatus_RecordsReviewerFromToken(t *testing.T) {
	svc, _ := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	created, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday),
	})
	require.NoError(t, err)

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": "manager-1", "type": "access"})
	require.NoError(t, err)
	authedCtx := jwtauth.NewContext(ctx, token, nil)

	result, err := svc.UpdateStatus(authedCtx, leave.UpdateStatusRequest{
		RequestID: created.ID,
		Status:    "approved",
	})
	require.NoError(t, err)
	require.NotNil(t, result.ReviewedBy)
	assert.Equal(t, "manager-1", *result.ReviewedBy)
}

func TestUpdateStatus_TerminalStatusRejected(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")
	monday := nextMonday()
	ctx := context.Background()

	created, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "vacation",
		StartDate:  fmtDate(monday),
		EndDate:    fmtDate(monday.AddDate(0, 0, 4)),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, leave.UpdateStatusRequest{
		RequestID: created.ID,
		Status:    "approved",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, leave.UpdateStatusRequest{
		RequestID: created.ID,
		Status:    "rejected",
	})

	var transitionErr *leave.StatusTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, leave.LeaveRequestStatusApproved, transitionErr.Current)
	assert.Equal(t, leave.LeaveRequestStatusRejected, transitionErr.Attempted)

	// The stored status is untouched by the failed transition.
	stored, err := leaveRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status)
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID: "some-id",
		Status:    "escalated",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "status", validationErrs[0].Field)
}

func TestUpdateStatus_UnknownRequest(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateStatusRequest{
		RequestID: "missing",
		Status:    "approved",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

// ===== BALANCE =====

func TestRemainingLeaveDays(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")

	// Seeding bypasses the past-date check, so fixed dates keep the test
	// deterministic across year boundaries.
	start := day(t, "2025-06-02")
	leaveRepo.seed(leave.LeaveRequest{
		ID:            "seed-approved",
		EmployeeID:    "emp-1",
		LeaveType:     leave.LeaveTypeVacation,
		StartDate:     start,
		EndDate:       start.AddDate(0, 0, 4),
		DaysRequested: 5,
		Status:        leave.LeaveRequestStatusApproved,
	})
	// Pending requests do not consume balance.
	leaveRepo.seed(leave.LeaveRequest{
		ID:            "seed-pending",
		EmployeeID:    "emp-1",
		LeaveType:     leave.LeaveTypeVacation,
		StartDate:     start.AddDate(0, 0, 14),
		EndDate:       start.AddDate(0, 0, 18),
		DaysRequested: 5,
		Status:        leave.LeaveRequestStatusPending,
	})

	balance, err := svc.RemainingLeaveDays(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 25, balance.Allowance)
	assert.Equal(t, 5, balance.UsedDays)
	assert.Equal(t, 20, balance.RemainingDays)
}

func TestRemainingLeaveDays_OverAllocationGoesNegative(t *testing.T) {
	svc, leaveRepo := newTestService("emp-1")

	for i := 0; i < 6; i++ {
		start := day(t, "2025-01-06").AddDate(0, 0, 14*i)
		leaveRepo.seed(leave.LeaveRequest{
			ID:            fmt.Sprintf("seed-%d", i),
			EmployeeID:    "emp-1",
			LeaveType:     leave.LeaveTypeVacation,
			StartDate:     start,
			EndDate:       start.AddDate(0, 0, 4),
			DaysRequested: 5,
			Status:        leave.LeaveRequestStatusApproved,
		})
	}

	balance, err := svc.RemainingLeaveDays(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 30, balance.UsedDays)
	assert.Equal(t, -5, balance.RemainingDays)
}

func TestRemainingLeaveDays_UnknownEmployee(t *testing.T) {
	svc, _ := newTestService("emp-1")

	_, err := svc.RemainingLeaveDays(context.Background(), "ghost", 2025)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
