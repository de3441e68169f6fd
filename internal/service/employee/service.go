package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/employee"
)

// EmployeeService is the thin directory surface. Anything beyond create and
// lookup belongs to the HR master-data system this service federates with.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error)
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// CreateEmployee implements EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:               uuid.NewString(),
		EmployeeCode:     req.EmployeeCode,
		FullName:         req.FullName,
		Email:            req.Email,
		Department:       req.Department,
		Position:         req.Position,
		HireDate:         req.ParsedHireDate,
		EmploymentStatus: employee.EmploymentStatusActive,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return responses, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:               emp.ID,
		EmployeeCode:     emp.EmployeeCode,
		FullName:         emp.FullName,
		Email:            emp.Email,
		Department:       emp.Department,
		Position:         emp.Position,
		HireDate:         emp.HireDate.Format("2006-01-02"),
		EmploymentStatus: string(emp.EmploymentStatus),
		CreatedAt:        emp.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        emp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
