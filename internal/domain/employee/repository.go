package employee

import "context"

// EmployeeRepository is the directory the attendance and leave services
// consult for existence checks.
type EmployeeRepository interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
}
