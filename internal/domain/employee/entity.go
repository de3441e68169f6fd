package employee

import (
	"time"
)

type Employee struct {
	ID               string
	EmployeeCode     string
	FullName         string
	Email            string
	Department       *string
	Position         *string
	HireDate         time.Time
	EmploymentStatus EmploymentStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusInactive EmploymentStatus = "inactive"
)
