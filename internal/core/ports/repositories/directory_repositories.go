package repositories

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// EmployeeRepository persists the staff directory.
type EmployeeRepository interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error)
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

// ServiceRepository persists the administrative services directory.
type ServiceRepository interface {
	SaveService(ctx context.Context, service domain.Service) (domain.Service, error)
	FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	SearchServices(ctx context.Context, query string) ([]domain.Service, error)
}

// CompanyRepository persists the append-only company suggestion list.
type CompanyRepository interface {
	SaveCompany(ctx context.Context, company domain.Company) (domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	SearchCompanies(ctx context.Context, query string) ([]domain.Company, error)
}
