package services

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
)

// DirectorySvcFacade manages the staff/service/company lookup tables.
type DirectorySvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error

	CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error)
	GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)

	AddCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// Seed installs the static reference data (services, badge pool,
	// reference companies) when the store is empty.
	Seed(ctx context.Context) error
}
