package jsonfile

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
)

// The ctx parameters are kept for interface uniformity with the service
// layer; collection access is synchronous and never suspends mid-mutation.

type employeeRepository struct {
	col *Collection[domain.Employee]
}

var _ portsrepo.EmployeeRepository = (*employeeRepository)(nil)

func (r *employeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	return r.col.Upsert(employee)
}

func (r *employeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return r.col.Get(employeeID)
}

func (r *employeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return r.col.List(), nil
}

func (r *employeeRepository) SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	return r.col.Search(query), nil
}

func (r *employeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	return r.col.Delete(employeeID)
}

type serviceRepository struct {
	col *Collection[domain.Service]
}

var _ portsrepo.ServiceRepository = (*serviceRepository)(nil)

func (r *serviceRepository) SaveService(ctx context.Context, service domain.Service) (domain.Service, error) {
	return r.col.Upsert(service)
}

func (r *serviceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	return r.col.Get(serviceID)
}

func (r *serviceRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	return r.col.List(), nil
}

func (r *serviceRepository) SearchServices(ctx context.Context, query string) ([]domain.Service, error) {
	return r.col.Search(query), nil
}

type companyRepository struct {
	col *Collection[domain.Company]
}

var _ portsrepo.CompanyRepository = (*companyRepository)(nil)

func (r *companyRepository) SaveCompany(ctx context.Context, company domain.Company) (domain.Company, error) {
	return r.col.Upsert(company)
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return r.col.List(), nil
}

func (r *companyRepository) SearchCompanies(ctx context.Context, query string) ([]domain.Company, error) {
	return r.col.Search(query), nil
}
