package jsonfile

import (
	"fmt"
	"os"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
)

// Store owns one collection per entity type, each persisted under dataDir.
// It is constructed once at process start and passed by reference to the
// services; there is no hidden global state.
type Store struct {
	Employees    *Collection[domain.Employee]
	Services     *Collection[domain.Service]
	Companies    *Collection[domain.Company]
	Visitors     *Collection[domain.Visitor]
	Appointments *Collection[domain.Appointment]
	Packages     *Collection[domain.Package]
	Badges       *Collection[domain.Badge]
}

// Open loads every collection from dataDir, creating the directory on first
// start.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	employees, err := NewCollection(dataDir, "employees", func(e domain.Employee) []string {
		return []string{e.FirstName, e.LastName, e.Matricule, e.Email}
	})
	if err != nil {
		return nil, err
	}
	services, err := NewCollection(dataDir, "services", func(s domain.Service) []string {
		return []string{s.Code, s.Name, s.Description}
	})
	if err != nil {
		return nil, err
	}
	companies, err := NewCollection(dataDir, "companies", func(c domain.Company) []string {
		return []string{c.Name}
	})
	if err != nil {
		return nil, err
	}
	visitors, err := NewCollection(dataDir, "visitors", func(v domain.Visitor) []string {
		return []string{v.FirstName, v.LastName, v.Company, v.RegistrationNumber, v.IDDocumentNumber}
	})
	if err != nil {
		return nil, err
	}
	appointments, err := NewCollection(dataDir, "appointments", func(a domain.Appointment) []string {
		return []string{a.CitizenName, a.AgentName, a.Purpose}
	})
	if err != nil {
		return nil, err
	}
	packages, err := NewCollection(dataDir, "packages", func(p domain.Package) []string {
		return []string{p.TrackingNumber, p.Sender.Name, p.Sender.Company, p.RegistrationNumber}
	})
	if err != nil {
		return nil, err
	}
	badges, err := NewCollection[domain.Badge](dataDir, "badges", nil)
	if err != nil {
		return nil, err
	}

	return &Store{
		Employees:    employees,
		Services:     services,
		Companies:    companies,
		Visitors:     visitors,
		Appointments: appointments,
		Packages:     packages,
		Badges:       badges,
	}, nil
}

// NewRepositoryProvider wires the store's collections into the repository
// facades the service container expects.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EmployeeRepo:    &employeeRepository{col: store.Employees},
		ServiceRepo:     &serviceRepository{col: store.Services},
		CompanyRepo:     &companyRepository{col: store.Companies},
		VisitorRepo:     &visitorRepository{col: store.Visitors},
		AppointmentRepo: &appointmentRepository{col: store.Appointments},
		PackageRepo:     &packageRepository{col: store.Packages},
		BadgeRepo:       &badgeRepository{col: store.Badges},
	}
}
