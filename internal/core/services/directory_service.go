package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/google/uuid"
)

// directoryService manages the employee/service/company lookup tables.
type directoryService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepository
	serviceRepo  portsrepo.ServiceRepository
	companyRepo  portsrepo.CompanyRepository
	badgeRepo    portsrepo.BadgeRepository
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(
	employeeRepo portsrepo.EmployeeRepository,
	serviceRepo portsrepo.ServiceRepository,
	companyRepo portsrepo.CompanyRepository,
	badgeRepo portsrepo.BadgeRepository,
) portssvc.DirectorySvcFacade {
	return &directoryService{
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
		companyRepo:  companyRepo,
		badgeRepo:    badgeRepo,
	}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func (s *directoryService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if _, err := s.serviceRepo.FindServiceByID(ctx, req.ServiceID); err != nil {
		s.LogError(ctx, err, "Unknown service for new employee", slog.String("service_id", req.ServiceID))
		return nil, fmt.Errorf("invalid service reference: %w", err)
	}

	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Matricule:  req.Matricule,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		ServiceID:  req.ServiceID,
		Position:   req.Position,
		Office:     req.Office,
		Floor:      req.Floor,
		IsActive:   true,
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("matricule", req.Matricule))
		return nil, err
	}

	if err := s.attachToService(ctx, saved.ServiceID, saved.EmployeeID); err != nil {
		s.LogWarn(ctx, "Failed to update service member list", slog.String("service_id", saved.ServiceID), slog.String("error", err.Error()))
	}

	s.LogInfo(ctx, "Employee created", slog.String("employee_id", saved.EmployeeID))
	return &saved, nil
}

// attachToService keeps the denormalized member list of a service in sync.
func (s *directoryService) attachToService(ctx context.Context, serviceID, employeeID string) error {
	svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return err
	}
	for _, id := range svc.EmployeeIDs {
		if id == employeeID {
			return nil
		}
	}
	svc.EmployeeIDs = append(svc.EmployeeIDs, employeeID)
	_, err = s.serviceRepo.SaveService(ctx, *svc)
	return err
}

func (s *directoryService) detachFromService(ctx context.Context, serviceID, employeeID string) error {
	svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return err
	}
	kept := svc.EmployeeIDs[:0]
	for _, id := range svc.EmployeeIDs {
		if id != employeeID {
			kept = append(kept, id)
		}
	}
	svc.EmployeeIDs = kept
	_, err = s.serviceRepo.SaveService(ctx, *svc)
	return err
}

func (s *directoryService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_id", employeeID))
		}
		return nil, err
	}
	return employee, nil
}

func (s *directoryService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.ListEmployees(ctx)
}

func (s *directoryService) SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	return s.employeeRepo.SearchEmployees(ctx, query)
}

func (s *directoryService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	employee, err := s.GetEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	previousServiceID := employee.ServiceID
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.ServiceID != nil {
		if _, err := s.serviceRepo.FindServiceByID(ctx, *req.ServiceID); err != nil {
			return nil, fmt.Errorf("invalid service reference: %w", err)
		}
		employee.ServiceID = *req.ServiceID
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Office != nil {
		employee.Office = *req.Office
	}
	if req.Floor != nil {
		employee.Floor = *req.Floor
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, *employee)
	if err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	if saved.ServiceID != previousServiceID {
		if err := s.detachFromService(ctx, previousServiceID, saved.EmployeeID); err != nil {
			s.LogWarn(ctx, "Failed to detach employee from previous service", slog.String("error", err.Error()))
		}
		if err := s.attachToService(ctx, saved.ServiceID, saved.EmployeeID); err != nil {
			s.LogWarn(ctx, "Failed to attach employee to new service", slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Employee updated", slog.String("employee_id", employeeID))
	return &saved, nil
}

func (s *directoryService) DeleteEmployee(ctx context.Context, employeeID string) error {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Hard delete with no tombstone; deleting an absent id is a no-op.
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}
	if err := s.detachFromService(ctx, employee.ServiceID, employeeID); err != nil {
		s.LogWarn(ctx, "Failed to detach deleted employee from service", slog.String("error", err.Error()))
	}
	s.LogInfo(ctx, "Employee deleted", slog.String("employee_id", employeeID))
	return nil
}

func (s *directoryService) CreateService(ctx context.Context, req dto.CreateServiceRequest) (*domain.Service, error) {
	existing, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	for _, svc := range existing {
		if strings.EqualFold(svc.Code, req.Code) {
			return nil, fmt.Errorf("service code %q: %w", req.Code, apperrors.ErrDuplicate)
		}
	}

	service := domain.Service{
		ServiceID:     uuid.NewString(),
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		ResponsableID: req.ResponsableID,
		Location:      req.Location,
	}
	saved, err := s.serviceRepo.SaveService(ctx, service)
	if err != nil {
		s.LogError(ctx, err, "Failed to save service", slog.String("code", req.Code))
		return nil, err
	}
	s.LogInfo(ctx, "Service created", slog.String("service_id", saved.ServiceID), slog.String("code", saved.Code))
	return &saved, nil
}

func (s *directoryService) GetServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	return s.serviceRepo.FindServiceByID(ctx, serviceID)
}

func (s *directoryService) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.serviceRepo.ListServices(ctx)
}

func (s *directoryService) AddCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	// Append-only list: duplicates by name are tolerated, the list is a
	// suggestion source, not a registry.
	company := domain.Company{
		CompanyID: uuid.NewString(),
		Name:      req.Name,
	}
	saved, err := s.companyRepo.SaveCompany(ctx, company)
	if err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("name", req.Name))
		return nil, err
	}
	return &saved, nil
}

func (s *directoryService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	return s.companyRepo.ListCompanies(ctx)
}
