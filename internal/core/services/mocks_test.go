package services_test

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock repositories shared by the service suites ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (domain.Employee, error) {
	args := m.Called(ctx, employee)
	return args.Get(0).(domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepository) SearchEmployees(ctx context.Context, query string) ([]domain.Employee, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) SaveService(ctx context.Context, service domain.Service) (domain.Service, error) {
	args := m.Called(ctx, service)
	return args.Get(0).(domain.Service), args.Error(1)
}
func (m *MockServiceRepository) FindServiceByID(ctx context.Context, serviceID string) (*domain.Service, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}
func (m *MockServiceRepository) ListServices(ctx context.Context) ([]domain.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}
func (m *MockServiceRepository) SearchServices(ctx context.Context, query string) ([]domain.Service, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockVisitorRepository struct {
	mock.Mock
}

func (m *MockVisitorRepository) SaveVisitor(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	args := m.Called(ctx, visitor)
	return args.Get(0).(domain.Visitor), args.Error(1)
}
func (m *MockVisitorRepository) FindVisitorByID(ctx context.Context, visitorID string) (*domain.Visitor, error) {
	args := m.Called(ctx, visitorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}
func (m *MockVisitorRepository) ListVisitors(ctx context.Context) ([]domain.Visitor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visitor), args.Error(1)
}
func (m *MockVisitorRepository) SearchVisitors(ctx context.Context, query string) ([]domain.Visitor, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Visitor), args.Error(1)
}
func (m *MockVisitorRepository) DeleteVisitor(ctx context.Context, visitorID string) error {
	args := m.Called(ctx, visitorID)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) (domain.Appointment, error) {
	args := m.Called(ctx, appointment)
	return args.Get(0).(domain.Appointment), args.Error(1)
}
func (m *MockAppointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}
func (m *MockAppointmentRepository) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}
func (m *MockAppointmentRepository) ListAppointmentsByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) SavePackage(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	args := m.Called(ctx, pkg)
	return args.Get(0).(domain.Package), args.Error(1)
}
func (m *MockPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}
func (m *MockPackageRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}
func (m *MockPackageRepository) SearchPackages(ctx context.Context, query string) ([]domain.Package, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

type MockBadgeRepository struct {
	mock.Mock
}

func (m *MockBadgeRepository) SaveBadge(ctx context.Context, badge domain.Badge) (domain.Badge, error) {
	args := m.Called(ctx, badge)
	return args.Get(0).(domain.Badge), args.Error(1)
}
func (m *MockBadgeRepository) FindBadgeByNumber(ctx context.Context, number string) (*domain.Badge, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Badge), args.Error(1)
}
func (m *MockBadgeRepository) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}

// --- Mock service facades used by the registration workflow suite ---

type MockBadgeSvc struct {
	mock.Mock
}

func (m *MockBadgeSvc) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}
func (m *MockBadgeSvc) ListAvailableBadges(ctx context.Context, zones []string) ([]domain.Badge, error) {
	args := m.Called(ctx, zones)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Badge), args.Error(1)
}
func (m *MockBadgeSvc) Allocate(ctx context.Context, zones []string, visitorID string) (*domain.Badge, error) {
	args := m.Called(ctx, zones, visitorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Badge), args.Error(1)
}
func (m *MockBadgeSvc) Release(ctx context.Context, badgeNumber string) error {
	args := m.Called(ctx, badgeNumber)
	return args.Error(0)
}

type MockAppointmentSvc struct {
	mock.Mock
}

func (m *MockAppointmentSvc) CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}
func (m *MockAppointmentSvc) GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}
func (m *MockAppointmentSvc) ListAppointments(ctx context.Context, date string) ([]domain.Appointment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}
func (m *MockAppointmentSvc) ChangeStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	args := m.Called(ctx, appointmentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}
func (m *MockAppointmentSvc) FindMatch(ctx context.Context, visitorName, hostName, date string) (*domain.Appointment, error) {
	args := m.Called(ctx, visitorName, hostName, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}
func (m *MockAppointmentSvc) CompleteMatch(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, req domain.NotificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
