package services

import (
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, dispatcher portssvc.NotificationDispatcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Directory = NewDirectoryService(
		repos.EmployeeRepo,
		repos.ServiceRepo,
		repos.CompanyRepo,
		repos.BadgeRepo,
	)

	// Badge and appointment services come first since the workflow and the
	// visitor log depend on them.
	container.Badge = NewBadgeService(repos.BadgeRepo)
	container.Appointment = NewAppointmentService(repos.AppointmentRepo, repos.EmployeeRepo)

	container.Visitor = NewVisitorService(repos.VisitorRepo, container.Badge)
	container.Package = NewPackageService(repos.PackageRepo)

	container.Registration = NewRegistrationService(
		repos.VisitorRepo,
		repos.PackageRepo,
		repos.EmployeeRepo,
		repos.ServiceRepo,
		container.Badge,
		container.Appointment,
		WithNotificationDispatcher(dispatcher),
	)

	container.Reporting = NewReportingService(
		repos.VisitorRepo,
		repos.EmployeeRepo,
		repos.ServiceRepo,
	)

	return container
}
