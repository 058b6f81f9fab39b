// Package services defines the facades the handlers depend on, decoupling
// them from the concrete service implementations.
package services

// ServiceContainer bundles all service facades for route registration.
type ServiceContainer struct {
	Directory    DirectorySvcFacade
	Visitor      VisitorSvcFacade
	Appointment  AppointmentSvcFacade
	Badge        BadgeSvcFacade
	Package      PackageSvcFacade
	Registration RegistrationSvcFacade
	Reporting    ReportingSvcFacade
}
