// Package repositories defines the persistence facades the services depend
// on. The json file adapter implements them; tests substitute mocks.
package repositories

// RepositoryProvider bundles all repositories for service container wiring.
type RepositoryProvider struct {
	EmployeeRepo    EmployeeRepository
	ServiceRepo     ServiceRepository
	CompanyRepo     CompanyRepository
	VisitorRepo     VisitorRepository
	AppointmentRepo AppointmentRepository
	PackageRepo     PackageRepository
	BadgeRepo       BadgeRepository
}
