package repositories

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// VisitorRepository persists visitor check-in records.
type VisitorRepository interface {
	SaveVisitor(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error)
	FindVisitorByID(ctx context.Context, visitorID string) (*domain.Visitor, error)
	ListVisitors(ctx context.Context) ([]domain.Visitor, error)
	SearchVisitors(ctx context.Context, query string) ([]domain.Visitor, error)
	DeleteVisitor(ctx context.Context, visitorID string) error
}

// AppointmentRepository persists booked appointments.
type AppointmentRepository interface {
	SaveAppointment(ctx context.Context, appointment domain.Appointment) (domain.Appointment, error)
	FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context) ([]domain.Appointment, error)
	ListAppointmentsByDate(ctx context.Context, date string) ([]domain.Appointment, error)
}

// PackageRepository persists package intake records.
type PackageRepository interface {
	SavePackage(ctx context.Context, pkg domain.Package) (domain.Package, error)
	FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error)
	ListPackages(ctx context.Context) ([]domain.Package, error)
	SearchPackages(ctx context.Context, query string) ([]domain.Package, error)
}

// BadgeRepository persists the access badge pool.
type BadgeRepository interface {
	SaveBadge(ctx context.Context, badge domain.Badge) (domain.Badge, error)
	FindBadgeByNumber(ctx context.Context, number string) (*domain.Badge, error)
	ListBadges(ctx context.Context) ([]domain.Badge, error)
}
