package services

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
)

// VisitorSvcFacade exposes the visitor log.
type VisitorSvcFacade interface {
	GetVisitorByID(ctx context.Context, visitorID string) (*domain.Visitor, error)
	ListVisitors(ctx context.Context) ([]domain.Visitor, error)
	ListPresentVisitors(ctx context.Context) ([]domain.Visitor, error)
	SearchVisitors(ctx context.Context, query string) ([]domain.Visitor, error)
	// CheckOut stamps the check-out time, flips the status and releases the
	// visitor's badge back to the pool.
	CheckOut(ctx context.Context, visitorID string) (*domain.Visitor, error)
}

// AppointmentSvcFacade exposes appointment booking and the walk-in matcher.
type AppointmentSvcFacade interface {
	CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*domain.Appointment, error)
	GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error)
	ListAppointments(ctx context.Context, date string) ([]domain.Appointment, error)
	ChangeStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) (*domain.Appointment, error)

	// FindMatch returns the first pending/confirmed appointment whose citizen
	// and agent names contain the given names and whose date equals the visit
	// date. A nil result with nil error means no match: the visit proceeds as
	// unplanned.
	FindMatch(ctx context.Context, visitorName, hostName, date string) (*domain.Appointment, error)
	// CompleteMatch transitions a matched appointment to completed.
	CompleteMatch(ctx context.Context, appointmentID string) error
}

// BadgeSvcFacade exposes the access badge pool.
type BadgeSvcFacade interface {
	ListBadges(ctx context.Context) ([]domain.Badge, error)
	ListAvailableBadges(ctx context.Context, zones []string) ([]domain.Badge, error)
	// Allocate assigns the first available badge covering the requested
	// zones; apperrors.ErrNoBadgeAvailable when none does.
	Allocate(ctx context.Context, zones []string, visitorID string) (*domain.Badge, error)
	// Release returns a badge to the pool. Releasing an unassigned badge is a
	// no-op.
	Release(ctx context.Context, badgeNumber string) error
}

// PackageSvcFacade exposes the package log.
type PackageSvcFacade interface {
	GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error)
	ListPackages(ctx context.Context) ([]domain.Package, error)
	SearchPackages(ctx context.Context, query string) ([]domain.Package, error)
	Deliver(ctx context.Context, packageID string, req dto.DeliverPackageRequest) (*domain.Package, error)
	Return(ctx context.Context, packageID string) (*domain.Package, error)
}
