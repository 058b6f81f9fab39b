package jsonfile

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
)

type visitorRepository struct {
	col *Collection[domain.Visitor]
}

var _ portsrepo.VisitorRepository = (*visitorRepository)(nil)

func (r *visitorRepository) SaveVisitor(ctx context.Context, visitor domain.Visitor) (domain.Visitor, error) {
	return r.col.Upsert(visitor)
}

func (r *visitorRepository) FindVisitorByID(ctx context.Context, visitorID string) (*domain.Visitor, error) {
	return r.col.Get(visitorID)
}

func (r *visitorRepository) ListVisitors(ctx context.Context) ([]domain.Visitor, error) {
	return r.col.List(), nil
}

func (r *visitorRepository) SearchVisitors(ctx context.Context, query string) ([]domain.Visitor, error) {
	return r.col.Search(query), nil
}

func (r *visitorRepository) DeleteVisitor(ctx context.Context, visitorID string) error {
	return r.col.Delete(visitorID)
}

type appointmentRepository struct {
	col *Collection[domain.Appointment]
}

var _ portsrepo.AppointmentRepository = (*appointmentRepository)(nil)

func (r *appointmentRepository) SaveAppointment(ctx context.Context, appointment domain.Appointment) (domain.Appointment, error) {
	return r.col.Upsert(appointment)
}

func (r *appointmentRepository) FindAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	return r.col.Get(appointmentID)
}

func (r *appointmentRepository) ListAppointments(ctx context.Context) ([]domain.Appointment, error) {
	return r.col.List(), nil
}

func (r *appointmentRepository) ListAppointmentsByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	return r.col.Filter(func(a domain.Appointment) bool {
		return a.Date == date
	}), nil
}

type packageRepository struct {
	col *Collection[domain.Package]
}

var _ portsrepo.PackageRepository = (*packageRepository)(nil)

func (r *packageRepository) SavePackage(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	return r.col.Upsert(pkg)
}

func (r *packageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	return r.col.Get(packageID)
}

func (r *packageRepository) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return r.col.List(), nil
}

func (r *packageRepository) SearchPackages(ctx context.Context, query string) ([]domain.Package, error) {
	return r.col.Search(query), nil
}

type badgeRepository struct {
	col *Collection[domain.Badge]
}

var _ portsrepo.BadgeRepository = (*badgeRepository)(nil)

func (r *badgeRepository) SaveBadge(ctx context.Context, badge domain.Badge) (domain.Badge, error) {
	return r.col.Upsert(badge)
}

func (r *badgeRepository) FindBadgeByNumber(ctx context.Context, number string) (*domain.Badge, error) {
	matches := r.col.Filter(func(b domain.Badge) bool {
		return b.Number == number
	})
	if len(matches) == 0 {
		return nil, apperrors.ErrNotFound
	}
	badge := matches[0]
	return &badge, nil
}

func (r *badgeRepository) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	return r.col.List(), nil
}
