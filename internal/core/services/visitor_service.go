package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
)

// visitorService exposes the visitor log. Visitor records are created by the
// registration workflow; the only mutation afterwards is check-out.
type visitorService struct {
	BaseService
	visitorRepo portsrepo.VisitorRepository
	badgeSvc    portssvc.BadgeSvcFacade
}

// NewVisitorService creates a new visitor service.
func NewVisitorService(visitorRepo portsrepo.VisitorRepository, badgeSvc portssvc.BadgeSvcFacade) portssvc.VisitorSvcFacade {
	return &visitorService{
		visitorRepo: visitorRepo,
		badgeSvc:    badgeSvc,
	}
}

var _ portssvc.VisitorSvcFacade = (*visitorService)(nil)

func (s *visitorService) GetVisitorByID(ctx context.Context, visitorID string) (*domain.Visitor, error) {
	visitor, err := s.visitorRepo.FindVisitorByID(ctx, visitorID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find visitor", slog.String("visitor_id", visitorID))
		}
		return nil, err
	}
	return visitor, nil
}

func (s *visitorService) ListVisitors(ctx context.Context) ([]domain.Visitor, error) {
	return s.visitorRepo.ListVisitors(ctx)
}

func (s *visitorService) ListPresentVisitors(ctx context.Context) ([]domain.Visitor, error) {
	visitors, err := s.visitorRepo.ListVisitors(ctx)
	if err != nil {
		return nil, err
	}
	var present []domain.Visitor
	for _, visitor := range visitors {
		if visitor.Status == domain.VisitorCheckedIn {
			present = append(present, visitor)
		}
	}
	return present, nil
}

func (s *visitorService) SearchVisitors(ctx context.Context, query string) ([]domain.Visitor, error) {
	return s.visitorRepo.SearchVisitors(ctx, query)
}

// CheckOut closes a visit: the check-out time is stamped, the status flips
// and the visitor's badge goes back to the pool. Checking out twice is
// rejected as a validation error.
func (s *visitorService) CheckOut(ctx context.Context, visitorID string) (*domain.Visitor, error) {
	visitor, err := s.GetVisitorByID(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if visitor.Status == domain.VisitorCheckedOut {
		return nil, fmt.Errorf("visitor already checked out: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	visitor.CheckOutTime = &now
	visitor.Status = domain.VisitorCheckedOut

	saved, err := s.visitorRepo.SaveVisitor(ctx, *visitor)
	if err != nil {
		s.LogError(ctx, err, "Failed to save check-out", slog.String("visitor_id", visitorID))
		return nil, err
	}

	if saved.BadgeNumber != "" {
		if err := s.badgeSvc.Release(ctx, saved.BadgeNumber); err != nil {
			// The visit is closed either way; the badge is reconciled by hand
			// at the desk if this ever fails.
			s.LogWarn(ctx, "Failed to release badge on check-out",
				slog.String("badge_number", saved.BadgeNumber),
				slog.String("error", err.Error()))
		}
	}

	s.LogInfo(ctx, "Visitor checked out",
		slog.String("visitor_id", visitorID),
		slog.String("badge_number", saved.BadgeNumber))
	return &saved, nil
}
