package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
)

// badgeService assigns access badges from the pool. A badge is compatible
// when it is available and its granted zone set covers the requested zones.
type badgeService struct {
	BaseService
	badgeRepo portsrepo.BadgeRepository
}

// NewBadgeService creates a new badge service.
func NewBadgeService(badgeRepo portsrepo.BadgeRepository) portssvc.BadgeSvcFacade {
	return &badgeService{badgeRepo: badgeRepo}
}

var _ portssvc.BadgeSvcFacade = (*badgeService)(nil)

func (s *badgeService) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	return s.badgeRepo.ListBadges(ctx)
}

func (s *badgeService) ListAvailableBadges(ctx context.Context, zones []string) ([]domain.Badge, error) {
	badges, err := s.badgeRepo.ListBadges(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Badge
	for _, badge := range badges {
		if badge.IsAvailable && badge.Covers(zones) {
			out = append(out, badge)
		}
	}
	return out, nil
}

// Allocate offers the first compatible badge, with no tightest-fit
// optimization. No compatible badge is a normal outcome surfaced as
// ErrNoBadgeAvailable: the operator decides whether to reduce the requested
// zones or proceed without a badge.
func (s *badgeService) Allocate(ctx context.Context, zones []string, visitorID string) (*domain.Badge, error) {
	candidates, err := s.ListAvailableBadges(ctx, zones)
	if err != nil {
		s.LogError(ctx, err, "Failed to list badges for allocation")
		return nil, err
	}
	if len(candidates) == 0 {
		s.LogInfo(ctx, "No compatible badge available", slog.Any("zones", zones))
		return nil, apperrors.ErrNoBadgeAvailable
	}

	badge := candidates[0]
	now := time.Now()
	badge.IsAvailable = false
	badge.HolderVisitorID = visitorID
	badge.AssignedAt = &now

	saved, err := s.badgeRepo.SaveBadge(ctx, badge)
	if err != nil {
		s.LogError(ctx, err, "Failed to assign badge", slog.String("badge_number", badge.Number))
		return nil, err
	}

	s.LogInfo(ctx, "Badge assigned",
		slog.String("badge_number", saved.Number),
		slog.String("visitor_id", visitorID))
	return &saved, nil
}

func (s *badgeService) Release(ctx context.Context, badgeNumber string) error {
	badge, err := s.badgeRepo.FindBadgeByNumber(ctx, badgeNumber)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Unknown badge numbers are tolerated; nothing to release.
		return nil
	}
	if err != nil {
		return err
	}
	if badge.IsAvailable {
		return nil
	}

	badge.IsAvailable = true
	badge.HolderVisitorID = ""
	badge.AssignedAt = nil

	if _, err := s.badgeRepo.SaveBadge(ctx, *badge); err != nil {
		s.LogError(ctx, err, "Failed to release badge", slog.String("badge_number", badgeNumber))
		return err
	}
	s.LogInfo(ctx, "Badge released", slog.String("badge_number", badgeNumber))
	return nil
}
