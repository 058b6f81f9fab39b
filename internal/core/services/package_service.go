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
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
)

// packageService exposes the package log. Intake happens through the
// registration workflow; this service covers the delivery side.
type packageService struct {
	BaseService
	packageRepo portsrepo.PackageRepository
}

// NewPackageService creates a new package service.
func NewPackageService(packageRepo portsrepo.PackageRepository) portssvc.PackageSvcFacade {
	return &packageService{packageRepo: packageRepo}
}

var _ portssvc.PackageSvcFacade = (*packageService)(nil)

func (s *packageService) GetPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	pkg, err := s.packageRepo.FindPackageByID(ctx, packageID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find package", slog.String("package_id", packageID))
		}
		return nil, err
	}
	return pkg, nil
}

func (s *packageService) ListPackages(ctx context.Context) ([]domain.Package, error) {
	return s.packageRepo.ListPackages(ctx)
}

func (s *packageService) SearchPackages(ctx context.Context, query string) ([]domain.Package, error) {
	return s.packageRepo.SearchPackages(ctx, query)
}

// Deliver hands a package over to its recipient and records who signed.
func (s *packageService) Deliver(ctx context.Context, packageID string, req dto.DeliverPackageRequest) (*domain.Package, error) {
	pkg, err := s.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !domain.ValidPackageTransition(pkg.State, domain.PackageDelivered) {
		return nil, fmt.Errorf("%s -> %s: %w", pkg.State, domain.PackageDelivered, apperrors.ErrInvalidTransition)
	}

	now := time.Now()
	pkg.State = domain.PackageDelivered
	pkg.Status.DeliveredAt = &now
	pkg.Status.DeliveredBy = req.DeliveredBy
	pkg.Status.Signature = req.Signature

	saved, err := s.packageRepo.SavePackage(ctx, *pkg)
	if err != nil {
		s.LogError(ctx, err, "Failed to save package delivery", slog.String("package_id", packageID))
		return nil, err
	}
	s.LogInfo(ctx, "Package delivered",
		slog.String("package_id", packageID),
		slog.String("delivered_by", req.DeliveredBy))
	return &saved, nil
}

// Return sends a package back to its sender.
func (s *packageService) Return(ctx context.Context, packageID string) (*domain.Package, error) {
	pkg, err := s.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !domain.ValidPackageTransition(pkg.State, domain.PackageReturned) {
		return nil, fmt.Errorf("%s -> %s: %w", pkg.State, domain.PackageReturned, apperrors.ErrInvalidTransition)
	}

	pkg.State = domain.PackageReturned
	saved, err := s.packageRepo.SavePackage(ctx, *pkg)
	if err != nil {
		s.LogError(ctx, err, "Failed to save package return", slog.String("package_id", packageID))
		return nil, err
	}
	s.LogInfo(ctx, "Package returned to sender", slog.String("package_id", packageID))
	return &saved, nil
}
