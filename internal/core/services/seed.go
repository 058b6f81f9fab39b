package services

import (
	"context"
	"fmt"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/google/uuid"
)

// Static reference data installed on first start. Services and the badge
// pool come from the reception desk's standing configuration; the company
// list is the reference set operators extend over time.

var seedServices = []domain.Service{
	{Code: "DGE", Name: "Direction des Grandes Entreprises", Location: "Bâtiment A, 2e étage"},
	{Code: "CIME", Name: "Centre des Impôts des Moyennes Entreprises", Location: "Bâtiment A, 1er étage"},
	{Code: "RECOUV", Name: "Service du Recouvrement", Location: "Bâtiment B, rez-de-chaussée"},
	{Code: "CONT", Name: "Service du Contentieux", Location: "Bâtiment B, 1er étage"},
	{Code: "ACCUEIL", Name: "Service Accueil et Orientation", Location: "Hall principal"},
}

var seedBadges = []domain.Badge{
	{Number: "B-001", Zones: []string{"hall"}},
	{Number: "B-002", Zones: []string{"hall"}},
	{Number: "B-003", Zones: []string{"hall", "bureaux"}},
	{Number: "B-004", Zones: []string{"hall", "bureaux"}},
	{Number: "B-005", Zones: []string{"hall", "bureaux", "archives"}},
	{Number: "B-006", Zones: []string{"hall", "bureaux", "archives"}},
	{Number: "B-007", Zones: []string{"hall", "bureaux", "direction"}},
	{Number: "B-008", Zones: []string{"hall", "bureaux", "archives", "direction"}},
}

var seedCompanies = []string{
	"Total Energies Gabon",
	"Assala Energy",
	"BGFI Bank",
	"UGB",
	"Gabon Telecom",
	"Airtel Gabon",
	"SEEG",
	"Olam Gabon",
	"Comilog",
	"Setrag",
}

// Seed installs the reference data when the corresponding collections are
// empty. Running it against a populated store is a no-op per collection.
func (s *directoryService) Seed(ctx context.Context) error {
	existing, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		for _, svc := range seedServices {
			svc.ServiceID = uuid.NewString()
			if _, err := s.serviceRepo.SaveService(ctx, svc); err != nil {
				return fmt.Errorf("failed to seed service %s: %w", svc.Code, err)
			}
		}
		s.LogInfo(ctx, "Seeded reference services")
	}

	badges, err := s.badgeRepo.ListBadges(ctx)
	if err != nil {
		return err
	}
	if len(badges) == 0 {
		for _, badge := range seedBadges {
			badge.BadgeID = uuid.NewString()
			badge.IsAvailable = true
			if _, err := s.badgeRepo.SaveBadge(ctx, badge); err != nil {
				return fmt.Errorf("failed to seed badge %s: %w", badge.Number, err)
			}
		}
		s.LogInfo(ctx, "Seeded badge pool")
	}

	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return err
	}
	if len(companies) == 0 {
		for _, name := range seedCompanies {
			company := domain.Company{
				CompanyID:   uuid.NewString(),
				Name:        name,
				IsReference: true,
			}
			if _, err := s.companyRepo.SaveCompany(ctx, company); err != nil {
				return fmt.Errorf("failed to seed company %s: %w", name, err)
			}
		}
		s.LogInfo(ctx, "Seeded reference companies")
	}

	return nil
}
