package dto

import (
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeliverPackageRequest records the hand-over of a package to its recipient.
type DeliverPackageRequest struct {
	DeliveredBy string `json:"deliveredBy" binding:"required"`
	Signature   string `json:"signature"`
}

// PackageResponse mirrors domain.Package.
type PackageResponse struct {
	PackageID          string          `json:"packageID"`
	TrackingNumber     string          `json:"trackingNumber,omitempty"`
	Carrier            string          `json:"carrier,omitempty"`
	Type               string          `json:"type"`
	WeightKg           decimal.Decimal `json:"weightKg"`
	Dimensions         string          `json:"dimensions,omitempty"`
	Fragile            bool            `json:"fragile"`
	Urgent             bool            `json:"urgent"`
	Confidential       bool            `json:"confidential"`
	RegistrationNumber string          `json:"registrationNumber"`
	DestinationType    string          `json:"destinationType"`
	EmployeeID         string          `json:"employeeID,omitempty"`
	ServiceID          string          `json:"serviceID,omitempty"`
	SenderName         string          `json:"senderName"`
	SenderCompany      string          `json:"senderCompany,omitempty"`
	ReceivedAt         time.Time       `json:"receivedAt"`
	ReceivedBy         string          `json:"receivedBy"`
	DeliveredAt        *time.Time      `json:"deliveredAt,omitempty"`
	DeliveredBy        string          `json:"deliveredBy,omitempty"`
	State              string          `json:"state"`
}

// ToPackageResponse converts a domain.Package.
func ToPackageResponse(p *domain.Package) PackageResponse {
	return PackageResponse{
		PackageID:          p.PackageID,
		TrackingNumber:     p.TrackingNumber,
		Carrier:            p.Carrier,
		Type:               string(p.Type),
		WeightKg:           p.WeightKg,
		Dimensions:         p.Dimensions,
		Fragile:            p.Fragile,
		Urgent:             p.Urgent,
		Confidential:       p.Confidential,
		RegistrationNumber: p.RegistrationNumber,
		DestinationType:    string(p.DestinationType),
		EmployeeID:         p.EmployeeID,
		ServiceID:          p.ServiceID,
		SenderName:         p.Sender.Name,
		SenderCompany:      p.Sender.Company,
		ReceivedAt:         p.Status.ReceivedAt,
		ReceivedBy:         p.Status.ReceivedBy,
		DeliveredAt:        p.Status.DeliveredAt,
		DeliveredBy:        p.Status.DeliveredBy,
		State:              string(p.State),
	}
}

// ToListPackageResponse converts a slice of domain.Package.
func ToListPackageResponse(packages []domain.Package) []PackageResponse {
	res := make([]PackageResponse, len(packages))
	for i, p := range packages {
		res[i] = ToPackageResponse(&p)
	}
	return res
}

// BadgeResponse mirrors domain.Badge.
type BadgeResponse struct {
	BadgeID         string     `json:"badgeID"`
	Number          string     `json:"number"`
	Zones           []string   `json:"zones"`
	IsAvailable     bool       `json:"isAvailable"`
	HolderVisitorID string     `json:"holderVisitorID,omitempty"`
	AssignedAt      *time.Time `json:"assignedAt,omitempty"`
}

// ToBadgeResponse converts a domain.Badge.
func ToBadgeResponse(b *domain.Badge) BadgeResponse {
	return BadgeResponse{
		BadgeID:         b.BadgeID,
		Number:          b.Number,
		Zones:           b.Zones,
		IsAvailable:     b.IsAvailable,
		HolderVisitorID: b.HolderVisitorID,
		AssignedAt:      b.AssignedAt,
	}
}
