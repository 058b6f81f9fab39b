package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PackageType is the physical category of an intake.
type PackageType string

const (
	PackageDocument   PackageType = "document"
	PackageColis      PackageType = "colis"
	PackageCourrier   PackageType = "courrier"
	PackageRecommande PackageType = "recommande"
)

// PackageState is the lifecycle state of a package. It is deliberately a
// distinct type from PackageStatus, which is the received/delivered record.
type PackageState string

const (
	PackageReceived  PackageState = "received"
	PackageNotified  PackageState = "notified"
	PackageDelivered PackageState = "delivered"
	PackageReturned  PackageState = "returned"
)

// packageTransitions mirrors the appointment table: state -> legal targets.
var packageTransitions = map[PackageState][]PackageState{
	PackageReceived: {PackageNotified, PackageDelivered, PackageReturned},
	PackageNotified: {PackageDelivered, PackageReturned},
}

// ValidPackageTransition reports whether from -> to is a legal move.
func ValidPackageTransition(from, to PackageState) bool {
	for _, allowed := range packageTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// PackageStatus records who handled the package and when.
type PackageStatus struct {
	ReceivedAt  time.Time  `json:"receivedAt"`
	ReceivedBy  string     `json:"receivedBy"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	DeliveredBy string     `json:"deliveredBy,omitempty"`
	Signature   string     `json:"signature,omitempty"`
}

// Sender identifies where a package came from.
type Sender struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

// Package is a parcel, letter or document received at the front desk.
type Package struct {
	PackageID      string      `json:"packageID"`
	TrackingNumber string      `json:"trackingNumber"`
	Carrier        string      `json:"carrier"`
	Type           PackageType `json:"type"`

	WeightKg   decimal.Decimal `json:"weightKg"`
	Dimensions string          `json:"dimensions"`

	Fragile      bool `json:"fragile"`
	Urgent       bool `json:"urgent"`
	Confidential bool `json:"confidential"`

	RegistrationNumber string `json:"registrationNumber"`

	DestinationType DestinationType `json:"destinationType"`
	EmployeeID      string          `json:"employeeID,omitempty"`
	ServiceID       string          `json:"serviceID,omitempty"`

	Sender Sender        `json:"sender"`
	Status PackageStatus `json:"status"`
	State  PackageState  `json:"state"`
	Timestamps
}

// RecordID implements the store record contract.
func (p Package) RecordID() string { return p.PackageID }
