package dto

import (
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StartRegistrationRequest opens a new guided registration session.
type StartRegistrationRequest struct {
	Kind string `json:"kind" binding:"required,oneof=visitor package"`
}

// UpdateRegistrationRequest merges step data into the session draft. Pointers
// distinguish "not sent" from zero values, so an update for one step never
// clobbers the data already entered on another.
type UpdateRegistrationRequest struct {
	FirstName        *string          `json:"firstName"`
	LastName         *string          `json:"lastName"`
	Company          *string          `json:"company"`
	Phone            *string          `json:"phone"`
	Email            *string          `json:"email"`
	IDDocumentType   *string          `json:"idDocumentType"`
	IDDocumentNumber *string          `json:"idDocumentNumber"`
	BadgeRequired    *bool            `json:"badgeRequired"`
	BadgeZones       *[]string        `json:"badgeZones"`
	Purpose          *string          `json:"purpose"`
	RelationshipType *string          `json:"relationshipType"`
	ExpectedDuration *int             `json:"expectedDurationMinutes"`
	PackageType      *string          `json:"packageType"`
	TrackingNumber   *string          `json:"trackingNumber"`
	Carrier          *string          `json:"carrier"`
	WeightKg         *decimal.Decimal `json:"weightKg"`
	Dimensions       *string          `json:"dimensions"`
	Fragile          *bool            `json:"fragile"`
	Urgent           *bool            `json:"urgent"`
	Confidential     *bool            `json:"confidential"`
	DestinationType  *string          `json:"destinationType"`
	EmployeeID       *string          `json:"employeeID"`
	ServiceID        *string          `json:"serviceID"`
}

// ApplyTo merges the non-nil fields into the draft.
func (r UpdateRegistrationRequest) ApplyTo(d *domain.RegistrationDraft) {
	if r.FirstName != nil {
		d.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		d.LastName = *r.LastName
	}
	if r.Company != nil {
		d.Company = *r.Company
	}
	if r.Phone != nil {
		d.Phone = *r.Phone
	}
	if r.Email != nil {
		d.Email = *r.Email
	}
	if r.IDDocumentType != nil {
		d.IDDocumentType = *r.IDDocumentType
	}
	if r.IDDocumentNumber != nil {
		d.IDDocumentNumber = *r.IDDocumentNumber
	}
	if r.BadgeRequired != nil {
		d.BadgeRequired = *r.BadgeRequired
	}
	if r.BadgeZones != nil {
		d.BadgeZones = *r.BadgeZones
	}
	if r.Purpose != nil {
		d.Purpose = *r.Purpose
	}
	if r.RelationshipType != nil {
		d.RelationshipType = *r.RelationshipType
	}
	if r.ExpectedDuration != nil {
		d.ExpectedDuration = *r.ExpectedDuration
	}
	if r.PackageType != nil {
		d.PackageType = domain.PackageType(*r.PackageType)
	}
	if r.TrackingNumber != nil {
		d.TrackingNumber = *r.TrackingNumber
	}
	if r.Carrier != nil {
		d.Carrier = *r.Carrier
	}
	if r.WeightKg != nil {
		d.WeightKg = *r.WeightKg
	}
	if r.Dimensions != nil {
		d.Dimensions = *r.Dimensions
	}
	if r.Fragile != nil {
		d.Fragile = *r.Fragile
	}
	if r.Urgent != nil {
		d.Urgent = *r.Urgent
	}
	if r.Confidential != nil {
		d.Confidential = *r.Confidential
	}
	if r.DestinationType != nil {
		d.DestinationType = domain.DestinationType(*r.DestinationType)
	}
	if r.EmployeeID != nil {
		d.EmployeeID = *r.EmployeeID
	}
	if r.ServiceID != nil {
		d.ServiceID = *r.ServiceID
	}
}

// RegistrationSessionResponse is the state of a workflow session as seen by
// the operator UI.
type RegistrationSessionResponse struct {
	SessionID string                   `json:"sessionID"`
	Kind      string                   `json:"kind"`
	Step      string                   `json:"step"`
	Draft     domain.RegistrationDraft `json:"draft"`
	// Errors lists the validation messages of the last rejected transition.
	Errors []string `json:"errors,omitempty"`
}

// SubmitRegistrationResponse reports the outcome of a successful submission.
type SubmitRegistrationResponse struct {
	RecordID             string `json:"recordID"`
	Kind                 string `json:"kind"`
	RegistrationNumber   string `json:"registrationNumber"`
	LookupToken          string `json:"lookupToken"`
	BadgeNumber          string `json:"badgeNumber,omitempty"`
	MatchedAppointmentID string `json:"matchedAppointmentID,omitempty"`
}
