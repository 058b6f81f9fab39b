package domain

import "time"

// VisitorStatus is the presence state of a visitor.
type VisitorStatus string

const (
	VisitorCheckedIn  VisitorStatus = "checked_in"
	VisitorCheckedOut VisitorStatus = "checked_out"
)

// PurposeFamilyVisit is the sentinel purpose that requires a relationship
// sub-field during registration ("Visite Parent (frère)" etc.).
const PurposeFamilyVisit = "Visite Parent"

// Visitor is a completed check-in record produced by the registration
// workflow. It is immutable after creation except for check-out, which sets
// CheckOutTime and flips the status.
type Visitor struct {
	VisitorID        string `json:"visitorID"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Company          string `json:"company"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	IDDocumentType   string `json:"idDocumentType"`
	IDDocumentNumber string `json:"idDocumentNumber"`

	// Purpose is free text; for the family-visit sentinel the relationship
	// type is appended in parentheses.
	Purpose string `json:"purpose"`

	DestinationType DestinationType `json:"destinationType"`
	EmployeeID      string          `json:"employeeID,omitempty"`
	ServiceID       string          `json:"serviceID,omitempty"`

	RegistrationNumber string `json:"registrationNumber"`
	LookupToken        string `json:"lookupToken"`
	BadgeNumber        string `json:"badgeNumber,omitempty"`

	// Expected visit duration in minutes. Formatted to a display label only
	// at the DTO boundary.
	ExpectedDurationMinutes int `json:"expectedDurationMinutes"`

	CheckInTime  time.Time     `json:"checkInTime"`
	CheckOutTime *time.Time    `json:"checkOutTime,omitempty"`
	Status       VisitorStatus `json:"status"`

	// AppointmentID is set when the matcher linked this walk-in to a booked
	// appointment.
	AppointmentID string `json:"appointmentID,omitempty"`
	Timestamps
}

// RecordID implements the store record contract.
func (v Visitor) RecordID() string { return v.VisitorID }

// FullName returns the "First Last" display form.
func (v Visitor) FullName() string {
	return v.FirstName + " " + v.LastName
}

// VisitDurationMinutes returns the realised visit duration, or false while
// the visitor is still checked in.
func (v Visitor) VisitDurationMinutes() (float64, bool) {
	if v.CheckOutTime == nil {
		return 0, false
	}
	return v.CheckOutTime.Sub(v.CheckInTime).Minutes(), true
}
