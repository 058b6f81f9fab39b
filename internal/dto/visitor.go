package dto

import (
	"fmt"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// VisitorResponse mirrors domain.Visitor for API consumers. Durations are
// numeric minutes internally; the label is formatted here at the boundary.
type VisitorResponse struct {
	VisitorID          string     `json:"visitorID"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Company            string     `json:"company,omitempty"`
	Phone              string     `json:"phone"`
	Email              string     `json:"email,omitempty"`
	IDDocumentType     string     `json:"idDocumentType"`
	IDDocumentNumber   string     `json:"idDocumentNumber"`
	Purpose            string     `json:"purpose"`
	DestinationType    string     `json:"destinationType"`
	EmployeeID         string     `json:"employeeID,omitempty"`
	ServiceID          string     `json:"serviceID,omitempty"`
	RegistrationNumber string     `json:"registrationNumber"`
	BadgeNumber        string     `json:"badgeNumber,omitempty"`
	ExpectedDuration   string     `json:"expectedDuration"`
	CheckInTime        time.Time  `json:"checkInTime"`
	CheckOutTime       *time.Time `json:"checkOutTime,omitempty"`
	Status             string     `json:"status"`
	AppointmentID      string     `json:"appointmentID,omitempty"`
}

// ToVisitorResponse converts a domain.Visitor.
func ToVisitorResponse(v *domain.Visitor) VisitorResponse {
	return VisitorResponse{
		VisitorID:          v.VisitorID,
		FirstName:          v.FirstName,
		LastName:           v.LastName,
		Company:            v.Company,
		Phone:              v.Phone,
		Email:              v.Email,
		IDDocumentType:     v.IDDocumentType,
		IDDocumentNumber:   v.IDDocumentNumber,
		Purpose:            v.Purpose,
		DestinationType:    string(v.DestinationType),
		EmployeeID:         v.EmployeeID,
		ServiceID:          v.ServiceID,
		RegistrationNumber: v.RegistrationNumber,
		BadgeNumber:        v.BadgeNumber,
		ExpectedDuration:   FormatDurationMinutes(float64(v.ExpectedDurationMinutes)),
		CheckInTime:        v.CheckInTime,
		CheckOutTime:       v.CheckOutTime,
		Status:             string(v.Status),
		AppointmentID:      v.AppointmentID,
	}
}

// ToListVisitorResponse converts a slice of domain.Visitor.
func ToListVisitorResponse(visitors []domain.Visitor) []VisitorResponse {
	res := make([]VisitorResponse, len(visitors))
	for i, v := range visitors {
		res[i] = ToVisitorResponse(&v)
	}
	return res
}

// ListVisitorsResponse wraps the list of visitors.
type ListVisitorsResponse struct {
	Visitors []VisitorResponse `json:"visitors"`
}

// FormatDurationMinutes renders a minute count as a front-desk label,
// e.g. "45 min" or "1h30".
func FormatDurationMinutes(minutes float64) string {
	m := int(minutes + 0.5)
	if m < 60 {
		return fmt.Sprintf("%d min", m)
	}
	return fmt.Sprintf("%dh%02d", m/60, m%60)
}
