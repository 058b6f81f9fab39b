package dto

import (
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// CreateAppointmentRequest defines the data needed to book an appointment.
type CreateAppointmentRequest struct {
	CitizenName     string `json:"citizenName" binding:"required"`
	CitizenEmail    string `json:"citizenEmail" binding:"omitempty,email"`
	CitizenPhone    string `json:"citizenPhone"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string `json:"time" binding:"required,datetime=15:04"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
	ServiceID       string `json:"serviceID"`
	Purpose         string `json:"purpose" binding:"required"`
	AgentID         string `json:"agentID"`
	AgentName       string `json:"agentName"`
	Priority        string `json:"priority" binding:"omitempty,oneof=normal high urgent"`
}

// ChangeAppointmentStatusRequest carries a requested status transition. The
// status value is validated against the known set before the transition table
// is consulted.
type ChangeAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AppointmentResponse mirrors domain.Appointment.
type AppointmentResponse struct {
	AppointmentID   string `json:"appointmentID"`
	CitizenName     string `json:"citizenName"`
	CitizenEmail    string `json:"citizenEmail,omitempty"`
	CitizenPhone    string `json:"citizenPhone,omitempty"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	ServiceID       string `json:"serviceID,omitempty"`
	Purpose         string `json:"purpose"`
	AgentID         string `json:"agentID,omitempty"`
	AgentName       string `json:"agentName"`
	Priority        string `json:"priority"`
	Status          string `json:"status"`
}

// ToAppointmentResponse converts a domain.Appointment.
func ToAppointmentResponse(a *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID:   a.AppointmentID,
		CitizenName:     a.CitizenName,
		CitizenEmail:    a.CitizenEmail,
		CitizenPhone:    a.CitizenPhone,
		Date:            a.Date,
		Time:            a.Time,
		DurationMinutes: a.DurationMinutes,
		ServiceID:       a.ServiceID,
		Purpose:         a.Purpose,
		AgentID:         a.AgentID,
		AgentName:       a.AgentName,
		Priority:        string(a.Priority),
		Status:          string(a.Status),
	}
}

// ToListAppointmentResponse converts a slice of domain.Appointment.
func ToListAppointmentResponse(appointments []domain.Appointment) []AppointmentResponse {
	res := make([]AppointmentResponse, len(appointments))
	for i, a := range appointments {
		res[i] = ToAppointmentResponse(&a)
	}
	return res
}
