package domain

import "fmt"

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentArrived   AppointmentStatus = "arrived"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// AppointmentPriority is the urgency label attached at booking time.
type AppointmentPriority string

const (
	PriorityNormal AppointmentPriority = "normal"
	PriorityHigh   AppointmentPriority = "high"
	PriorityUrgent AppointmentPriority = "urgent"
)

// appointmentTransitions maps each status to the statuses it may legally move
// to. Anything absent from the map is a terminal state.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentArrived, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow},
	AppointmentArrived:   {AppointmentCompleted},
}

// ValidAppointmentTransition reports whether from -> to is a legal move.
func ValidAppointmentTransition(from, to AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ParseAppointmentStatus validates an externally supplied status string.
// Any value outside the known set is rejected.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case AppointmentPending, AppointmentConfirmed, AppointmentArrived,
		AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return AppointmentStatus(s), nil
	}
	return "", fmt.Errorf("unknown appointment status %q", s)
}

// Appointment is a pre-booked visit by a citizen.
type Appointment struct {
	AppointmentID string `json:"appointmentID"`
	CitizenName   string `json:"citizenName"`
	CitizenEmail  string `json:"citizenEmail"`
	CitizenPhone  string `json:"citizenPhone"`

	Date            string `json:"date"` // DateLayout
	Time            string `json:"time"` // TimeLayout
	DurationMinutes int    `json:"durationMinutes"`

	ServiceID string `json:"serviceID"`
	Purpose   string `json:"purpose"`

	// AgentID references the host employee. AgentName is the legacy free-text
	// field still filled by the booking form; the matcher falls back to a
	// substring comparison on it when no id is available.
	AgentID   string `json:"agentID,omitempty"`
	AgentName string `json:"agentName"`

	Priority AppointmentPriority `json:"priority"`
	Status   AppointmentStatus   `json:"status"`
	Timestamps
}

// RecordID implements the store record contract.
func (a Appointment) RecordID() string { return a.AppointmentID }

// Pending reports whether the appointment is still awaiting the citizen,
// i.e. eligible for walk-in auto-matching.
func (a Appointment) Pending() bool {
	return a.Status == AppointmentPending || a.Status == AppointmentConfirmed
}
