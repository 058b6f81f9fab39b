package domain

// NotificationType categorises outgoing notification requests.
type NotificationType string

const (
	NotifyVisitorArrival      NotificationType = "visitor_arrival"
	NotifyPackageArrival      NotificationType = "package_arrival"
	NotifyAppointmentReminder NotificationType = "appointment_reminder"
)

// NotificationRequest is the structured payload handed to the external
// notification dispatcher. Delivery transport is out of scope; failures are
// logged and never affect the already-written record.
type NotificationRequest struct {
	Type           NotificationType `json:"type"`
	RecipientEmail string           `json:"recipientEmail"`
	RecipientPhone string           `json:"recipientPhone,omitempty"`
	Subject        string           `json:"subject"`
	Body           string           `json:"body"`
	Urgent         bool             `json:"urgent,omitempty"`
}
