package domain

import "time"

// Timestamps holds standard audit information for domain entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch updates the audit timestamps. The store calls it on every upsert;
// CreatedAt is only set once.
func (t *Timestamps) Touch(now time.Time) {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}

// Audit exposes the embedded timestamps to the store, which stamps them on
// upsert without knowing the concrete entity type.
func (t *Timestamps) Audit() *Timestamps { return t }

// DestinationType says whether a visitor or package is routed to a named
// employee or to a whole service. Exactly one of the two references is
// authoritative per record.
type DestinationType string

const (
	DestinationEmployee DestinationType = "employee"
	DestinationService  DestinationType = "service"
)

// DateLayout is the wire format for calendar dates (ISO-8601 date part).
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for appointment times.
const TimeLayout = "15:04"
