package domain

import "time"

// Badge is a physical access badge from the front-desk pool.
type Badge struct {
	BadgeID string `json:"badgeID"`
	Number  string `json:"number"`
	// Zones is the set of physical areas the badge grants access to.
	Zones           []string   `json:"zones"`
	IsAvailable     bool       `json:"isAvailable"`
	HolderVisitorID string     `json:"holderVisitorID,omitempty"`
	AssignedAt      *time.Time `json:"assignedAt,omitempty"`
	Timestamps
}

// RecordID implements the store record contract.
func (b Badge) RecordID() string { return b.BadgeID }

// Covers reports whether the badge's granted zones are a superset of the
// requested zones.
func (b Badge) Covers(required []string) bool {
	granted := make(map[string]struct{}, len(b.Zones))
	for _, z := range b.Zones {
		granted[z] = struct{}{}
	}
	for _, z := range required {
		if _, ok := granted[z]; !ok {
			return false
		}
	}
	return true
}
