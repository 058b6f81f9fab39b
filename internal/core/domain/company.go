package domain

// Company is a free-text company name offered as a suggestion during
// registration. The collection is append-only: a static reference list is
// seeded once, and operators can add new names on top of it.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	// IsReference marks entries that came from the static seed list.
	IsReference bool `json:"isReference"`
	Timestamps
}

// RecordID implements the store record contract.
func (c Company) RecordID() string { return c.CompanyID }
