package domain

// Service is an administrative unit (direction, bureau) inside the tax
// administration. Services are seeded once at initialization and rarely
// mutated afterwards.
type Service struct {
	ServiceID   string `json:"serviceID"`
	Code        string `json:"code"` // short unique mnemonic, e.g. "DGE"
	Name        string `json:"name"`
	Description string `json:"description"`
	// ResponsableID is a weak reference to an Employee; it may dangle if the
	// employee is later removed from the directory.
	ResponsableID string   `json:"responsableID"`
	Location      string   `json:"location"`
	EmployeeIDs   []string `json:"employeeIDs"`
	Timestamps
}

// RecordID implements the store record contract.
func (s Service) RecordID() string { return s.ServiceID }
