package domain

// Employee is a member of staff that visitors and packages can be routed to.
// The service affiliation is a normalized reference; the display name of the
// service is joined at read time by the directory service.
type Employee struct {
	EmployeeID string `json:"employeeID"`
	Matricule  string `json:"matricule"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ServiceID  string `json:"serviceID"`
	Position   string `json:"position"`
	Office     string `json:"office"`
	Floor      string `json:"floor"`
	IsActive   bool   `json:"isActive"`
	Timestamps
}

// RecordID implements the store record contract.
func (e Employee) RecordID() string { return e.EmployeeID }

// FullName returns the "First Last" display form used by reports and by the
// appointment matcher.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
