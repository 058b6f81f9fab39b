package dto

import (
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to register a staff member.
type CreateEmployeeRequest struct {
	Matricule string `json:"matricule" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	ServiceID string `json:"serviceID" binding:"required"`
	Position  string `json:"position"`
	Office    string `json:"office"`
	Floor     string `json:"floor"`
}

// UpdateEmployeeRequest defines the fields allowed for updating an employee.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	ServiceID *string `json:"serviceID"`
	Position  *string `json:"position"`
	Office    *string `json:"office"`
	Floor     *string `json:"floor"`
	IsActive  *bool   `json:"isActive"`
}

// EmployeeResponse mirrors domain.Employee with the service name joined in at
// read time (the employee record itself only stores the service id).
type EmployeeResponse struct {
	EmployeeID  string `json:"employeeID"`
	Matricule   string `json:"matricule"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceID   string `json:"serviceID"`
	ServiceName string `json:"serviceName,omitempty"`
	Position    string `json:"position"`
	Office      string `json:"office"`
	Floor       string `json:"floor"`
	IsActive    bool   `json:"isActive"`
}

// ToEmployeeResponse converts a domain.Employee, joining the display name of
// its service when known.
func ToEmployeeResponse(e *domain.Employee, serviceName string) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:  e.EmployeeID,
		Matricule:   e.Matricule,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		Phone:       e.Phone,
		ServiceID:   e.ServiceID,
		ServiceName: serviceName,
		Position:    e.Position,
		Office:      e.Office,
		Floor:       e.Floor,
		IsActive:    e.IsActive,
	}
}

// CreateServiceRequest defines the data needed to declare a service.
type CreateServiceRequest struct {
	Code          string `json:"code" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	ResponsableID string `json:"responsableID"`
	Location      string `json:"location"`
}

// ServiceResponse mirrors domain.Service.
type ServiceResponse struct {
	ServiceID     string   `json:"serviceID"`
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ResponsableID string   `json:"responsableID,omitempty"`
	Location      string   `json:"location"`
	EmployeeIDs   []string `json:"employeeIDs"`
}

// ToServiceResponse converts a domain.Service.
func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ServiceID:     s.ServiceID,
		Code:          s.Code,
		Name:          s.Name,
		Description:   s.Description,
		ResponsableID: s.ResponsableID,
		Location:      s.Location,
		EmployeeIDs:   s.EmployeeIDs,
	}
}

// CreateCompanyRequest adds a company name to the suggestion list.
type CreateCompanyRequest struct {
	Name string `json:"name" binding:"required"`
}

// CompanyResponse mirrors domain.Company.
type CompanyResponse struct {
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	IsReference bool   `json:"isReference"`
}

// ToCompanyResponse converts a domain.Company.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{CompanyID: c.CompanyID, Name: c.Name, IsReference: c.IsReference}
}
