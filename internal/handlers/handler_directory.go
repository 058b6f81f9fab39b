package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/EssonoDev/dgi_reception_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// directoryHandler handles HTTP requests for the staff directory: employees,
// services and the company suggestion list.
type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

func newDirectoryHandler(ds portssvc.DirectorySvcFacade) *directoryHandler {
	return &directoryHandler{directoryService: ds}
}

// registerDirectoryRoutes registers employee, service and company routes.
func registerDirectoryRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := newDirectoryHandler(directoryService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployeeByID)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}

	services := rg.Group("/services")
	{
		services.POST("", h.createService)
		services.GET("", h.listServices)
		services.GET("/:id", h.getServiceByID)
	}

	companies := rg.Group("/companies")
	{
		companies.POST("", h.addCompany)
		companies.GET("", h.listCompanies)
	}
}

// createEmployee godoc
// @Summary Register a staff member
// @Description Adds an employee to the directory, attached to a service
// @Tags directory
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Matricule already exists"
// @Router /employees [post]
func (h *directoryHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.directoryService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "An employee with this matricule already exists"})
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee, h.serviceName(c, employee.ServiceID)))
}

// listEmployees godoc
// @Summary List or search employees
// @Description Lists the directory; ?q= filters by name, matricule or service
// @Tags directory
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} dto.EmployeeResponse
// @Router /employees [get]
func (h *directoryHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var (
		employees []domain.Employee
		err       error
	)
	if query := c.Query("q"); query != "" {
		employees, err = h.directoryService.SearchEmployees(ctx, query)
	} else {
		employees, err = h.directoryService.ListEmployees(ctx)
	}
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employees"})
		return
	}
	c.JSON(http.StatusOK, h.toEmployeeResponses(c, employees))
}

// toEmployeeResponses maps employees with their service names joined in.
// Service names are cached per request to avoid a lookup per row.
func (h *directoryHandler) toEmployeeResponses(c *gin.Context, employees []domain.Employee) []dto.EmployeeResponse {
	names := make(map[string]string)
	out := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		id := employees[i].ServiceID
		name, ok := names[id]
		if !ok {
			name = h.serviceName(c, id)
			names[id] = name
		}
		out[i] = dto.ToEmployeeResponse(&employees[i], name)
	}
	return out
}

// getEmployeeByID godoc
// @Summary Get an employee
// @Tags directory
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [get]
func (h *directoryHandler) getEmployeeByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employee, err := h.directoryService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		logger.Error("Failed to get employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee, h.serviceName(c, employee.ServiceID)))
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags directory
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [put]
func (h *directoryHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.directoryService.UpdateEmployee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee, h.serviceName(c, employee.ServiceID)))
}

// deleteEmployee godoc
// @Summary Remove an employee from the directory
// @Tags directory
// @Param id path string true "Employee ID"
// @Success 204
// @Failure 404 {object} map[string]string "Employee not found"
// @Router /employees/{id} [delete]
func (h *directoryHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.directoryService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		logger.Error("Failed to delete employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}
	c.Status(http.StatusNoContent)
}

// createService godoc
// @Summary Declare a service
// @Tags directory
// @Accept json
// @Produce json
// @Param service body dto.CreateServiceRequest true "Service details"
// @Success 201 {object} dto.ServiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Service code already exists"
// @Router /services [post]
func (h *directoryHandler) createService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	service, err := h.directoryService.CreateService(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "A service with this code already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create service"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToServiceResponse(service))
}

// listServices godoc
// @Summary List services
// @Tags directory
// @Produce json
// @Success 200 {array} dto.ServiceResponse
// @Router /services [get]
func (h *directoryHandler) listServices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	services, err := h.directoryService.ListServices(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list services", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list services"})
		return
	}
	out := make([]dto.ServiceResponse, len(services))
	for i := range services {
		out[i] = dto.ToServiceResponse(&services[i])
	}
	c.JSON(http.StatusOK, out)
}

// getServiceByID godoc
// @Summary Get a service
// @Tags directory
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} dto.ServiceResponse
// @Failure 404 {object} map[string]string "Service not found"
// @Router /services/{id} [get]
func (h *directoryHandler) getServiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	service, err := h.directoryService.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
			return
		}
		logger.Error("Failed to get service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve service"})
		return
	}
	c.JSON(http.StatusOK, dto.ToServiceResponse(service))
}

// addCompany godoc
// @Summary Add a company to the suggestion list
// @Tags directory
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company name"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Company already listed"
// @Router /companies [post]
func (h *directoryHandler) addCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	company, err := h.directoryService.AddCompany(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Company already listed"})
			return
		}
		logger.Error("Failed to add company", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add company"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List known companies
// @Tags directory
// @Produce json
// @Success 200 {array} dto.CompanyResponse
// @Router /companies [get]
func (h *directoryHandler) listCompanies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companies, err := h.directoryService.ListCompanies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list companies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list companies"})
		return
	}
	out := make([]dto.CompanyResponse, len(companies))
	for i := range companies {
		out[i] = dto.ToCompanyResponse(&companies[i])
	}
	c.JSON(http.StatusOK, out)
}

// serviceName resolves a service id to its display name, best effort.
func (h *directoryHandler) serviceName(c *gin.Context, serviceID string) string {
	if serviceID == "" {
		return ""
	}
	service, err := h.directoryService.GetServiceByID(c.Request.Context(), serviceID)
	if err != nil {
		return ""
	}
	return service.Name
}
