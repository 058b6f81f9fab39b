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

// appointmentHandler handles HTTP requests for the appointment book.
type appointmentHandler struct {
	appointmentService portssvc.AppointmentSvcFacade
}

func newAppointmentHandler(as portssvc.AppointmentSvcFacade) *appointmentHandler {
	return &appointmentHandler{appointmentService: as}
}

// registerAppointmentRoutes registers appointment routes.
func registerAppointmentRoutes(rg *gin.RouterGroup, appointmentService portssvc.AppointmentSvcFacade) {
	h := newAppointmentHandler(appointmentService)

	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.createAppointment)
		appointments.GET("", h.listAppointments)
		appointments.GET("/:id", h.getAppointmentByID)
		appointments.POST("/:id/status", h.changeStatus)
	}
}

// createAppointment godoc
// @Summary Book an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param appointment body dto.CreateAppointmentRequest true "Appointment details"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /appointments [post]
func (h *appointmentHandler) createAppointment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAppointment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create appointment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create appointment"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToAppointmentResponse(appointment))
}

// listAppointments godoc
// @Summary List appointments
// @Description Lists appointments, optionally restricted to one day
// @Tags appointments
// @Produce json
// @Param date query string false "Day filter (2006-01-02)"
// @Success 200 {array} dto.AppointmentResponse
// @Router /appointments [get]
func (h *appointmentHandler) listAppointments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointments, err := h.appointmentService.ListAppointments(c.Request.Context(), c.Query("date"))
	if err != nil {
		logger.Error("Failed to list appointments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListAppointmentResponse(appointments))
}

// getAppointmentByID godoc
// @Summary Get an appointment
// @Tags appointments
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 404 {object} map[string]string "Appointment not found"
// @Router /appointments/{id} [get]
func (h *appointmentHandler) getAppointmentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	appointment, err := h.appointmentService.GetAppointmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
			return
		}
		logger.Error("Failed to get appointment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve appointment"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}

// changeStatus godoc
// @Summary Change an appointment's status
// @Description Applies a lifecycle transition; illegal moves are rejected
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param status body dto.ChangeAppointmentStatusRequest true "Target status"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Appointment not found"
// @Failure 409 {object} map[string]string "Illegal transition"
// @Router /appointments/{id}/status [post]
func (h *appointmentHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ChangeAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := h.appointmentService.ChangeStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to change appointment status", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change appointment status"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToAppointmentResponse(appointment))
}
