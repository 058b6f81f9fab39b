package handlers

import (
	"context"
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

// registrationHandler exposes the guided check-in workflow over HTTP. Each
// session is one operator walking through the steps; validation failures come
// back as message lists with a 422, never as 5xx.
type registrationHandler struct {
	registrationService portssvc.RegistrationSvcFacade
}

func newRegistrationHandler(rs portssvc.RegistrationSvcFacade) *registrationHandler {
	return &registrationHandler{registrationService: rs}
}

// registerRegistrationRoutes registers workflow session routes.
func registerRegistrationRoutes(rg *gin.RouterGroup, registrationService portssvc.RegistrationSvcFacade) {
	h := newRegistrationHandler(registrationService)

	registrations := rg.Group("/registrations")
	{
		registrations.POST("", h.startRegistration)
		registrations.GET("/:id", h.getRegistration)
		registrations.PUT("/:id", h.updateRegistration)
		registrations.POST("/:id/next", h.nextStep)
		registrations.POST("/:id/previous", h.previousStep)
		registrations.POST("/:id/submit", h.submitRegistration)
		registrations.DELETE("/:id", h.cancelRegistration)
	}
}

func toSessionResponse(session *portssvc.RegistrationSession, errs []string) dto.RegistrationSessionResponse {
	return dto.RegistrationSessionResponse{
		SessionID: session.SessionID,
		Kind:      string(session.Kind),
		Step:      session.Step.String(),
		Draft:     session.Draft,
		Errors:    errs,
	}
}

// startRegistration godoc
// @Summary Start a registration session
// @Description Opens a guided check-in workflow for a visitor or a package
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body dto.StartRegistrationRequest true "Registration kind"
// @Success 201 {object} dto.RegistrationSessionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /registrations [post]
func (h *registrationHandler) startRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StartRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.registrationService.Start(c.Request.Context(), domain.RegistrationKind(req.Kind))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to start registration session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start registration"})
		return
	}
	c.JSON(http.StatusCreated, toSessionResponse(session, nil))
}

// getRegistration godoc
// @Summary Get a registration session
// @Tags registrations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.RegistrationSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /registrations/{id} [get]
func (h *registrationHandler) getRegistration(c *gin.Context) {
	session, err := h.registrationService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration session not found"})
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session, nil))
}

// updateRegistration godoc
// @Summary Merge step data into the session draft
// @Description Only the fields present in the body are updated; data entered on other steps is preserved
// @Tags registrations
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param draft body dto.UpdateRegistrationRequest true "Draft fields"
// @Success 200 {object} dto.RegistrationSessionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /registrations/{id} [put]
func (h *registrationHandler) updateRegistration(c *gin.Context) {
	var req dto.UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.registrationService.UpdateDraft(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Registration session not found"})
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session, nil))
}

// nextStep godoc
// @Summary Advance the workflow one step
// @Description Runs the current step's validation gate; on failure the session stays on the step and the messages are returned with 422
// @Tags registrations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.RegistrationSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "No forward transition"
// @Failure 422 {object} dto.RegistrationSessionResponse "Validation messages"
// @Router /registrations/{id}/next [post]
func (h *registrationHandler) nextStep(c *gin.Context) {
	h.navigate(c, h.registrationService.Next)
}

// previousStep godoc
// @Summary Step the workflow back
// @Description Never validates and never discards data already entered
// @Tags registrations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.RegistrationSessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "No backward transition"
// @Router /registrations/{id}/previous [post]
func (h *registrationHandler) previousStep(c *gin.Context) {
	h.navigate(c, h.registrationService.Previous)
}

func (h *registrationHandler) navigate(c *gin.Context, move func(ctx context.Context, sessionID string) (*portssvc.StepResult, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	result, err := move(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration session not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to navigate registration workflow", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to navigate workflow"})
		}
		return
	}

	status := http.StatusOK
	if len(result.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, toSessionResponse(&result.Session, result.Errors))
}

// submitRegistration godoc
// @Summary Submit the registration
// @Description Assembles and persists the record, allocating a badge and matching an appointment when applicable
// @Tags registrations
// @Produce json
// @Param id path string true "Session ID"
// @Success 201 {object} dto.SubmitRegistrationResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "No badge available"
// @Failure 422 {object} map[string][]string "Validation messages"
// @Router /registrations/{id}/submit [post]
func (h *registrationHandler) submitRegistration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	response, validationErrs, err := h.registrationService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Registration session not found"})
		case errors.Is(err, apperrors.ErrNoBadgeAvailable):
			c.JSON(http.StatusConflict, gin.H{"error": "No badge available for the requested zones"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to submit registration", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit registration"})
		}
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrs})
		return
	}
	c.JSON(http.StatusCreated, response)
}

// cancelRegistration godoc
// @Summary Cancel a registration session
// @Description Discards the session; nothing is persisted
// @Tags registrations
// @Param id path string true "Session ID"
// @Success 204
// @Router /registrations/{id} [delete]
func (h *registrationHandler) cancelRegistration(c *gin.Context) {
	if err := h.registrationService.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel registration"})
		return
	}
	c.Status(http.StatusNoContent)
}
