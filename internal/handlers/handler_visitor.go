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

// visitorHandler handles HTTP requests for the visitor log. Check-in happens
// through the registration workflow; these routes cover lookup and check-out.
type visitorHandler struct {
	visitorService portssvc.VisitorSvcFacade
}

func newVisitorHandler(vs portssvc.VisitorSvcFacade) *visitorHandler {
	return &visitorHandler{visitorService: vs}
}

// registerVisitorRoutes registers visitor log routes.
func registerVisitorRoutes(rg *gin.RouterGroup, visitorService portssvc.VisitorSvcFacade) {
	h := newVisitorHandler(visitorService)

	visitors := rg.Group("/visitors")
	{
		visitors.GET("", h.listVisitors)
		visitors.GET("/present", h.listPresentVisitors)
		visitors.GET("/:id", h.getVisitorByID)
		visitors.POST("/:id/checkout", h.checkOutVisitor)
	}
}

// listVisitors godoc
// @Summary List or search visitor records
// @Description Lists the full visitor log; ?q= filters by name, company or registration number
// @Tags visitors
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} dto.VisitorResponse
// @Router /visitors [get]
func (h *visitorHandler) listVisitors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var (
		visitors []domain.Visitor
		err      error
	)
	if query := c.Query("q"); query != "" {
		visitors, err = h.visitorService.SearchVisitors(ctx, query)
	} else {
		visitors, err = h.visitorService.ListVisitors(ctx)
	}
	if err != nil {
		logger.Error("Failed to list visitors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list visitors"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitorResponse(visitors))
}

// listPresentVisitors godoc
// @Summary List visitors currently in the building
// @Tags visitors
// @Produce json
// @Success 200 {array} dto.VisitorResponse
// @Router /visitors/present [get]
func (h *visitorHandler) listPresentVisitors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	visitors, err := h.visitorService.ListPresentVisitors(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list present visitors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list present visitors"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitorResponse(visitors))
}

// getVisitorByID godoc
// @Summary Get a visitor record
// @Tags visitors
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} dto.VisitorResponse
// @Failure 404 {object} map[string]string "Visitor not found"
// @Router /visitors/{id} [get]
func (h *visitorHandler) getVisitorByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	visitor, err := h.visitorService.GetVisitorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Visitor not found"})
			return
		}
		logger.Error("Failed to get visitor", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve visitor"})
		return
	}
	c.JSON(http.StatusOK, dto.ToVisitorResponse(visitor))
}

// checkOutVisitor godoc
// @Summary Check a visitor out
// @Description Stamps the check-out time and releases the visitor's badge
// @Tags visitors
// @Produce json
// @Param id path string true "Visitor ID"
// @Success 200 {object} dto.VisitorResponse
// @Failure 404 {object} map[string]string "Visitor not found"
// @Failure 409 {object} map[string]string "Visitor already checked out"
// @Router /visitors/{id}/checkout [post]
func (h *visitorHandler) checkOutVisitor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	visitor, err := h.visitorService.CheckOut(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Visitor not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to check out visitor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check out visitor"})
		}
		return
	}
	logger.Info("Visitor checked out", slog.String("visitor_id", visitor.VisitorID))
	c.JSON(http.StatusOK, dto.ToVisitorResponse(visitor))
}
