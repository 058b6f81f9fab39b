package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/EssonoDev/dgi_reception_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// packageHandler handles HTTP requests for the package log and the badge
// pool. Intake happens through the registration workflow.
type packageHandler struct {
	packageService portssvc.PackageSvcFacade
	badgeService   portssvc.BadgeSvcFacade
}

func newPackageHandler(ps portssvc.PackageSvcFacade, bs portssvc.BadgeSvcFacade) *packageHandler {
	return &packageHandler{packageService: ps, badgeService: bs}
}

// registerPackageRoutes registers package and badge routes.
func registerPackageRoutes(rg *gin.RouterGroup, packageService portssvc.PackageSvcFacade, badgeService portssvc.BadgeSvcFacade) {
	h := newPackageHandler(packageService, badgeService)

	packages := rg.Group("/packages")
	{
		packages.GET("", h.listPackages)
		packages.GET("/:id", h.getPackageByID)
		packages.POST("/:id/deliver", h.deliverPackage)
		packages.POST("/:id/return", h.returnPackage)
	}

	badges := rg.Group("/badges")
	{
		badges.GET("", h.listBadges)
		badges.GET("/available", h.listAvailableBadges)
	}
}

// listPackages godoc
// @Summary List or search packages
// @Tags packages
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {array} dto.PackageResponse
// @Router /packages [get]
func (h *packageHandler) listPackages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ctx := c.Request.Context()

	var (
		packages []domain.Package
		err      error
	)
	if query := c.Query("q"); query != "" {
		packages, err = h.packageService.SearchPackages(ctx, query)
	} else {
		packages, err = h.packageService.ListPackages(ctx)
	}
	if err != nil {
		logger.Error("Failed to list packages", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list packages"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListPackageResponse(packages))
}

// getPackageByID godoc
// @Summary Get a package record
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} dto.PackageResponse
// @Failure 404 {object} map[string]string "Package not found"
// @Router /packages/{id} [get]
func (h *packageHandler) getPackageByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pkg, err := h.packageService.GetPackageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		logger.Error("Failed to get package", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve package"})
		return
	}
	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// deliverPackage godoc
// @Summary Hand a package over to its recipient
// @Tags packages
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param delivery body dto.DeliverPackageRequest true "Delivery details"
// @Success 200 {object} dto.PackageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 409 {object} map[string]string "Illegal transition"
// @Router /packages/{id}/deliver [post]
func (h *packageHandler) deliverPackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DeliverPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pkg, err := h.packageService.Deliver(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to deliver package", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deliver package"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// returnPackage godoc
// @Summary Return a package to its sender
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} dto.PackageResponse
// @Failure 404 {object} map[string]string "Package not found"
// @Failure 409 {object} map[string]string "Illegal transition"
// @Router /packages/{id}/return [post]
func (h *packageHandler) returnPackage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	pkg, err := h.packageService.Return(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		case errors.Is(err, apperrors.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to return package", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return package"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToPackageResponse(pkg))
}

// listBadges godoc
// @Summary List the badge pool
// @Tags badges
// @Produce json
// @Success 200 {array} dto.BadgeResponse
// @Router /badges [get]
func (h *packageHandler) listBadges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	badges, err := h.badgeService.ListBadges(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list badges", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list badges"})
		return
	}
	out := make([]dto.BadgeResponse, len(badges))
	for i := range badges {
		out[i] = dto.ToBadgeResponse(&badges[i])
	}
	c.JSON(http.StatusOK, out)
}

// listAvailableBadges godoc
// @Summary List badges available for a zone set
// @Description Returns available badges whose zones cover the requested ones
// @Tags badges
// @Produce json
// @Param zones query string false "Comma separated zones, e.g. hall,bureaux"
// @Success 200 {array} dto.BadgeResponse
// @Router /badges/available [get]
func (h *packageHandler) listAvailableBadges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var zones []string
	if raw := c.Query("zones"); raw != "" {
		for _, zone := range strings.Split(raw, ",") {
			if zone = strings.TrimSpace(zone); zone != "" {
				zones = append(zones, zone)
			}
		}
	}

	badges, err := h.badgeService.ListAvailableBadges(c.Request.Context(), zones)
	if err != nil {
		logger.Error("Failed to list available badges", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list available badges"})
		return
	}
	out := make([]dto.BadgeResponse, len(badges))
	for i := range badges {
		out[i] = dto.ToBadgeResponse(&badges[i])
	}
	c.JSON(http.StatusOK, out)
}
