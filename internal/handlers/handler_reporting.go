package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/EssonoDev/dgi_reception_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler exposes the read-only reporting views.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/stats", h.getStats)
		reports.GET("/daily", h.getDailyReport)
		reports.GET("/daily/export", h.exportDailyReport)
		reports.GET("/visitors/export", h.exportVisitorLog)
	}
}

// parseDay resolves the ?date= parameter, defaulting to today.
func parseDay(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	day, err := time.ParseInLocation(domain.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected %s", raw, domain.DateLayout)
	}
	return day, nil
}

// getStats godoc
// @Summary Dashboard visitor statistics
// @Description Day/week/month totals, current presence, per-destination rankings and the average visit duration
// @Tags reports
// @Produce json
// @Success 200 {object} dto.VisitorStatsResponse
// @Router /reports/stats [get]
func (h *reportingHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	stats, err := h.reportingService.VisitorStats(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to compute visitor stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}
	c.JSON(http.StatusOK, dto.ToVisitorStatsResponse(stats))
}

// getDailyReport godoc
// @Summary Daily activity report
// @Tags reports
// @Produce json
// @Param date query string false "Day (2006-01-02), defaults to today"
// @Success 200 {object} dto.DailyReportResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /reports/daily [get]
func (h *reportingHandler) getDailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	day, err := parseDay(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportingService.DailyReport(c.Request.Context(), day)
	if err != nil {
		logger.Error("Failed to compute daily report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute daily report"})
		return
	}
	c.JSON(http.StatusOK, dto.ToDailyReportResponse(report))
}

// exportDailyReport godoc
// @Summary Export the daily report as CSV
// @Tags reports
// @Produce text/csv
// @Param date query string false "Day (2006-01-02), defaults to today"
// @Success 200 {string} string "CSV attachment"
// @Failure 400 {object} map[string]string "Invalid date"
// @Router /reports/daily/export [get]
func (h *reportingHandler) exportDailyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	day, err := parseDay(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	csv, err := h.reportingService.DailyReportCSV(c.Request.Context(), day)
	if err != nil {
		logger.Error("Failed to export daily report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export daily report"})
		return
	}

	filename := fmt.Sprintf("rapport-journalier-%s.csv", day.Format(domain.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}

// exportVisitorLog godoc
// @Summary Export the full visitor log as CSV
// @Tags reports
// @Produce text/csv
// @Success 200 {string} string "CSV attachment"
// @Router /reports/visitors/export [get]
func (h *reportingHandler) exportVisitorLog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	csv, err := h.reportingService.VisitorLogCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export visitor log", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export visitor log"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="registre-visiteurs.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}
