package dto

import (
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// RankedCountResponse is one row of a top-N ranking.
type RankedCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// VisitorStatsResponse is the dashboard statistics view.
type VisitorStatsResponse struct {
	TotalToday         int                   `json:"totalToday"`
	TotalThisWeek      int                   `json:"totalThisWeek"`
	TotalThisMonth     int                   `json:"totalThisMonth"`
	CurrentlyCheckedIn int                   `json:"currentlyCheckedIn"`
	PerService         []RankedCountResponse `json:"perService"`
	PerEmployee        []RankedCountResponse `json:"perEmployee"`
	AverageDuration    string                `json:"averageDuration"`
}

// DailyReportResponse is the canonical daily reporting unit.
type DailyReportResponse struct {
	Date            string                `json:"date"`
	TotalVisitors   int                   `json:"totalVisitors"`
	TopServices     []RankedCountResponse `json:"topServices"`
	TopEmployees    []RankedCountResponse `json:"topEmployees"`
	AverageDuration string                `json:"averageDuration"`
}

func toRankedCounts(in []domain.RankedCount) []RankedCountResponse {
	out := make([]RankedCountResponse, len(in))
	for i, rc := range in {
		out[i] = RankedCountResponse{Name: rc.Name, Count: rc.Count}
	}
	return out
}

// ToVisitorStatsResponse converts domain.VisitorStats, formatting the average
// duration label at the boundary.
func ToVisitorStatsResponse(stats *domain.VisitorStats) VisitorStatsResponse {
	return VisitorStatsResponse{
		TotalToday:         stats.TotalToday,
		TotalThisWeek:      stats.TotalThisWeek,
		TotalThisMonth:     stats.TotalThisMonth,
		CurrentlyCheckedIn: stats.CurrentlyCheckedIn,
		PerService:         toRankedCounts(stats.PerService),
		PerEmployee:        toRankedCounts(stats.PerEmployee),
		AverageDuration:    FormatDurationMinutes(stats.AverageDurationMinutes),
	}
}

// ToDailyReportResponse converts a domain.DailyReport.
func ToDailyReportResponse(report *domain.DailyReport) DailyReportResponse {
	return DailyReportResponse{
		Date:            report.Date,
		TotalVisitors:   report.TotalVisitors,
		TopServices:     toRankedCounts(report.TopServices),
		TopEmployees:    toRankedCounts(report.TopEmployees),
		AverageDuration: FormatDurationMinutes(report.AverageDurationMinutes),
	}
}
