package services

import (
	"context"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// ReportingSvcFacade computes derived, read-only views over the record store.
// Every call recomputes from the current records; nothing is cached.
type ReportingSvcFacade interface {
	VisitorStats(ctx context.Context, now time.Time) (*domain.VisitorStats, error)
	DailyReport(ctx context.Context, day time.Time) (*domain.DailyReport, error)
	// DailyReportCSV renders the daily report as CSV (header row, all fields
	// double-quoted, one row per aggregated bucket).
	DailyReportCSV(ctx context.Context, day time.Time) ([]byte, error)
	// VisitorLogCSV renders the full visitor log as CSV, one row per record.
	VisitorLogCSV(ctx context.Context) ([]byte, error)
}
