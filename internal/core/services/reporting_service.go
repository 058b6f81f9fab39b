package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
)

// reportingService computes derived views over the visitor log. Everything is
// recomputed from the current records on every call: freshness is guaranteed
// at an O(n) cost per call, which is the intended trade at office scale.
type reportingService struct {
	BaseService
	visitorRepo  portsrepo.VisitorRepository
	employeeRepo portsrepo.EmployeeRepository
	serviceRepo  portsrepo.ServiceRepository
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	visitorRepo portsrepo.VisitorRepository,
	employeeRepo portsrepo.EmployeeRepository,
	serviceRepo portsrepo.ServiceRepository,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		visitorRepo:  visitorRepo,
		employeeRepo: employeeRepo,
		serviceRepo:  serviceRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// groupedCounts accumulates counts keyed by display name while preserving
// first-appearance order, so that the later stable sort gives a reproducible
// tie-break.
type groupedCounts struct {
	order  []string
	counts map[string]int
}

func newGroupedCounts() *groupedCounts {
	return &groupedCounts{counts: make(map[string]int)}
}

func (g *groupedCounts) add(name string) {
	if name == "" {
		return
	}
	if _, seen := g.counts[name]; !seen {
		g.order = append(g.order, name)
	}
	g.counts[name]++
}

// ranked returns the buckets sorted descending by count. Ties keep the
// original iteration order (stable sort); this is a simple reproducible
// tie-break, not a business rule.
func (g *groupedCounts) ranked(topN int) []domain.RankedCount {
	out := make([]domain.RankedCount, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, domain.RankedCount{Name: name, Count: g.counts[name]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the preceding (or current) Sunday at midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (s *reportingService) VisitorStats(ctx context.Context, now time.Time) (*domain.VisitorStats, error) {
	visitors, err := s.visitorRepo.ListVisitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visitors for stats: %w", err)
	}

	serviceNames, employeeNames, err := s.displayNames(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := startOfDay(now)
	weekStart := startOfWeek(now)
	monthStart := startOfMonth(now)

	stats := &domain.VisitorStats{}
	perService := newGroupedCounts()
	perEmployee := newGroupedCounts()

	var totalMinutes float64
	var completed int

	for _, visitor := range visitors {
		in := visitor.CheckInTime
		if !in.Before(dayStart) && in.Before(dayStart.AddDate(0, 0, 1)) {
			stats.TotalToday++
		}
		if !in.Before(weekStart) && !in.After(now) {
			stats.TotalThisWeek++
		}
		if !in.Before(monthStart) && !in.After(now) {
			stats.TotalThisMonth++
		}
		if visitor.Status == domain.VisitorCheckedIn {
			stats.CurrentlyCheckedIn++
		}

		switch visitor.DestinationType {
		case domain.DestinationService:
			perService.add(serviceNames[visitor.ServiceID])
		case domain.DestinationEmployee:
			perEmployee.add(employeeNames[visitor.EmployeeID])
		}

		if minutes, done := visitor.VisitDurationMinutes(); done {
			totalMinutes += minutes
			completed++
		}
	}

	stats.PerService = perService.ranked(0)
	stats.PerEmployee = perEmployee.ranked(0)
	if completed > 0 {
		stats.AverageDurationMinutes = totalMinutes / float64(completed)
	}
	return stats, nil
}

func (s *reportingService) DailyReport(ctx context.Context, day time.Time) (*domain.DailyReport, error) {
	visitors, err := s.visitorRepo.ListVisitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list visitors for daily report: %w", err)
	}

	serviceNames, employeeNames, err := s.displayNames(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	report := &domain.DailyReport{Date: dayStart.Format(domain.DateLayout)}
	perService := newGroupedCounts()
	perEmployee := newGroupedCounts()

	var totalMinutes float64
	var completed int

	for _, visitor := range visitors {
		in := visitor.CheckInTime
		if in.Before(dayStart) || !in.Before(dayEnd) {
			continue
		}
		report.TotalVisitors++

		switch visitor.DestinationType {
		case domain.DestinationService:
			perService.add(serviceNames[visitor.ServiceID])
		case domain.DestinationEmployee:
			perEmployee.add(employeeNames[visitor.EmployeeID])
		}

		if minutes, done := visitor.VisitDurationMinutes(); done {
			totalMinutes += minutes
			completed++
		}
	}

	report.TopServices = perService.ranked(5)
	report.TopEmployees = perEmployee.ranked(5)
	if completed > 0 {
		report.AverageDurationMinutes = totalMinutes / float64(completed)
	}
	return report, nil
}

// displayNames builds the id -> display name joins used by the groupings.
func (s *reportingService) displayNames(ctx context.Context) (map[string]string, map[string]string, error) {
	services, err := s.serviceRepo.ListServices(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list services: %w", err)
	}
	serviceNames := make(map[string]string, len(services))
	for _, svc := range services {
		serviceNames[svc.ServiceID] = svc.Name
	}

	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list employees: %w", err)
	}
	employeeNames := make(map[string]string, len(employees))
	for _, employee := range employees {
		employeeNames[employee.EmployeeID] = employee.FullName()
	}
	return serviceNames, employeeNames, nil
}

// DailyReportCSV renders the daily report with one row per aggregated bucket.
// Every field is double-quoted per the agreed export format.
func (s *reportingService) DailyReportCSV(ctx context.Context, day time.Time) ([]byte, error) {
	report, err := s.DailyReport(ctx, day)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	writeQuotedRow(&b, "date", "categorie", "nom", "valeur")
	writeQuotedRow(&b, report.Date, "total_visiteurs", "", fmt.Sprintf("%d", report.TotalVisitors))
	for _, rc := range report.TopServices {
		writeQuotedRow(&b, report.Date, "service", rc.Name, fmt.Sprintf("%d", rc.Count))
	}
	for _, rc := range report.TopEmployees {
		writeQuotedRow(&b, report.Date, "agent", rc.Name, fmt.Sprintf("%d", rc.Count))
	}
	writeQuotedRow(&b, report.Date, "duree_moyenne_minutes", "", fmt.Sprintf("%.0f", report.AverageDurationMinutes))
	return []byte(b.String()), nil
}

// VisitorLogCSV renders the full visitor log, one row per record.
func (s *reportingService) VisitorLogCSV(ctx context.Context) ([]byte, error) {
	visitors, err := s.visitorRepo.ListVisitors(ctx)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	writeQuotedRow(&b, "enregistrement", "nom", "prenom", "societe", "motif", "arrivee", "depart", "statut", "badge")
	for _, v := range visitors {
		checkOut := ""
		if v.CheckOutTime != nil {
			checkOut = v.CheckOutTime.Format(time.RFC3339)
		}
		writeQuotedRow(&b,
			v.RegistrationNumber,
			v.LastName,
			v.FirstName,
			v.Company,
			v.Purpose,
			v.CheckInTime.Format(time.RFC3339),
			checkOut,
			string(v.Status),
			v.BadgeNumber,
		)
	}
	return []byte(b.String()), nil
}

// writeQuotedRow emits one CSV row with every field double-quoted and inner
// quotes doubled. encoding/csv only quotes when forced to, which does not
// satisfy the export contract.
func writeQuotedRow(b *strings.Builder, fields ...string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
