package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/google/uuid"
)

// appointmentService manages booked appointments and the walk-in matcher.
type appointmentService struct {
	BaseService
	appointmentRepo portsrepo.AppointmentRepository
	employeeRepo    portsrepo.EmployeeRepository
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(appointmentRepo portsrepo.AppointmentRepository, employeeRepo portsrepo.EmployeeRepository) portssvc.AppointmentSvcFacade {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		employeeRepo:    employeeRepo,
	}
}

var _ portssvc.AppointmentSvcFacade = (*appointmentService)(nil)

func (s *appointmentService) CreateAppointment(ctx context.Context, req dto.CreateAppointmentRequest) (*domain.Appointment, error) {
	priority := domain.AppointmentPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityNormal
	}

	agentName := req.AgentName
	if req.AgentID != "" {
		employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.AgentID)
		if err != nil {
			s.LogError(ctx, err, "Unknown agent for appointment", slog.String("agent_id", req.AgentID))
			return nil, fmt.Errorf("invalid agent reference: %w", err)
		}
		// Keep the legacy display field consistent with the referenced agent.
		agentName = employee.FullName()
	}

	appointment := domain.Appointment{
		AppointmentID:   uuid.NewString(),
		CitizenName:     req.CitizenName,
		CitizenEmail:    req.CitizenEmail,
		CitizenPhone:    req.CitizenPhone,
		Date:            req.Date,
		Time:            req.Time,
		DurationMinutes: req.DurationMinutes,
		ServiceID:       req.ServiceID,
		Purpose:         req.Purpose,
		AgentID:         req.AgentID,
		AgentName:       agentName,
		Priority:        priority,
		Status:          domain.AppointmentPending,
	}

	saved, err := s.appointmentRepo.SaveAppointment(ctx, appointment)
	if err != nil {
		s.LogError(ctx, err, "Failed to save appointment", slog.String("citizen", req.CitizenName))
		return nil, err
	}
	s.LogInfo(ctx, "Appointment created",
		slog.String("appointment_id", saved.AppointmentID),
		slog.String("date", saved.Date))
	return &saved, nil
}

func (s *appointmentService) GetAppointmentByID(ctx context.Context, appointmentID string) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find appointment", slog.String("appointment_id", appointmentID))
		}
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) ListAppointments(ctx context.Context, date string) ([]domain.Appointment, error) {
	if date != "" {
		return s.appointmentRepo.ListAppointmentsByDate(ctx, date)
	}
	return s.appointmentRepo.ListAppointments(ctx)
}

// ChangeStatus advances an appointment through its state machine. Illegal
// moves are rejected with ErrInvalidTransition.
func (s *appointmentService) ChangeStatus(ctx context.Context, appointmentID string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	appointment, err := s.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !domain.ValidAppointmentTransition(appointment.Status, status) {
		s.LogWarn(ctx, "Rejected appointment status transition",
			slog.String("appointment_id", appointmentID),
			slog.String("from", string(appointment.Status)),
			slog.String("to", string(status)))
		return nil, fmt.Errorf("%s -> %s: %w", appointment.Status, status, apperrors.ErrInvalidTransition)
	}

	appointment.Status = status
	saved, err := s.appointmentRepo.SaveAppointment(ctx, *appointment)
	if err != nil {
		s.LogError(ctx, err, "Failed to update appointment status", slog.String("appointment_id", appointmentID))
		return nil, err
	}
	s.LogInfo(ctx, "Appointment status changed",
		slog.String("appointment_id", appointmentID),
		slog.String("status", string(status)))
	return &saved, nil
}

// FindMatch scans appointments for a pending/confirmed booking matching an
// unplanned check-in. The citizen field must contain the visitor's full name
// and the agent must match the host, both case-insensitive; the date must be
// exactly equal. The first match wins; additional same-day candidates are
// logged so the ambiguity stays visible.
func (s *appointmentService) FindMatch(ctx context.Context, visitorName, hostName, date string) (*domain.Appointment, error) {
	if strings.TrimSpace(visitorName) == "" || strings.TrimSpace(hostName) == "" {
		return nil, nil
	}

	appointments, err := s.appointmentRepo.ListAppointmentsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	hostID := s.lookupEmployeeID(ctx, hostName)

	var matches []domain.Appointment
	for _, appointment := range appointments {
		if !appointment.Pending() {
			continue
		}
		if !containsFold(appointment.CitizenName, visitorName) {
			continue
		}
		if !s.agentMatches(appointment, hostName, hostID) {
			continue
		}
		matches = append(matches, appointment)
	}

	if len(matches) == 0 {
		return nil, nil
	}
	if len(matches) > 1 {
		s.LogWarn(ctx, "Multiple appointments match walk-in, using first",
			slog.String("visitor", visitorName),
			slog.String("host", hostName),
			slog.String("date", date),
			slog.Int("extra_candidates", len(matches)-1))
	}
	match := matches[0]
	return &match, nil
}

// CompleteMatch closes a matched appointment. The FSM only allows completed
// from confirmed or arrived, so pending bookings are confirmed first.
func (s *appointmentService) CompleteMatch(ctx context.Context, appointmentID string) error {
	appointment, err := s.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.Status == domain.AppointmentPending {
		if _, err := s.ChangeStatus(ctx, appointmentID, domain.AppointmentConfirmed); err != nil {
			return err
		}
	}
	_, err = s.ChangeStatus(ctx, appointmentID, domain.AppointmentCompleted)
	return err
}

// agentMatches prefers the employee id reference when both sides carry one
// and falls back to the legacy substring comparison on the free-text name.
func (s *appointmentService) agentMatches(appointment domain.Appointment, hostName, hostID string) bool {
	if appointment.AgentID != "" && hostID != "" {
		return appointment.AgentID == hostID
	}
	return containsFold(appointment.AgentName, hostName)
}

// lookupEmployeeID resolves a host full name to an employee id when the
// directory has exactly one matching active employee.
func (s *appointmentService) lookupEmployeeID(ctx context.Context, hostName string) string {
	employees, err := s.employeeRepo.ListEmployees(ctx)
	if err != nil {
		return ""
	}
	id := ""
	for _, employee := range employees {
		if strings.EqualFold(employee.FullName(), strings.TrimSpace(hostName)) {
			if id != "" {
				return "" // ambiguous, let the substring fallback decide
			}
			id = employee.EmployeeID
		}
	}
	return id
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
