package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/apperrors"
	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portsrepo "github.com/EssonoDev/dgi_reception_app/internal/core/ports/repositories"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
	"github.com/EssonoDev/dgi_reception_app/internal/utils"
	"github.com/google/uuid"
)

// registrationService drives the 5-step guided workflow. Sessions live in
// memory only: cancelling or restarting the process writes nothing. The
// record store is touched exactly once, at a successful submit.
type registrationService struct {
	BaseService
	mu       sync.Mutex
	sessions map[string]*portssvc.RegistrationSession

	visitorRepo  portsrepo.VisitorRepository
	packageRepo  portsrepo.PackageRepository
	employeeRepo portsrepo.EmployeeRepository
	serviceRepo  portsrepo.ServiceRepository

	badgeSvc       portssvc.BadgeSvcFacade
	appointmentSvc portssvc.AppointmentSvcFacade
	dispatcher     portssvc.NotificationDispatcher
}

// RegistrationOption is a functional option for configuring the registration
// service.
type RegistrationOption func(*registrationService)

// WithNotificationDispatcher sets the external notification boundary.
func WithNotificationDispatcher(d portssvc.NotificationDispatcher) RegistrationOption {
	return func(s *registrationService) {
		s.dispatcher = d
	}
}

// NewRegistrationService creates a new registration workflow service.
func NewRegistrationService(
	visitorRepo portsrepo.VisitorRepository,
	packageRepo portsrepo.PackageRepository,
	employeeRepo portsrepo.EmployeeRepository,
	serviceRepo portsrepo.ServiceRepository,
	badgeSvc portssvc.BadgeSvcFacade,
	appointmentSvc portssvc.AppointmentSvcFacade,
	options ...RegistrationOption,
) portssvc.RegistrationSvcFacade {
	svc := &registrationService{
		sessions:       make(map[string]*portssvc.RegistrationSession),
		visitorRepo:    visitorRepo,
		packageRepo:    packageRepo,
		employeeRepo:   employeeRepo,
		serviceRepo:    serviceRepo,
		badgeSvc:       badgeSvc,
		appointmentSvc: appointmentSvc,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RegistrationSvcFacade = (*registrationService)(nil)

func (s *registrationService) Start(ctx context.Context, kind domain.RegistrationKind) (*portssvc.RegistrationSession, error) {
	if kind != domain.KindVisitor && kind != domain.KindPackage {
		return nil, fmt.Errorf("unknown registration kind %q: %w", kind, apperrors.ErrValidation)
	}

	session := &portssvc.RegistrationSession{
		SessionID: uuid.NewString(),
		Kind:      kind,
		Step:      domain.StepIdentity,
		Draft:     domain.RegistrationDraft{Kind: kind},
	}

	s.mu.Lock()
	s.sessions[session.SessionID] = session
	s.mu.Unlock()

	s.LogInfo(ctx, "Registration session started",
		slog.String("session_id", session.SessionID),
		slog.String("kind", string(kind)))
	out := *session
	return &out, nil
}

func (s *registrationService) Get(ctx context.Context, sessionID string) (*portssvc.RegistrationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := *session
	return &out, nil
}

func (s *registrationService) UpdateDraft(ctx context.Context, sessionID string, req dto.UpdateRegistrationRequest) (*portssvc.RegistrationSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	req.ApplyTo(&session.Draft)
	out := *session
	return &out, nil
}

// Next runs the current step's validation gate. On failure the session stays
// on the step and the messages are surfaced; nothing is thrown.
func (s *registrationService) Next(ctx context.Context, sessionID string) (*portssvc.StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if errs := session.Draft.ValidateStep(session.Step); len(errs) > 0 {
		s.LogDebug(ctx, "Step validation failed",
			slog.String("session_id", sessionID),
			slog.String("step", session.Step.String()),
			slog.Int("error_count", len(errs)))
		return &portssvc.StepResult{Session: *session, Errors: errs}, nil
	}

	next, ok := domain.NextStep(session.Step, domain.EventNext)
	if !ok {
		return nil, fmt.Errorf("no forward transition from %s: %w", session.Step, apperrors.ErrInvalidTransition)
	}
	session.Step = next
	return &portssvc.StepResult{Session: *session}, nil
}

// Previous never validates and never discards data already entered for the
// step being left.
func (s *registrationService) Previous(ctx context.Context, sessionID string) (*portssvc.StepResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	prev, ok := domain.NextStep(session.Step, domain.EventPrevious)
	if !ok {
		return nil, fmt.Errorf("no backward transition from %s: %w", session.Step, apperrors.ErrInvalidTransition)
	}
	session.Step = prev
	return &portssvc.StepResult{Session: *session}, nil
}

func (s *registrationService) Cancel(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Submit assembles and persists the finished record. The pipeline is:
// re-validate, generate identifiers, allocate a badge if requested, match an
// appointment (visitors), write the record, then notify. Any failure before
// the write aborts with nothing persisted and the session intact; a
// notification failure after the write is logged and deliberately ignored.
func (s *registrationService) Submit(ctx context.Context, sessionID string) (*dto.SubmitRegistrationResponse, []string, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, nil, apperrors.ErrNotFound
	}
	draft := session.Draft
	kind := session.Kind
	s.mu.Unlock()

	// Re-run every gate; the confirmation step itself adds no checks.
	var errs []string
	for step := domain.StepIdentity; step <= domain.StepConfirmation; step++ {
		errs = append(errs, draft.ValidateStep(step)...)
	}
	if len(errs) > 0 {
		return nil, errs, nil
	}

	now := time.Now()
	prefix := "V"
	if kind == domain.KindPackage {
		prefix = "P"
	}
	registrationNumber, err := utils.GenerateRegistrationNumber(prefix, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate registration number: %w", err)
	}
	lookupToken, err := utils.GenerateLookupToken()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate lookup token: %w", err)
	}

	recordID := uuid.NewString()

	badgeNumber := ""
	if draft.BadgeRequired {
		badge, err := s.badgeSvc.Allocate(ctx, draft.BadgeZones, recordID)
		if err != nil {
			// Includes ErrNoBadgeAvailable: nothing was written, the operator
			// decides whether to reduce zones or skip the badge.
			return nil, nil, err
		}
		badgeNumber = badge.Number
	}

	var response *dto.SubmitRegistrationResponse
	switch kind {
	case domain.KindVisitor:
		response, err = s.submitVisitor(ctx, draft, recordID, registrationNumber, lookupToken, badgeNumber, now)
	case domain.KindPackage:
		response, err = s.submitPackage(ctx, draft, recordID, registrationNumber, badgeNumber, now)
	default:
		err = fmt.Errorf("unknown registration kind %q: %w", kind, apperrors.ErrValidation)
	}
	if err != nil {
		if badgeNumber != "" {
			if relErr := s.badgeSvc.Release(ctx, badgeNumber); relErr != nil {
				s.LogError(ctx, relErr, "Failed to release badge after aborted submit", slog.String("badge_number", badgeNumber))
			}
		}
		// The session is kept so the operator can retry without re-entering
		// anything.
		return nil, nil, err
	}

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	s.LogInfo(ctx, "Registration submitted",
		slog.String("record_id", response.RecordID),
		slog.String("registration_number", response.RegistrationNumber),
		slog.String("kind", string(kind)))
	return response, nil, nil
}

func (s *registrationService) submitVisitor(ctx context.Context, draft domain.RegistrationDraft, recordID, registrationNumber, lookupToken, badgeNumber string, now time.Time) (*dto.SubmitRegistrationResponse, error) {
	visitor := domain.Visitor{
		VisitorID:               recordID,
		FirstName:               draft.FirstName,
		LastName:                draft.LastName,
		Company:                 draft.Company,
		Phone:                   draft.Phone,
		Email:                   draft.Email,
		IDDocumentType:          draft.IDDocumentType,
		IDDocumentNumber:        draft.IDDocumentNumber,
		Purpose:                 draft.EffectivePurpose(),
		DestinationType:         draft.DestinationType,
		EmployeeID:              draft.EmployeeID,
		ServiceID:               draft.ServiceID,
		RegistrationNumber:      registrationNumber,
		LookupToken:             lookupToken,
		BadgeNumber:             badgeNumber,
		ExpectedDurationMinutes: draft.ExpectedDuration,
		CheckInTime:             now,
		Status:                  domain.VisitorCheckedIn,
	}

	matchedID := s.matchAppointment(ctx, &visitor, now)

	saved, err := s.visitorRepo.SaveVisitor(ctx, visitor)
	if err != nil {
		return nil, fmt.Errorf("failed to persist visitor record: %w", err)
	}

	s.notifyArrival(ctx, saved)

	return &dto.SubmitRegistrationResponse{
		RecordID:             saved.VisitorID,
		Kind:                 string(domain.KindVisitor),
		RegistrationNumber:   saved.RegistrationNumber,
		LookupToken:          saved.LookupToken,
		BadgeNumber:          saved.BadgeNumber,
		MatchedAppointmentID: matchedID,
	}, nil
}

// matchAppointment links the walk-in to a booked appointment when one fits.
// Matching is a convenience: any failure here degrades to an unplanned visit.
func (s *registrationService) matchAppointment(ctx context.Context, visitor *domain.Visitor, now time.Time) string {
	if visitor.DestinationType != domain.DestinationEmployee {
		return ""
	}
	host, err := s.employeeRepo.FindEmployeeByID(ctx, visitor.EmployeeID)
	if err != nil {
		s.LogWarn(ctx, "Destination employee not found for appointment matching",
			slog.String("employee_id", visitor.EmployeeID))
		return ""
	}

	match, err := s.appointmentSvc.FindMatch(ctx, visitor.FullName(), host.FullName(), now.Format(domain.DateLayout))
	if err != nil {
		s.LogWarn(ctx, "Appointment matching failed", slog.String("error", err.Error()))
		return ""
	}
	if match == nil {
		return ""
	}

	visitor.AppointmentID = match.AppointmentID
	if err := s.appointmentSvc.CompleteMatch(ctx, match.AppointmentID); err != nil {
		s.LogWarn(ctx, "Failed to auto-complete matched appointment",
			slog.String("appointment_id", match.AppointmentID),
			slog.String("error", err.Error()))
	} else {
		s.LogInfo(ctx, "Walk-in matched to appointment",
			slog.String("appointment_id", match.AppointmentID),
			slog.String("visitor", visitor.FullName()))
	}
	return match.AppointmentID
}

func (s *registrationService) submitPackage(ctx context.Context, draft domain.RegistrationDraft, recordID, registrationNumber, badgeNumber string, now time.Time) (*dto.SubmitRegistrationResponse, error) {
	pkg := domain.Package{
		PackageID:          recordID,
		TrackingNumber:     draft.TrackingNumber,
		Carrier:            draft.Carrier,
		Type:               draft.PackageType,
		WeightKg:           draft.WeightKg,
		Dimensions:         draft.Dimensions,
		Fragile:            draft.Fragile,
		Urgent:             draft.Urgent,
		Confidential:       draft.Confidential,
		RegistrationNumber: registrationNumber,
		DestinationType:    draft.DestinationType,
		EmployeeID:         draft.EmployeeID,
		ServiceID:          draft.ServiceID,
		Sender: domain.Sender{
			Name:    draft.FirstName + " " + draft.LastName,
			Company: draft.Company,
			Phone:   draft.Phone,
		},
		Status: domain.PackageStatus{
			ReceivedAt: now,
			ReceivedBy: "accueil",
		},
		State: domain.PackageReceived,
	}

	saved, err := s.packageRepo.SavePackage(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to persist package record: %w", err)
	}

	s.notifyPackage(ctx, saved)

	return &dto.SubmitRegistrationResponse{
		RecordID:           saved.PackageID,
		Kind:               string(domain.KindPackage),
		RegistrationNumber: saved.RegistrationNumber,
		BadgeNumber:        badgeNumber,
	}, nil
}

// resolveRecipient finds the notification target for a destination: the
// employee directly, or the responsable of the destination service.
func (s *registrationService) resolveRecipient(ctx context.Context, destType domain.DestinationType, employeeID, serviceID string) (email, phone string) {
	switch destType {
	case domain.DestinationEmployee:
		if employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err == nil {
			return employee.Email, employee.Phone
		}
	case domain.DestinationService:
		svc, err := s.serviceRepo.FindServiceByID(ctx, serviceID)
		if err != nil || svc.ResponsableID == "" {
			return "", ""
		}
		if responsable, err := s.employeeRepo.FindEmployeeByID(ctx, svc.ResponsableID); err == nil {
			return responsable.Email, responsable.Phone
		}
	}
	return "", ""
}

func (s *registrationService) notifyArrival(ctx context.Context, visitor domain.Visitor) {
	if s.dispatcher == nil {
		return
	}
	email, phone := s.resolveRecipient(ctx, visitor.DestinationType, visitor.EmployeeID, visitor.ServiceID)
	req := domain.NotificationRequest{
		Type:           domain.NotifyVisitorArrival,
		RecipientEmail: email,
		RecipientPhone: phone,
		Subject:        "Visiteur à l'accueil",
		Body: fmt.Sprintf("%s (%s) est arrivé à l'accueil. Motif : %s. Enregistrement %s.",
			visitor.FullName(), visitor.Company, visitor.Purpose, visitor.RegistrationNumber),
	}
	if err := s.dispatcher.Dispatch(ctx, req); err != nil {
		// Deliberately lenient boundary: the record is already durable.
		s.LogWarn(ctx, "Failed to dispatch arrival notification", slog.String("error", err.Error()))
	}
}

func (s *registrationService) notifyPackage(ctx context.Context, pkg domain.Package) {
	if s.dispatcher == nil {
		return
	}
	email, phone := s.resolveRecipient(ctx, pkg.DestinationType, pkg.EmployeeID, pkg.ServiceID)
	req := domain.NotificationRequest{
		Type:           domain.NotifyPackageArrival,
		RecipientEmail: email,
		RecipientPhone: phone,
		Subject:        "Courrier reçu à l'accueil",
		Body: fmt.Sprintf("Un %s de %s est arrivé à l'accueil. Enregistrement %s.",
			pkg.Type, pkg.Sender.Name, pkg.RegistrationNumber),
		Urgent: pkg.Urgent,
	}
	if err := s.dispatcher.Dispatch(ctx, req); err != nil {
		s.LogWarn(ctx, "Failed to dispatch package notification", slog.String("error", err.Error()))
	}
}
