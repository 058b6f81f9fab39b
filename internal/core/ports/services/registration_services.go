package services

import (
	"context"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/EssonoDev/dgi_reception_app/internal/dto"
)

// RegistrationSession is the observable state of one workflow session.
type RegistrationSession struct {
	SessionID string
	Kind      domain.RegistrationKind
	Step      domain.Step
	Draft     domain.RegistrationDraft
}

// StepResult reports the outcome of a navigation event. When Errors is
// non-empty the workflow did not advance and the operator stays on the step.
type StepResult struct {
	Session RegistrationSession
	Errors  []string
}

// RegistrationSvcFacade drives the 5-step guided registration workflow.
type RegistrationSvcFacade interface {
	Start(ctx context.Context, kind domain.RegistrationKind) (*RegistrationSession, error)
	Get(ctx context.Context, sessionID string) (*RegistrationSession, error)
	UpdateDraft(ctx context.Context, sessionID string, req dto.UpdateRegistrationRequest) (*RegistrationSession, error)
	Next(ctx context.Context, sessionID string) (*StepResult, error)
	Previous(ctx context.Context, sessionID string) (*StepResult, error)
	// Submit assembles the final record, allocates a badge if requested,
	// auto-completes a matching appointment for visitors, persists the record
	// and emits a notification. Allocation or persistence failures abort with
	// the session intact so the operator can retry.
	Submit(ctx context.Context, sessionID string) (*dto.SubmitRegistrationResponse, []string, error)
	Cancel(ctx context.Context, sessionID string) error
}

// NotificationDispatcher is the boundary to the external notification
// delivery system. Implementations must not block workflow completion;
// failures are logged and never affect the persisted record.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, req domain.NotificationRequest) error
}
