package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
)

// Provider is one delivery channel for outgoing notifications.
type Provider interface {
	Send(ctx context.Context, req domain.NotificationRequest) error
}

// NewProvider resolves a provider from its configured kind. Unknown kinds and
// the empty string fall back to the log provider, which is the default in
// development and in environments without a delivery gateway.
func NewProvider(kind string, logger *slog.Logger) Provider {
	switch {
	case kind == "" || kind == "log":
		return logProvider{logger: logger}
	case kind == "noop":
		return noopProvider{}
	default:
		return webhookProvider{url: kind}
	}
}

type logProvider struct {
	logger *slog.Logger
}

func (p logProvider) Send(ctx context.Context, req domain.NotificationRequest) error {
	p.logger.InfoContext(ctx, "Notification delivered (log channel)",
		slog.String("type", string(req.Type)),
		slog.String("recipient", req.RecipientEmail),
		slog.String("subject", req.Subject),
		slog.Bool("urgent", req.Urgent))
	return nil
}

type noopProvider struct{}

func (noopProvider) Send(ctx context.Context, req domain.NotificationRequest) error {
	return nil
}

// webhookProvider posts the request as JSON to a delivery gateway.
type webhookProvider struct {
	url string
}

func (p webhookProvider) Send(ctx context.Context, req domain.NotificationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build webhook request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("webhook send failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
