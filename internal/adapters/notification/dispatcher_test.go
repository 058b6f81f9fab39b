package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureProvider struct {
	mu   sync.Mutex
	sent []domain.NotificationRequest
	err  error
}

func (p *captureProvider) Send(ctx context.Context, req domain.NotificationRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, req)
	return p.err
}

func (p *captureProvider) delivered() []domain.NotificationRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.NotificationRequest, len(p.sent))
	copy(out, p.sent)
	return out
}

// blockingProvider parks in Send until released, so tests can hold the worker
// busy and fill the queue deterministically.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
}

func (p *blockingProvider) Send(ctx context.Context, req domain.NotificationRequest) error {
	p.started <- struct{}{}
	<-p.release
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	provider := &captureProvider{}
	d := NewDispatcher(provider, 8, testLogger())

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Dispatch(ctx, domain.NotificationRequest{Type: domain.NotifyVisitorArrival}))
	}
	d.Close()

	assert.Len(t, provider.delivered(), 3)
}

func TestDispatcher_FullQueueDropsWithError(t *testing.T) {
	provider := &blockingProvider{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	d := NewDispatcher(provider, 1, testLogger())
	ctx := context.Background()

	// First request occupies the worker, second fills the queue.
	require.NoError(t, d.Dispatch(ctx, domain.NotificationRequest{}))
	<-provider.started
	require.NoError(t, d.Dispatch(ctx, domain.NotificationRequest{}))

	err := d.Dispatch(ctx, domain.NotificationRequest{})
	assert.ErrorIs(t, err, ErrQueueFull)

	close(provider.release)
	<-provider.started
	d.Close()
}

func TestDispatcher_ProviderFailureDoesNotStopWorker(t *testing.T) {
	provider := &captureProvider{err: errors.New("smtp unreachable")}
	d := NewDispatcher(provider, 8, testLogger())

	ctx := context.Background()
	require.NoError(t, d.Dispatch(ctx, domain.NotificationRequest{}))
	require.NoError(t, d.Dispatch(ctx, domain.NotificationRequest{}))
	d.Close()

	assert.Len(t, provider.delivered(), 2)
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(&captureProvider{}, 4, testLogger())
	d.Close()
	assert.NotPanics(t, func() { d.Close() })
}
