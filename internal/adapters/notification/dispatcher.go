// Package notification implements the async boundary to the external
// notification delivery system. Dispatch enqueues and returns immediately;
// a single worker goroutine drains the queue so a slow or failing provider
// never blocks the registration workflow.
package notification

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/EssonoDev/dgi_reception_app/internal/core/domain"
	portssvc "github.com/EssonoDev/dgi_reception_app/internal/core/ports/services"
)

// ErrQueueFull is returned when the dispatch queue is saturated. Callers log
// it and move on; notifications are best-effort by contract.
var ErrQueueFull = errors.New("notification queue is full")

// Dispatcher queues notification requests and delivers them through the
// configured provider on a background goroutine.
type Dispatcher struct {
	provider    Provider
	logger      *slog.Logger
	queue       chan domain.NotificationRequest
	sendTimeout time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSendTimeout caps a single provider send.
func WithSendTimeout(d time.Duration) Option {
	return func(dp *Dispatcher) {
		dp.sendTimeout = d
	}
}

// NewDispatcher creates a dispatcher with the given queue capacity and starts
// its worker. Call Close on shutdown to drain the queue.
func NewDispatcher(provider Provider, queueSize int, logger *slog.Logger, options ...Option) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		provider:    provider,
		logger:      logger,
		queue:       make(chan domain.NotificationRequest, queueSize),
		sendTimeout: 5 * time.Second,
		done:        make(chan struct{}),
	}
	for _, option := range options {
		option(d)
	}
	go d.run()
	return d
}

var _ portssvc.NotificationDispatcher = (*Dispatcher)(nil)

// Dispatch enqueues a request without blocking. A full queue drops the
// request and returns ErrQueueFull.
func (d *Dispatcher) Dispatch(ctx context.Context, req domain.NotificationRequest) error {
	select {
	case d.queue <- req:
		return nil
	default:
		d.logger.WarnContext(ctx, "Notification dropped, queue full",
			slog.String("type", string(req.Type)),
			slog.String("recipient", req.RecipientEmail))
		return ErrQueueFull
	}
}

// Close stops accepting requests and waits for the worker to drain the queue.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for req := range d.queue {
		d.deliver(req)
	}
}

func (d *Dispatcher) deliver(req domain.NotificationRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	if err := d.provider.Send(ctx, req); err != nil {
		// Best-effort: the originating record is already durable.
		d.logger.Error("Notification delivery failed",
			slog.String("type", string(req.Type)),
			slog.String("recipient", req.RecipientEmail),
			slog.String("error", err.Error()))
		return
	}
	d.logger.Debug("Notification delivered",
		slog.String("type", string(req.Type)),
		slog.String("recipient", req.RecipientEmail))
}
