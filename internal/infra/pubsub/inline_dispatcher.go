package pubsub

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// ErrQueueFull is returned when the inline dispatcher cannot accept another event
var ErrQueueFull = errors.New("points event queue is full")

// ErrDispatcherClosed is returned when publishing after shutdown
var ErrDispatcherClosed = errors.New("points event dispatcher is closed")

// inlineDispatcher implements EventPublisher in-process. Each worker drains its own bounded
// queue and a user's events always land on the same queue, so they are delivered in publish order.
type inlineDispatcher struct {
	notifier service.Notifier
	timeout  time.Duration
	logger   *slog.Logger

	queues []chan *service.PointsEvent
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewInlineDispatcher starts workers sharing queueSize slots of queued events
func NewInlineDispatcher(notifier service.Notifier, queueSize, workers int, timeout time.Duration, logger *slog.Logger) service.EventPublisher {
	workers = max(workers, 1)
	d := &inlineDispatcher{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
		queues:   make([]chan *service.PointsEvent, workers),
	}

	for i := range d.queues {
		d.queues[i] = make(chan *service.PointsEvent, max(queueSize/workers, 1))
		d.wg.Add(1)
		go d.run(d.queues[i])
	}

	return d
}

// PublishPointsEvent enqueues event without waiting for delivery
func (d *inlineDispatcher) PublishPointsEvent(ctx context.Context, event *service.PointsEvent) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queueFor(event.Recipient.UserID) <- event:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	default:
		return ErrQueueFull
	}
}

func (d *inlineDispatcher) queueFor(userID string) chan *service.PointsEvent {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))

	return d.queues[h.Sum32()%uint32(len(d.queues))]
}

func (d *inlineDispatcher) run(queue <-chan *service.PointsEvent) {
	defer d.wg.Done()

	for event := range queue {
		d.deliver(event)
	}
}

func (d *inlineDispatcher) deliver(event *service.PointsEvent) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.notifier.Notify(ctx, event); err != nil {
		d.logger.Error("[InlinePubSub] Points notification failed",
			slog.String("event_id", event.EventID),
			slog.Any("error", &domainerrors.NotifyDeliveryError{
				EventType: string(event.Type),
				UserID:    event.Recipient.UserID,
				Err:       err,
			}),
		)

		return
	}

	d.logger.Debug("[InlinePubSub] Points notification delivered",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
	)
}

// Close stops accepting events and waits for queued ones to be delivered
func (d *inlineDispatcher) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()

		return nil
	}
	d.closed = true
	for _, queue := range d.queues {
		close(queue)
	}
	d.mu.Unlock()

	d.wg.Wait()

	return nil
}
