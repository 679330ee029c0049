package service

import (
	"context"
)

// EventPublisher defines the interface for handing points events to a queue
type EventPublisher interface {
	// PublishPointsEvent enqueues a points event for asynchronous delivery
	PublishPointsEvent(ctx context.Context, event *PointsEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
