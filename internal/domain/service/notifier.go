package service

import (
	"context"
	"time"
)

// PointsEventType is the kind of loyalty notification.
type PointsEventType string

const (
	PointsEventGain    PointsEventType = "gain"
	PointsEventLose    PointsEventType = "lose"
	PointsEventLevelUp PointsEventType = "levelup"
)

// Recipient identifies who a points notification is addressed to.
type Recipient struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
}

// PointsPayload carries the account state after the change.
type PointsPayload struct {
	Points            int `json:"points"`
	Level             int `json:"level"`
	Delta             int `json:"delta"`
	PointsToNextLevel int `json:"points_to_next_level"`
}

// PointsEvent is a loyalty notification queued after the account was persisted.
type PointsEvent struct {
	EventID    string          `json:"event_id"`
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	Type       PointsEventType `json:"type"`
	Recipient  Recipient       `json:"recipient"`
	Payload    PointsPayload   `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Notifier delivers points notifications to the user.
type Notifier interface {
	Notify(ctx context.Context, event *PointsEvent) error
}
