package notification

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"
)

// edgeRequest is the body accepted by the points email function
type edgeRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Points     int    `json:"points"`
	ChangeType string `json:"changeType"`
	Level      int    `json:"level"`
}

// edgeNotifier posts points events to a hosted function that renders and sends the email
type edgeNotifier struct {
	endpoint   string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewEdgeNotifier creates a notifier calling the points function at endpoint
func NewEdgeNotifier(endpoint, token string, timeout time.Duration, logger *slog.Logger) service.Notifier {
	return &edgeNotifier{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (n *edgeNotifier) Notify(ctx context.Context, event *service.PointsEvent) error {
	body := edgeRequest{
		Email:      event.Recipient.Email,
		Name:       event.Recipient.Name,
		Points:     event.Payload.Points,
		ChangeType: string(event.Type),
		Level:      event.Payload.Level,
	}

	if err := postJSON(ctx, n.httpClient, n.endpoint, n.token, body); err != nil {
		return err
	}

	n.logger.Debug("[EdgeNotifier] Points notification sent",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}
