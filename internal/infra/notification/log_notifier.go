package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
)

// logNotifier writes notifications to the log, for development
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a notifier that only logs
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, event *service.PointsEvent) error {
	content := render(event)

	n.logger.InfoContext(ctx, "[LogNotifier] Points notification",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
		slog.String("user_id", event.Recipient.UserID),
		slog.String("subject", content.Subject),
		slog.Int("points", event.Payload.Points),
		slog.Int("level", event.Payload.Level),
	)

	return nil
}
