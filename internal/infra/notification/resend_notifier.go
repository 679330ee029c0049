package notification

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"

	"github.com/pkg/errors"
)

// DefaultResendEndpoint is the Resend send-email API
const DefaultResendEndpoint = "https://api.resend.com/emails"

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// resendNotifier emails points events through the Resend API
type resendNotifier struct {
	endpoint   string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewResendNotifier creates an email notifier. An empty endpoint uses the public Resend API.
func NewResendNotifier(endpoint, apiKey, from string, timeout time.Duration, logger *slog.Logger) service.Notifier {
	if endpoint == "" {
		endpoint = DefaultResendEndpoint
	}

	return &resendNotifier{
		endpoint:   endpoint,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (n *resendNotifier) Notify(ctx context.Context, event *service.PointsEvent) error {
	if event.Recipient.Email == "" {
		return retry.Permanent(errors.Errorf("user %s has no email address", event.Recipient.UserID))
	}

	content := render(event)
	email := resendEmail{
		From:    n.from,
		To:      []string{event.Recipient.Email},
		Subject: content.Subject,
		Text:    content.Body,
	}

	if err := postJSON(ctx, n.httpClient, n.endpoint, n.apiKey, email); err != nil {
		return err
	}

	n.logger.Debug("[ResendNotifier] Points email sent",
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}
