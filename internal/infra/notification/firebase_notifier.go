package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// messageSender is the subset of the FCM client used for topic pushes
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// firebaseNotifier pushes points events to the per-user FCM topic
type firebaseNotifier struct {
	client      messageSender
	topicPrefix string
	logger      *slog.Logger
}

// NewFirebaseNotifier initializes the Firebase app and its messaging client
func NewFirebaseNotifier(ctx context.Context, projectID, credentialsPath, topicPrefix string, logger *slog.Logger) (service.Notifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseNotifier(client, topicPrefix, logger), nil
}

func newFirebaseNotifier(client messageSender, topicPrefix string, logger *slog.Logger) *firebaseNotifier {
	return &firebaseNotifier{
		client:      client,
		topicPrefix: topicPrefix,
		logger:      logger,
	}
}

func (n *firebaseNotifier) Notify(ctx context.Context, event *service.PointsEvent) error {
	content := render(event)

	msg := &messaging.Message{
		Topic: n.topicPrefix + event.Recipient.UserID,
		Notification: &messaging.Notification{
			Title: content.Subject,
			Body:  content.Body,
		},
		Data: data(event),
	}

	messageID, err := n.client.Send(ctx, msg)
	if err != nil {
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return retry.Permanent(errors.Wrap(err, "failed to send notification"))
		}

		return errors.Wrap(err, "failed to send notification")
	}

	n.logger.Debug("[FirebaseNotifier] Points push sent",
		slog.String("event_id", event.EventID),
		slog.String("message_id", messageID),
	)

	return nil
}
