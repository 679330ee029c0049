package notification

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"
)

type retryingNotifier struct {
	next   service.Notifier
	policy retry.Policy
	logger *slog.Logger
}

// WithRetry decorates notifier with the bounded retry policy
func WithRetry(notifier service.Notifier, policy retry.Policy, logger *slog.Logger) service.Notifier {
	return &retryingNotifier{next: notifier, policy: policy, logger: logger}
}

// Notify keeps the permanent marker on the returned error so queue consumers can drop the event.
func (n *retryingNotifier) Notify(ctx context.Context, event *service.PointsEvent) error {
	var permanent bool
	err := retry.Do(ctx, n.policy, n.logger, "notify "+string(event.Type), func(ctx context.Context) error {
		err := n.next.Notify(ctx, event)
		permanent = retry.IsPermanent(err)

		return err
	})
	if permanent {
		return retry.Permanent(err)
	}

	return err
}
