package notification

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates the configured Notifier wrapped with the retry policy
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Notifier
	if cfg == nil {
		cfg = &config.NotifierConfig{Provider: config.NotifierProviderLog}
	}
	logger := params.Logger.With(slog.String("component", "notifier"))

	var notifier service.Notifier

	switch cfg.Provider {
	case config.NotifierProviderLog, "":
		logger.Info("Using log notifier")

		return NewLogNotifier(logger), nil

	case config.NotifierProviderEdge:
		if cfg.Endpoint == "" {
			return nil, errors.New("notifier endpoint is required for edge provider")
		}
		logger.Info("Using edge function notifier", slog.String("endpoint", cfg.Endpoint))

		notifier = NewEdgeNotifier(cfg.Endpoint, cfg.Token, cfg.Timeout, logger)

	case config.NotifierProviderResend:
		if cfg.Token == "" {
			return nil, errors.New("notifier token is required for resend provider")
		}
		if cfg.From == "" {
			return nil, errors.New("notifier from address is required for resend provider")
		}
		logger.Info("Using Resend email notifier", slog.String("from", cfg.From))

		notifier = NewResendNotifier(cfg.Endpoint, cfg.Token, cfg.From, cfg.Timeout, logger)

	case config.NotifierProviderFirebase:
		fb := params.Config.Firebase
		if fb == nil {
			return nil, errors.New("firebase configuration is required for firebase provider")
		}
		logger.Info("Using Firebase push notifier", slog.String("topic_prefix", fb.TopicPrefix))

		var err error
		notifier, err = NewFirebaseNotifier(params.Ctx, fb.ProjectID, fb.CredentialsPath, fb.TopicPrefix, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown notifier provider: %s", cfg.Provider)
	}

	return WithRetry(notifier, retry.NewPolicy(params.Config.Retry), logger), nil
}

// Module provides the notifier FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
