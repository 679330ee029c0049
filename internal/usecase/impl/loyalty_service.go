package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// maxProgressAttempts bounds the read-apply-write loop when another writer wins the version race
const maxProgressAttempts = 3

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	AccountRepo repository.LoyaltyAccountRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

type loyaltyService struct {
	accountRepo     repository.LoyaltyAccountRepository
	publisher       service.EventPublisher
	pointsPerReview int
	pointsPerLevel  int
	logger          *slog.Logger
	now             func() time.Time
}

// NewLoyaltyService creates a new loyalty service instance
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	var loyalty *config.LoyaltyConfig
	if params.Config != nil {
		loyalty = params.Config.Loyalty
	}
	loyalty = config.WithLoyaltyDefaults(loyalty)

	return &loyaltyService{
		accountRepo:     params.AccountRepo,
		publisher:       params.Publisher,
		pointsPerReview: loyalty.PointsPerReview,
		pointsPerLevel:  loyalty.PointsPerLevel,
		logger:          params.Logger,
		now:             time.Now,
	}
}

// ApplyPointsDelta persists the new balance, raises the level when it is exceeded, then enqueues notifications
func (s *loyaltyService) ApplyPointsDelta(ctx context.Context, userID uuid.UUID, delta int) (*usecase.PointsResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	for attempt := 1; ; attempt++ {
		account, err := s.findAccount(ctx, userID)
		if err != nil {
			return nil, err
		}

		expectedVersion := account.Version
		change := account.ApplyDelta(delta, s.pointsPerLevel)

		// Losing points at zero leaves nothing to persist or announce.
		if !change.Changed() && !change.LeveledUp {
			return pointsResult(account, change), nil
		}

		err = s.accountRepo.SaveProgress(ctx, account, expectedVersion)
		switch {
		case err == nil:
		case errors.Is(err, repository.ErrVersionConflict):
			if attempt < maxProgressAttempts {
				logger.Debug("Loyalty account changed concurrently, retrying",
					slog.String("user_id", userID.String()),
					slog.Int("attempt", attempt),
				)

				continue
			}

			return nil, domainerrors.ErrConcurrentUpdate
		case errors.Is(err, repository.ErrAccountNotFound):
			return nil, domainerrors.ErrAccountNotFound
		default:
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return nil, err
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "save loyalty progress")
		}

		if change.LeveledUp {
			logger.Info("Loyalty level raised",
				slog.String("user_id", userID.String()),
				slog.Int("level", change.Level),
			)
		}

		s.publishChange(ctx, account, change)

		return pointsResult(account, change), nil
	}
}

// RecordReviewCreated awards the per-review points
func (s *loyaltyService) RecordReviewCreated(ctx context.Context, userID uuid.UUID) (*usecase.PointsResult, error) {
	return s.ApplyPointsDelta(ctx, userID, s.pointsPerReview)
}

// RecordReviewDeleted takes back the per-review points
func (s *loyaltyService) RecordReviewDeleted(ctx context.Context, userID uuid.UUID) (*usecase.PointsResult, error) {
	return s.ApplyPointsDelta(ctx, userID, -s.pointsPerReview)
}

// GetProgress returns the loyalty view of a user
func (s *loyaltyService) GetProgress(ctx context.Context, userID uuid.UUID) (*usecase.Progress, error) {
	account, err := s.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.progress(account), nil
}

// OpenAccount creates an empty account for the user
func (s *loyaltyService) OpenAccount(ctx context.Context, userID uuid.UUID, info *usecase.AccountInfo) (*usecase.Progress, error) {
	if userID == uuid.Nil || info == nil || info.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("user id and email are required")
	}

	now := s.now()
	account := &entity.LoyaltyAccount{
		UserID:    userID,
		Email:     info.Email,
		Name:      info.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.accountRepo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, domainerrors.ErrAccountAlreadyExists
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create loyalty account")
	}

	return s.progress(account), nil
}

func (s *loyaltyService) findAccount(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	account, err := s.accountRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find loyalty account")
	}

	return account, nil
}

func (s *loyaltyService) progress(account *entity.LoyaltyAccount) *usecase.Progress {
	return &usecase.Progress{
		UserID:            account.UserID,
		Email:             account.Email,
		Name:              account.Name,
		Points:            account.Points,
		Level:             account.Level,
		PointsToNextLevel: account.PointsToNextLevel(s.pointsPerLevel),
		ProgressPercent:   account.Points % s.pointsPerLevel * 100 / s.pointsPerLevel,
	}
}

// publishChange enqueues a gain or lose event, plus a levelup event when the level rose.
// Failures are logged; the persisted progress stands.
func (s *loyaltyService) publishChange(ctx context.Context, account *entity.LoyaltyAccount, change entity.PointsChange) {
	var events []*service.PointsEvent
	if change.Changed() {
		eventType := service.PointsEventGain
		if change.Points < change.PreviousPoints {
			eventType = service.PointsEventLose
		}
		events = append(events, s.newEvent(ctx, eventType, account, change))
	}
	if change.LeveledUp {
		events = append(events, s.newEvent(ctx, service.PointsEventLevelUp, account, change))
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	for _, event := range events {
		if err := s.publisher.PublishPointsEvent(ctx, event); err != nil {
			logger.Warn("Points notification not delivered",
				slog.String("event_id", event.EventID),
				slog.Any("error", &domainerrors.NotifyDeliveryError{
					EventType: string(event.Type),
					UserID:    event.Recipient.UserID,
					Err:       err,
				}),
			)
		}
	}
}

func (s *loyaltyService) newEvent(
	ctx context.Context,
	eventType service.PointsEventType,
	account *entity.LoyaltyAccount,
	change entity.PointsChange,
) *service.PointsEvent {
	return &service.PointsEvent{
		EventID:   uuid.NewString(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		Recipient: service.Recipient{
			UserID: account.UserID.String(),
			Email:  account.Email,
			Name:   account.Name,
		},
		Payload: service.PointsPayload{
			Points:            change.Points,
			Level:             change.Level,
			Delta:             change.Points - change.PreviousPoints,
			PointsToNextLevel: account.PointsToNextLevel(s.pointsPerLevel),
		},
		OccurredAt: s.now(),
	}
}

func pointsResult(account *entity.LoyaltyAccount, change entity.PointsChange) *usecase.PointsResult {
	return &usecase.PointsResult{
		UserID:    account.UserID,
		Points:    change.Points,
		Level:     change.Level,
		LeveledUp: change.LeveledUp,
	}
}
