package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loyaltyAccountRepository implements the repository.LoyaltyAccountRepository interface.
type loyaltyAccountRepository struct {
	db *gorm.DB
}

// NewLoyaltyAccountRepository is the constructor for loyaltyAccountRepository.
func NewLoyaltyAccountRepository(db *gorm.DB) repository.LoyaltyAccountRepository {
	return &loyaltyAccountRepository{
		db: db,
	}
}

// FindByUserID retrieves the account of a user.
func (repo *loyaltyAccountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	var accountM model.LoyaltyAccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty account")
	}

	return model.ToLoyaltyAccountDomain(&accountM), nil
}

// CreateAccount persists a new account.
func (repo *loyaltyAccountRepository) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	accountM := model.FromLoyaltyAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// SaveProgress writes points and level guarded by the expected version.
func (repo *loyaltyAccountRepository) SaveProgress(ctx context.Context, account *entity.LoyaltyAccount, expectedVersion int64) error {
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("user_id = ? AND version = ?", account.UserID, expectedVersion).
		Updates(map[string]any{
			"points":     account.Points,
			"level":      account.Level,
			"version":    expectedVersion + 1,
			"updated_at": now,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidBalance.WrapMessage("points or level below zero")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save loyalty progress")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.LoyaltyAccountModel{}).
			Where("user_id = ?", account.UserID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check loyalty account")
		}
		if count == 0 {
			return repository.ErrAccountNotFound
		}

		return repository.ErrVersionConflict
	}

	account.Version = expectedVersion + 1
	account.UpdatedAt = now

	return nil
}
