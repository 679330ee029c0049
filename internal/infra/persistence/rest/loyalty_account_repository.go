package rest

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var loyaltyAccountTable = model.LoyaltyAccountModel{}.TableName()

// accountInsert omits timestamps so the table defaults apply
type accountInsert struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Points  int       `json:"points"`
	Level   int       `json:"level"`
	Version int64     `json:"version"`
}

type progressPatch struct {
	Points    int       `json:"points"`
	Level     int       `json:"level"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

type loyaltyAccountRepository struct {
	client *Client
}

// NewLoyaltyAccountRepository creates the REST-backed account repository
func NewLoyaltyAccountRepository(client *Client) repository.LoyaltyAccountRepository {
	return &loyaltyAccountRepository{client: client}
}

func (repo *loyaltyAccountRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	filters := Eq(nil, "user_id", userID)
	filters.Set("limit", "1")

	var rows []model.LoyaltyAccountModel
	if err := repo.client.Select(ctx, loyaltyAccountTable, filters, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to find loyalty account")
	}
	if len(rows) == 0 {
		return nil, repository.ErrAccountNotFound
	}

	return model.ToLoyaltyAccountDomain(&rows[0]), nil
}

func (repo *loyaltyAccountRepository) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	row := accountInsert{
		UserID:  account.UserID,
		Email:   account.Email,
		Name:    account.Name,
		Points:  account.Points,
		Level:   account.Level,
		Version: account.Version,
	}

	var created []model.LoyaltyAccountModel
	if err := repo.client.Insert(ctx, loyaltyAccountTable, row, &created); err != nil {
		if IsUniqueViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty account")
	}

	if len(created) > 0 {
		account.CreatedAt = created[0].CreatedAt
		account.UpdatedAt = created[0].UpdatedAt
	}

	return nil
}

func (repo *loyaltyAccountRepository) SaveProgress(ctx context.Context, account *entity.LoyaltyAccount, expectedVersion int64) error {
	patch := progressPatch{
		Points:    account.Points,
		Level:     account.Level,
		Version:   expectedVersion + 1,
		UpdatedAt: time.Now().UTC(),
	}

	filters := Eq(nil, "user_id", account.UserID)
	Eq(filters, "version", expectedVersion)

	var updated []model.LoyaltyAccountModel
	if err := repo.client.Update(ctx, loyaltyAccountTable, filters, patch, &updated); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save loyalty progress")
	}

	if len(updated) == 0 {
		if _, err := repo.FindByUserID(ctx, account.UserID); err != nil {
			return err
		}

		return repository.ErrVersionConflict
	}

	account.Version = patch.Version
	account.UpdatedAt = patch.UpdatedAt

	return nil
}
