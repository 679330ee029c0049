package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assetSlotRepository implements the repository.AssetSlotRepository interface.
type assetSlotRepository struct {
	db *gorm.DB
}

// NewAssetSlotRepository is the constructor for assetSlotRepository.
func NewAssetSlotRepository(db *gorm.DB) repository.AssetSlotRepository {
	return &assetSlotRepository{
		db: db,
	}
}

// FindSlot retrieves a slot by key.
func (repo *assetSlotRepository) FindSlot(ctx context.Context, key string) (*entity.AssetSlot, error) {
	var slotM model.AssetSlotModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&slotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSlotNotFound
		}

		return nil, errors.Wrap(err, "failed to find asset slot")
	}

	return model.ToAssetSlotDomain(&slotM), nil
}

// SaveSlot upserts the slot row in a single statement.
func (repo *assetSlotRepository) SaveSlot(ctx context.Context, slot *entity.AssetSlot) error {
	slotM := model.FromAssetSlotDomain(slot)
	slotM.UpdatedAt = time.Now().UTC()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "asset_url", "object_name", "updated_at"}),
		}).
		Create(slotM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save asset slot")
	}

	slot.UpdatedAt = slotM.UpdatedAt

	return nil
}

// ListReferencedObjects returns the object names bound by every slot of a category.
func (repo *assetSlotRepository) ListReferencedObjects(ctx context.Context, category entity.AssetCategory) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Model(&model.AssetSlotModel{}).
		Where("category = ? AND object_name <> ''", string(category)).
		Pluck("object_name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list referenced objects")
	}

	return names, nil
}

// DeleteSlot removes a slot row.
func (repo *assetSlotRepository) DeleteSlot(ctx context.Context, key string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.AssetSlotModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete asset slot")
	}

	return result.RowsAffected > 0, nil
}
