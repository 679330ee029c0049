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

// galleryRepository implements the repository.GalleryRepository interface.
type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository is the constructor for galleryRepository.
func NewGalleryRepository(db *gorm.DB) repository.GalleryRepository {
	return &galleryRepository{
		db: db,
	}
}

// FindGallery retrieves a gallery by key.
func (repo *galleryRepository) FindGallery(ctx context.Context, key string) (*entity.Gallery, error) {
	var galleryM model.GalleryModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&galleryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGalleryNotFound
		}

		return nil, errors.Wrap(err, "failed to find gallery")
	}

	return model.ToGalleryDomain(&galleryM), nil
}

// SaveGallery upserts the gallery row, replacing its image list.
func (repo *galleryRepository) SaveGallery(ctx context.Context, gallery *entity.Gallery) error {
	galleryM := model.FromGalleryDomain(gallery)
	galleryM.UpdatedAt = time.Now().UTC()

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"category", "images", "updated_at"}),
		}).
		Create(galleryM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save gallery")
	}

	gallery.UpdatedAt = galleryM.UpdatedAt

	return nil
}

// ListReferencedObjects unnests the image lists of every gallery of a category.
func (repo *galleryRepository) ListReferencedObjects(ctx context.Context, category entity.AssetCategory) ([]string, error) {
	var names []string

	if err := repo.db.WithContext(ctx).
		Table("galleries, jsonb_array_elements(galleries.images) AS image").
		Where("galleries.category = ? AND image->>'object_name' <> ''", string(category)).
		Pluck("image->>'object_name'", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gallery objects")
	}

	return names, nil
}

// DeleteGallery removes a gallery row.
func (repo *galleryRepository) DeleteGallery(ctx context.Context, key string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.GalleryModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete gallery")
	}

	return result.RowsAffected > 0, nil
}
