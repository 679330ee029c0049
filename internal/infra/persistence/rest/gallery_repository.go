package rest

import (
	"context"
	"net/url"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
)

var galleryTable = model.GalleryModel{}.TableName()

type galleryRepository struct {
	client *Client
}

// NewGalleryRepository creates the REST-backed gallery repository
func NewGalleryRepository(client *Client) repository.GalleryRepository {
	return &galleryRepository{client: client}
}

func (repo *galleryRepository) FindGallery(ctx context.Context, key string) (*entity.Gallery, error) {
	filters := Eq(nil, "key", key)
	filters.Set("limit", "1")

	var rows []model.GalleryModel
	if err := repo.client.Select(ctx, galleryTable, filters, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to find gallery")
	}
	if len(rows) == 0 {
		return nil, repository.ErrGalleryNotFound
	}

	return model.ToGalleryDomain(&rows[0]), nil
}

func (repo *galleryRepository) SaveGallery(ctx context.Context, gallery *entity.Gallery) error {
	row := model.FromGalleryDomain(gallery)
	row.UpdatedAt = time.Now().UTC()

	var saved []model.GalleryModel
	if err := repo.client.Upsert(ctx, galleryTable, "key", row, &saved); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save gallery")
	}

	gallery.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *galleryRepository) ListReferencedObjects(ctx context.Context, category entity.AssetCategory) ([]string, error) {
	filters := Eq(nil, "category", string(category))
	filters.Set("select", "key,images")

	rows, err := SelectAll[model.GalleryModel](ctx, repo.client, galleryTable, filters, "key")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gallery objects")
	}

	var names []string
	for i := range rows {
		names = append(names, model.ToGalleryDomain(&rows[i]).ObjectNames()...)
	}

	return names, nil
}

func (repo *galleryRepository) DeleteGallery(ctx context.Context, key string) (bool, error) {
	var deleted []model.GalleryModel
	if err := repo.client.Delete(ctx, galleryTable, url.Values{"key": []string{"eq." + key}}, &deleted); err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete gallery")
	}

	return len(deleted) > 0, nil
}
