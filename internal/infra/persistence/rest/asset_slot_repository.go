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

var assetSlotTable = model.AssetSlotModel{}.TableName()

type assetSlotRepository struct {
	client *Client
}

// NewAssetSlotRepository creates the REST-backed slot repository
func NewAssetSlotRepository(client *Client) repository.AssetSlotRepository {
	return &assetSlotRepository{client: client}
}

func (repo *assetSlotRepository) FindSlot(ctx context.Context, key string) (*entity.AssetSlot, error) {
	filters := Eq(nil, "key", key)
	filters.Set("limit", "1")

	var rows []model.AssetSlotModel
	if err := repo.client.Select(ctx, assetSlotTable, filters, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to find asset slot")
	}
	if len(rows) == 0 {
		return nil, repository.ErrSlotNotFound
	}

	return model.ToAssetSlotDomain(&rows[0]), nil
}

func (repo *assetSlotRepository) SaveSlot(ctx context.Context, slot *entity.AssetSlot) error {
	row := model.FromAssetSlotDomain(slot)
	row.UpdatedAt = time.Now().UTC()

	var saved []model.AssetSlotModel
	if err := repo.client.Upsert(ctx, assetSlotTable, "key", row, &saved); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save asset slot")
	}

	slot.UpdatedAt = row.UpdatedAt

	return nil
}

func (repo *assetSlotRepository) ListReferencedObjects(ctx context.Context, category entity.AssetCategory) ([]string, error) {
	filters := Eq(nil, "category", string(category))
	filters.Set("object_name", "neq.")
	filters.Set("select", "object_name")

	rows, err := SelectAll[model.AssetSlotModel](ctx, repo.client, assetSlotTable, filters, "key")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list referenced objects")
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.ObjectName != "" {
			names = append(names, row.ObjectName)
		}
	}

	return names, nil
}

func (repo *assetSlotRepository) DeleteSlot(ctx context.Context, key string) (bool, error) {
	var deleted []model.AssetSlotModel
	if err := repo.client.Delete(ctx, assetSlotTable, url.Values{"key": []string{"eq." + key}}, &deleted); err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to delete asset slot")
	}

	return len(deleted) > 0, nil
}
