package model

import (
	"slices"

	"storefront/internal/domain/entity"
)

// ToAssetSlotDomain converts a slot row to the domain entity.
func ToAssetSlotDomain(data *AssetSlotModel) *entity.AssetSlot {
	if data == nil {
		return nil
	}

	return &entity.AssetSlot{
		Key:        data.Key,
		Category:   entity.AssetCategory(data.Category),
		AssetURL:   data.AssetURL,
		ObjectName: data.ObjectName,
		UpdatedAt:  data.UpdatedAt,
	}
}

// FromAssetSlotDomain converts a domain slot to its row.
func FromAssetSlotDomain(data *entity.AssetSlot) *AssetSlotModel {
	if data == nil {
		return nil
	}

	return &AssetSlotModel{
		Key:        data.Key,
		Category:   string(data.Category),
		AssetURL:   data.AssetURL,
		ObjectName: data.ObjectName,
		UpdatedAt:  data.UpdatedAt,
	}
}

// ToGalleryDomain converts a gallery row to the domain entity.
func ToGalleryDomain(data *GalleryModel) *entity.Gallery {
	if data == nil {
		return nil
	}

	return &entity.Gallery{
		Key:       data.Key,
		Category:  entity.AssetCategory(data.Category),
		Images:    slices.Clone(data.Images),
		UpdatedAt: data.UpdatedAt,
	}
}

// FromGalleryDomain converts a domain gallery to its row. A gallery without images stores "[]".
func FromGalleryDomain(data *entity.Gallery) *GalleryModel {
	if data == nil {
		return nil
	}

	images := slices.Clone(data.Images)
	if images == nil {
		images = []entity.GalleryImage{}
	}

	return &GalleryModel{
		Key:       data.Key,
		Category:  string(data.Category),
		Images:    images,
		UpdatedAt: data.UpdatedAt,
	}
}

// ToLoyaltyAccountDomain converts an account row to the domain entity.
func ToLoyaltyAccountDomain(data *LoyaltyAccountModel) *entity.LoyaltyAccount {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyAccount{
		UserID:    data.UserID,
		Email:     data.Email,
		Name:      data.Name,
		Points:    data.Points,
		Level:     data.Level,
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// FromLoyaltyAccountDomain converts a domain account to its row.
func FromLoyaltyAccountDomain(data *entity.LoyaltyAccount) *LoyaltyAccountModel {
	if data == nil {
		return nil
	}

	return &LoyaltyAccountModel{
		UserID:    data.UserID,
		Email:     data.Email,
		Name:      data.Name,
		Points:    data.Points,
		Level:     data.Level,
		Version:   data.Version,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// AllModels lists every table managed by migrations.
func AllModels() []any {
	return []any{&AssetSlotModel{}, &GalleryModel{}, &LoyaltyAccountModel{}}
}
