package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SweepResult reports one orphan sweep over a category's bucket
type SweepResult struct {
	Category entity.AssetCategory `json:"category"`
	Bucket   string               `json:"bucket"`
	Scanned  int                  `json:"scanned"`
	Deleted  []string             `json:"deleted"`
}

// GalleryEntry is one position of a gallery replacement. Exactly one of ExistingURL and Asset is set:
// ExistingURL keeps an image the gallery already shows, Asset adds a newly finalized one.
type GalleryEntry struct {
	ExistingURL string
	Asset       *entity.ImageAsset
	Alt         string
	Text        string
}

// MediaUsecase defines the image pipeline: select, crop, finalize, then bind to a slot or gallery
type MediaUsecase interface {
	// SelectSource decodes raw upload bytes into a preview without touching the object store
	SelectSource(data []byte) (*entity.PreviewHandle, error)

	// AdjustCrop bounds a requested region and zoom to the preview; it never fails
	AdjustCrop(preview *entity.PreviewHandle, region entity.CropRegion, zoom float64) entity.CropState

	// Finalize compresses the cropped region and uploads it as a new immutable asset
	Finalize(ctx context.Context, preview *entity.PreviewHandle, crop entity.CropState, category entity.AssetCategory) (*entity.ImageAsset, error)

	// ReplaceSlotAsset binds asset to the slot, then removes unreferenced objects of its bucket
	ReplaceSlotAsset(ctx context.Context, slotKey string, asset *entity.ImageAsset) (*entity.AssetSlot, error)

	// GetSlot retrieves a slot by key
	GetSlot(ctx context.Context, slotKey string) (*entity.AssetSlot, error)

	// DeleteSlot removes a slot; its object is left for the next sweep
	DeleteSlot(ctx context.Context, slotKey string) error

	// ReplaceGalleryImages stores the ordered entries as the gallery, then removes unreferenced objects of its bucket
	ReplaceGalleryImages(ctx context.Context, key string, category entity.AssetCategory, entries []GalleryEntry) (*entity.Gallery, error)

	// GetGallery retrieves a gallery by key
	GetGallery(ctx context.Context, key string) (*entity.Gallery, error)

	// DeleteGallery removes a gallery together with the objects it referenced
	DeleteGallery(ctx context.Context, key string) error

	// SweepOrphans deletes every unreferenced object older than the grace period in a category's bucket
	SweepOrphans(ctx context.Context, category entity.AssetCategory) (*SweepResult, error)
}
