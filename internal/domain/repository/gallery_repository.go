package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrGalleryNotFound is returned when no gallery exists for a key.
var ErrGalleryNotFound = errors.New("gallery not found")

// GalleryRepository defines the data store operations on ordered image galleries.
type GalleryRepository interface {
	// FindGallery retrieves a gallery by key.
	FindGallery(ctx context.Context, key string) (*entity.Gallery, error)

	// SaveGallery inserts or replaces the gallery row with its ordered images.
	SaveGallery(ctx context.Context, gallery *entity.Gallery) error

	// ListReferencedObjects returns the object names referenced by every gallery of a category.
	ListReferencedObjects(ctx context.Context, category entity.AssetCategory) ([]string, error)

	// DeleteGallery removes a gallery and reports whether a row was deleted.
	DeleteGallery(ctx context.Context, key string) (bool, error)
}
