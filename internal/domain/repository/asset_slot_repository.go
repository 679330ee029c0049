// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for slot persistence.
var (
	// ErrSlotNotFound is returned when no slot exists for a key.
	ErrSlotNotFound = errors.New("asset slot not found")
)

// AssetSlotRepository defines the data store operations on image slots.
type AssetSlotRepository interface {
	// FindSlot retrieves a slot by key.
	FindSlot(ctx context.Context, key string) (*entity.AssetSlot, error)

	// SaveSlot inserts or replaces the slot row, binding its current asset.
	SaveSlot(ctx context.Context, slot *entity.AssetSlot) error

	// ListReferencedObjects returns the object names referenced by every slot of a category.
	ListReferencedObjects(ctx context.Context, category entity.AssetCategory) ([]string, error)

	// DeleteSlot removes a slot and reports whether a row was deleted.
	DeleteSlot(ctx context.Context, key string) (bool, error)
}
