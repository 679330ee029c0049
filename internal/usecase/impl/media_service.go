package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	SlotRepo    repository.AssetSlotRepository
	GalleryRepo repository.GalleryRepository
	ObjectStore service.ObjectStore
	Codec       service.ImageCodec
	Config      *config.Config
	Logger      *slog.Logger
}

type mediaService struct {
	slotRepo    repository.AssetSlotRepository
	galleryRepo repository.GalleryRepository
	objectStore service.ObjectStore
	codec       service.ImageCodec
	buckets     map[entity.AssetCategory]string
	gracePeriod time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// NewMediaService creates a new media service instance
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	buckets := make(map[entity.AssetCategory]string)
	var gracePeriod time.Duration
	if params.Config != nil && params.Config.ObjectStore != nil {
		for category, bucket := range params.Config.ObjectStore.BucketNames {
			buckets[entity.AssetCategory(category)] = bucket
		}
		gracePeriod = params.Config.ObjectStore.OrphanGracePeriod
	}

	return &mediaService{
		slotRepo:    params.SlotRepo,
		galleryRepo: params.GalleryRepo,
		objectStore: params.ObjectStore,
		codec:       params.Codec,
		buckets:     buckets,
		gracePeriod: gracePeriod,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// SelectSource decodes raw upload bytes into a preview
func (s *mediaService) SelectSource(data []byte) (*entity.PreviewHandle, error) {
	return s.codec.Decode(data)
}

// AdjustCrop bounds region and zoom to the preview dimensions
func (s *mediaService) AdjustCrop(preview *entity.PreviewHandle, region entity.CropRegion, zoom float64) entity.CropState {
	if preview == nil {
		return entity.NewCropState(1, 1, region, zoom)
	}

	return entity.NewCropState(preview.Width, preview.Height, region, zoom)
}

// Finalize compresses the cropped region and uploads it under a fresh object name
func (s *mediaService) Finalize(
	ctx context.Context,
	preview *entity.PreviewHandle,
	crop entity.CropState,
	category entity.AssetCategory,
) (*entity.ImageAsset, error) {
	if preview == nil || preview.Image == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no source image selected")
	}

	bucket, err := s.bucketFor(category)
	if err != nil {
		return nil, err
	}

	// The crop may come from a client; bound it again against this preview.
	state := s.AdjustCrop(preview, crop.Region, crop.Zoom)

	encoded, err := s.codec.Encode(preview.Image, state.Region)
	if err != nil {
		return nil, err
	}

	createdAt := s.now()
	name := objectName(category, createdAt, encoded.Extension)

	if err := s.objectStore.PutObject(ctx, bucket, name, encoded.Data, encoded.ContentType); err != nil {
		s.loggerFrom(ctx).Error("Failed to upload asset",
			slog.String("bucket", bucket),
			slog.String("name", name),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUploadFailed.WrapMessage(name)
	}

	return &entity.ImageAsset{
		Category:    category,
		Bucket:      bucket,
		ObjectName:  name,
		PublicURL:   s.objectStore.PublicURL(bucket, name),
		ContentType: encoded.ContentType,
		Width:       encoded.Width,
		Height:      encoded.Height,
		SizeBytes:   len(encoded.Data),
		Quality:     encoded.Quality,
		Checksum:    util.Checksum(encoded.Data),
		CreatedAt:   createdAt,
	}, nil
}

// ReplaceSlotAsset persists the new binding first and only then sweeps the bucket
func (s *mediaService) ReplaceSlotAsset(ctx context.Context, slotKey string, asset *entity.ImageAsset) (*entity.AssetSlot, error) {
	if !entity.IsValidSlotKey(slotKey) {
		return nil, domainerrors.ErrInvalidSlotKey
	}
	if asset == nil || asset.PublicURL == "" || asset.ObjectName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("asset is not finalized")
	}

	bucket, err := s.bucketFor(asset.Category)
	if err != nil {
		return nil, err
	}

	current, err := s.slotRepo.FindSlot(ctx, slotKey)
	switch {
	case errors.Is(err, repository.ErrSlotNotFound):
		current = nil
	case err != nil:
		return nil, errors.Wrap(domainerrors.ErrSlotPersistFailed, err.Error())
	}

	if current != nil && current.Category != asset.Category {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("slot %s holds %s assets", slotKey, current.Category))
	}

	slot := &entity.AssetSlot{
		Key:        slotKey,
		Category:   asset.Category,
		AssetURL:   asset.PublicURL,
		ObjectName: asset.ObjectName,
		UpdatedAt:  s.now(),
	}

	if err := s.slotRepo.SaveSlot(ctx, slot); err != nil {
		s.loggerFrom(ctx).Error("Failed to persist slot asset",
			slog.String("slot", slotKey),
			slog.String("asset_url", asset.PublicURL),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrSlotPersistFailed, err.Error())
	}

	if _, err := s.removeOrphans(ctx, asset.Category, bucket, asset.ObjectName); err != nil {
		s.loggerFrom(ctx).Warn("Orphan cleanup failed",
			slog.String("slot", slotKey),
			slog.Any("error", err),
		)
	}

	return slot, nil
}

// GetSlot retrieves a slot by key
func (s *mediaService) GetSlot(ctx context.Context, slotKey string) (*entity.AssetSlot, error) {
	if !entity.IsValidSlotKey(slotKey) {
		return nil, domainerrors.ErrInvalidSlotKey
	}

	slot, err := s.slotRepo.FindSlot(ctx, slotKey)
	if errors.Is(err, repository.ErrSlotNotFound) {
		return nil, domainerrors.ErrSlotNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find slot")
	}

	return slot, nil
}

// DeleteSlot removes a slot row
func (s *mediaService) DeleteSlot(ctx context.Context, slotKey string) error {
	if !entity.IsValidSlotKey(slotKey) {
		return domainerrors.ErrInvalidSlotKey
	}

	deleted, err := s.slotRepo.DeleteSlot(ctx, slotKey)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete slot")
	}
	if !deleted {
		return domainerrors.ErrSlotNotFound
	}

	return nil
}

// ReplaceGalleryImages persists the new ordered image list first and only then sweeps the bucket
func (s *mediaService) ReplaceGalleryImages(
	ctx context.Context,
	key string,
	category entity.AssetCategory,
	entries []usecase.GalleryEntry,
) (*entity.Gallery, error) {
	if !entity.IsValidSlotKey(key) {
		return nil, domainerrors.ErrInvalidGalleryKey
	}

	limit := category.MaxGalleryImages()
	if limit == 0 {
		return nil, domainerrors.ErrUnknownAssetCategory.WrapMessage(fmt.Sprintf("%s has no galleries", category))
	}
	if len(entries) > limit {
		return nil, domainerrors.ErrTooManyImages.WrapMessage(fmt.Sprintf("%d of at most %d", len(entries), limit))
	}

	bucket, err := s.bucketFor(category)
	if err != nil {
		return nil, err
	}

	current, err := s.galleryRepo.FindGallery(ctx, key)
	switch {
	case errors.Is(err, repository.ErrGalleryNotFound):
		current = nil
	case err != nil:
		return nil, errors.Wrap(domainerrors.ErrGalleryPersistFailed, err.Error())
	}

	if current != nil && current.Category != category {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("gallery %s holds %s assets", key, current.Category))
	}

	images := make([]entity.GalleryImage, 0, len(entries))
	var added []string
	for i, entry := range entries {
		img, err := resolveGalleryEntry(current, category, entry)
		if err != nil {
			return nil, errors.Wrapf(err, "image %d", i)
		}
		if entry.Asset != nil {
			added = append(added, img.ObjectName)
		}
		images = append(images, img)
	}

	gallery := &entity.Gallery{
		Key:       key,
		Category:  category,
		Images:    images,
		UpdatedAt: s.now(),
	}

	if err := s.galleryRepo.SaveGallery(ctx, gallery); err != nil {
		s.loggerFrom(ctx).Error("Failed to persist gallery",
			slog.String("gallery", key),
			slog.Int("images", len(images)),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrGalleryPersistFailed, err.Error())
	}

	if _, err := s.removeOrphans(ctx, category, bucket, added...); err != nil {
		s.loggerFrom(ctx).Warn("Orphan cleanup failed",
			slog.String("gallery", key),
			slog.Any("error", err),
		)
	}

	return gallery, nil
}

// GetGallery retrieves a gallery by key
func (s *mediaService) GetGallery(ctx context.Context, key string) (*entity.Gallery, error) {
	if !entity.IsValidSlotKey(key) {
		return nil, domainerrors.ErrInvalidGalleryKey
	}

	gallery, err := s.galleryRepo.FindGallery(ctx, key)
	if errors.Is(err, repository.ErrGalleryNotFound) {
		return nil, domainerrors.ErrGalleryNotFound
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find gallery")
	}

	return gallery, nil
}

// DeleteGallery removes the gallery row, then deletes the objects it referenced.
// Object removal is best effort; whatever survives is left for the next sweep.
func (s *mediaService) DeleteGallery(ctx context.Context, key string) error {
	gallery, err := s.GetGallery(ctx, key)
	if err != nil {
		return err
	}

	deleted, err := s.galleryRepo.DeleteGallery(ctx, key)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete gallery")
	}
	if !deleted {
		return domainerrors.ErrGalleryNotFound
	}

	names := gallery.ObjectNames()
	if len(names) == 0 {
		return nil
	}

	bucket, err := s.bucketFor(gallery.Category)
	if err == nil {
		err = s.objectStore.DeleteObjects(ctx, bucket, names)
	}
	if err != nil {
		s.loggerFrom(ctx).Warn("Gallery object cleanup failed",
			slog.String("gallery", key),
			slog.Any("error", &domainerrors.OrphanCleanupError{Bucket: bucket, Names: names, Err: err}),
		)
	}

	return nil
}

// resolveGalleryEntry turns an entry into the image to store: a kept image must already be in
// current, a new asset must be finalized for category.
func resolveGalleryEntry(current *entity.Gallery, category entity.AssetCategory, entry usecase.GalleryEntry) (entity.GalleryImage, error) {
	switch {
	case entry.Asset != nil && entry.ExistingURL != "":
		return entity.GalleryImage{}, domainerrors.ErrValidationFailed.WrapMessage("an entry is either kept or new")
	case entry.Asset != nil:
		asset := entry.Asset
		if asset.PublicURL == "" || asset.ObjectName == "" {
			return entity.GalleryImage{}, domainerrors.ErrValidationFailed.WrapMessage("asset is not finalized")
		}
		if asset.Category != category {
			return entity.GalleryImage{}, domainerrors.ErrValidationFailed.WrapMessage(
				fmt.Sprintf("asset of category %s", asset.Category))
		}

		return entity.GalleryImage{URL: asset.PublicURL, ObjectName: asset.ObjectName, Alt: entry.Alt, Text: entry.Text}, nil
	case entry.ExistingURL != "":
		img, ok := current.ImageByURL(entry.ExistingURL)
		if !ok {
			return entity.GalleryImage{}, domainerrors.ErrValidationFailed.WrapMessage(
				fmt.Sprintf("%s is not in the gallery", entry.ExistingURL))
		}
		img.Alt, img.Text = entry.Alt, entry.Text

		return img, nil
	default:
		return entity.GalleryImage{}, domainerrors.ErrValidationFailed.WrapMessage("entry has no image")
	}
}

// SweepOrphans removes unreferenced objects of a category's bucket
func (s *mediaService) SweepOrphans(ctx context.Context, category entity.AssetCategory) (*usecase.SweepResult, error) {
	bucket, err := s.bucketFor(category)
	if err != nil {
		return nil, err
	}

	result, err := s.removeOrphans(ctx, category, bucket)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// removeOrphans deletes objects in bucket that no slot or gallery references and that are older
// than the grace period. Names in keep are never deleted.
func (s *mediaService) removeOrphans(
	ctx context.Context,
	category entity.AssetCategory,
	bucket string,
	keep ...string,
) (*usecase.SweepResult, error) {
	result := &usecase.SweepResult{Category: category, Bucket: bucket, Deleted: []string{}}

	referenced := make(map[string]struct{})
	for _, name := range keep {
		referenced[name] = struct{}{}
	}

	// A bucket may be shared by several categories; all of their references count.
	for _, sharing := range s.categoriesIn(bucket) {
		slotNames, err := s.slotRepo.ListReferencedObjects(ctx, sharing)
		if err != nil {
			return nil, &domainerrors.OrphanCleanupError{Bucket: bucket, Err: errors.Wrap(err, "list slot objects")}
		}
		galleryNames, err := s.galleryRepo.ListReferencedObjects(ctx, sharing)
		if err != nil {
			return nil, &domainerrors.OrphanCleanupError{Bucket: bucket, Err: errors.Wrap(err, "list gallery objects")}
		}
		for _, name := range slices.Concat(slotNames, galleryNames) {
			referenced[name] = struct{}{}
		}
	}

	objects, err := s.objectStore.ListObjects(ctx, bucket, "")
	if err != nil {
		return nil, &domainerrors.OrphanCleanupError{Bucket: bucket, Err: err}
	}
	result.Scanned = len(objects)

	cutoff := s.now().Add(-s.gracePeriod)
	var orphans []string
	for _, obj := range objects {
		if _, ok := referenced[obj.Name]; ok {
			continue
		}
		if obj.ModTime.After(cutoff) {
			continue
		}
		orphans = append(orphans, obj.Name)
	}

	if len(orphans) == 0 {
		return result, nil
	}

	if err := s.objectStore.DeleteObjects(ctx, bucket, orphans); err != nil {
		return nil, &domainerrors.OrphanCleanupError{Bucket: bucket, Names: orphans, Err: err}
	}

	s.loggerFrom(ctx).Info("Orphaned assets removed",
		slog.String("bucket", bucket),
		slog.Int("count", len(orphans)),
	)
	result.Deleted = orphans

	return result, nil
}

func (s *mediaService) bucketFor(category entity.AssetCategory) (string, error) {
	bucket, ok := s.buckets[category]
	if !ok || bucket == "" {
		return "", domainerrors.ErrUnknownAssetCategory.WrapMessage(string(category))
	}

	return bucket, nil
}

func (s *mediaService) categoriesIn(bucket string) []entity.AssetCategory {
	categories := make([]entity.AssetCategory, 0, 1)
	for category, name := range s.buckets {
		if name == bucket {
			categories = append(categories, category)
		}
	}
	slices.Sort(categories)

	return categories
}

func (s *mediaService) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// objectName builds <prefix>-<unixMillis>-<random><ext>
func objectName(category entity.AssetCategory, at time.Time, extension string) string {
	return fmt.Sprintf("%s-%d-%s%s", category.NamePrefix(), at.UnixMilli(), uuid.NewString()[:8], extension)
}
