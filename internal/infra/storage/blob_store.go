package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes accepted by objectStore.blobUrl
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// BlobStore implements service.ObjectStore on a gocloud.dev bucket.
// Each logical bucket is the key prefix "<bucket>/" inside the opened root bucket.
type BlobStore struct {
	root          *blob.Bucket
	publicBaseURL string
	cacheControl  string
	logger        *slog.Logger
}

// NewBlobStore opens the bucket URL from configuration
func NewBlobStore(ctx context.Context, cfg *config.ObjectStoreConfig, logger *slog.Logger) (*BlobStore, error) {
	if cfg.BlobURL == "" {
		return nil, errors.New("objectStore.blobUrl is required for the blob provider")
	}

	root, err := blob.OpenBucket(ctx, cfg.BlobURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BlobURL)
	}

	return newBlobStore(root, cfg, logger), nil
}

func newBlobStore(root *blob.Bucket, cfg *config.ObjectStoreConfig, logger *slog.Logger) *BlobStore {
	return &BlobStore{
		root:          root,
		publicBaseURL: cfg.PublicBaseURL,
		cacheControl:  cfg.CacheControl,
		logger:        logger,
	}
}

func blobKey(bucket, name string) string {
	return bucket + "/" + name
}

// PutObject uploads data under name
func (s *BlobStore) PutObject(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: s.cacheControl,
	}
	if err := s.root.WriteAll(ctx, blobKey(bucket, name), data, opts); err != nil {
		return errors.Wrapf(err, "failed to upload %s/%s", bucket, name)
	}

	s.logger.Debug("Object uploaded",
		slog.String("bucket", bucket),
		slog.String("name", name),
		slog.Int("size", len(data)),
	)

	return nil
}

// PublicURL returns the public URL of an object
func (s *BlobStore) PublicURL(bucket, name string) string {
	return publicURL(s.publicBaseURL, bucket, name)
}

// ListObjects lists every object in bucket whose name starts with prefix
func (s *BlobStore) ListObjects(ctx context.Context, bucket, prefix string) ([]service.ObjectInfo, error) {
	bucketPrefix := blobKey(bucket, "")

	var objects []service.ObjectInfo
	iter := s.root.List(&blob.ListOptions{Prefix: bucketPrefix + prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list objects in %s", bucket)
		}
		if obj.IsDir {
			continue
		}

		objects = append(objects, service.ObjectInfo{
			Name:    strings.TrimPrefix(obj.Key, bucketPrefix),
			Size:    obj.Size,
			ModTime: obj.ModTime,
		})
	}

	return objects, nil
}

// DeleteObjects removes names from bucket. Names that no longer exist are skipped.
func (s *BlobStore) DeleteObjects(ctx context.Context, bucket string, names []string) error {
	for _, name := range names {
		err := s.root.Delete(ctx, blobKey(bucket, name))
		if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			return errors.Wrapf(err, "failed to delete %s/%s", bucket, name)
		}
	}

	return nil
}

// Close releases the root bucket
func (s *BlobStore) Close() error {
	return s.root.Close()
}
