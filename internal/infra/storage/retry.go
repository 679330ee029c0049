package storage

import (
	"context"
	"log/slog"

	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"
)

// retryingStore wraps an ObjectStore so that every remote call runs under the retry policy
type retryingStore struct {
	next   service.ObjectStore
	policy retry.Policy
	logger *slog.Logger
}

// WithRetry decorates store with the bounded retry policy
func WithRetry(store service.ObjectStore, policy retry.Policy, logger *slog.Logger) service.ObjectStore {
	return &retryingStore{next: store, policy: policy, logger: logger}
}

func (s *retryingStore) PutObject(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	return retry.Do(ctx, s.policy, s.logger, "put object", func(ctx context.Context) error {
		return s.next.PutObject(ctx, bucket, name, data, contentType)
	})
}

func (s *retryingStore) PublicURL(bucket, name string) string {
	return s.next.PublicURL(bucket, name)
}

func (s *retryingStore) ListObjects(ctx context.Context, bucket, prefix string) ([]service.ObjectInfo, error) {
	var objects []service.ObjectInfo
	err := retry.Do(ctx, s.policy, s.logger, "list objects", func(ctx context.Context) error {
		var err error
		objects, err = s.next.ListObjects(ctx, bucket, prefix)

		return err
	})

	return objects, err
}

func (s *retryingStore) DeleteObjects(ctx context.Context, bucket string, names []string) error {
	return retry.Do(ctx, s.policy, s.logger, "delete objects", func(ctx context.Context) error {
		return s.next.DeleteObjects(ctx, bucket, names)
	})
}
