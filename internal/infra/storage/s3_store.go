package storage

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/infra/retry"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
)

// maxDeleteBatch is the S3 DeleteObjects per-request key limit
const maxDeleteBatch = 1000

// s3API is the subset of the S3 client used by the store
type s3API interface {
	s3.ListObjectsV2APIClient
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObjects(ctx context.Context, params *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// S3Store implements service.ObjectStore on an S3-compatible endpoint
type S3Store struct {
	client        s3API
	publicBaseURL string
	cacheControl  string
	logger        *slog.Logger
}

// NewS3Store creates a store from the object store configuration
func NewS3Store(ctx context.Context, cfg *config.ObjectStoreConfig, logger *slog.Logger) (*S3Store, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newS3Store(client, cfg, logger), nil
}

func newS3Store(client s3API, cfg *config.ObjectStoreConfig, logger *slog.Logger) *S3Store {
	return &S3Store{
		client:        client,
		publicBaseURL: cfg.PublicBaseURL,
		cacheControl:  cfg.CacheControl,
		logger:        logger,
	}
}

// PutObject uploads data under name
func (s *S3Store) PutObject(ctx context.Context, bucket, name string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if s.cacheControl != "" {
		input.CacheControl = aws.String(s.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return classifyS3Error(errors.Wrapf(err, "failed to upload %s/%s", bucket, name))
	}

	s.logger.Debug("Object uploaded",
		slog.String("bucket", bucket),
		slog.String("name", name),
		slog.Int("size", len(data)),
	)

	return nil
}

// PublicURL returns the public URL of an object
func (s *S3Store) PublicURL(bucket, name string) string {
	return publicURL(s.publicBaseURL, bucket, name)
}

// ListObjects lists every object in bucket whose name starts with prefix
func (s *S3Store) ListObjects(ctx context.Context, bucket, prefix string) ([]service.ObjectInfo, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucket)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []service.ObjectInfo
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, classifyS3Error(errors.Wrapf(err, "failed to list objects in %s", bucket))
		}

		for _, obj := range page.Contents {
			objects = append(objects, service.ObjectInfo{
				Name:    aws.ToString(obj.Key),
				Size:    aws.ToInt64(obj.Size),
				ModTime: aws.ToTime(obj.LastModified),
			})
		}
	}

	return objects, nil
}

// DeleteObjects removes names from bucket in batches
func (s *S3Store) DeleteObjects(ctx context.Context, bucket string, names []string) error {
	for start := 0; start < len(names); start += maxDeleteBatch {
		batch := names[start:min(start+maxDeleteBatch, len(names))]

		identifiers := make([]types.ObjectIdentifier, 0, len(batch))
		for _, name := range batch {
			identifiers = append(identifiers, types.ObjectIdentifier{Key: aws.String(name)})
		}

		output, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(bucket),
			Delete: &types.Delete{
				Objects: identifiers,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return classifyS3Error(errors.Wrapf(err, "failed to delete objects in %s", bucket))
		}

		if len(output.Errors) > 0 {
			failed := make([]string, 0, len(output.Errors))
			for _, e := range output.Errors {
				failed = append(failed, aws.ToString(e.Key)+": "+aws.ToString(e.Message))
			}

			return errors.Errorf("failed to delete %d objects in %s: %s", len(failed), bucket, strings.Join(failed, "; "))
		}
	}

	return nil
}

// classifyS3Error marks client faults such as NoSuchBucket or AccessDenied as permanent
func classifyS3Error(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorFault() == smithy.FaultClient {
		return retry.Permanent(err)
	}

	return err
}
