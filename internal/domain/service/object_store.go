// Package service declares the external collaborators the use cases depend on.
package service

import (
	"context"
	"time"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// ObjectStore is key-addressable blob storage with public URL derivation.
type ObjectStore interface {
	// PutObject writes data under bucket/name.
	PutObject(ctx context.Context, bucket, name string, data []byte, contentType string) error

	// PublicURL derives the public address of bucket/name.
	PublicURL(bucket, name string) string

	// ListObjects lists the objects of bucket whose names start with prefix.
	ListObjects(ctx context.Context, bucket, prefix string) ([]ObjectInfo, error)

	// DeleteObjects removes the named objects. Missing objects are not an error.
	DeleteObjects(ctx context.Context, bucket string, names []string) error
}
