package storage

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

func newMemStore(t *testing.T) (*BlobStore, *blob.Bucket) {
	t.Helper()

	root := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = root.Close() })

	cfg := &config.ObjectStoreConfig{
		PublicBaseURL: "https://assets.example.com/storage/v1/object/public/",
		CacheControl:  "public, max-age=3600",
	}

	return newBlobStore(root, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), root
}

func TestBlobStore_PutAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, root := newMemStore(t)

	require.NoError(t, store.PutObject(ctx, "categorias", "categoria-1-aaaa.jpg", []byte("one"), "image/jpeg"))
	require.NoError(t, store.PutObject(ctx, "categorias", "categoria-2-bbbb.jpg", []byte("two!"), "image/jpeg"))
	require.NoError(t, store.PutObject(ctx, "portadacategorias", "banner-1-cccc.jpg", []byte("x"), "image/jpeg"))

	attrs, err := root.Attributes(ctx, "categorias/categoria-1-aaaa.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
	assert.Equal(t, "public, max-age=3600", attrs.CacheControl)

	objects, err := store.ListObjects(ctx, "categorias", "")
	require.NoError(t, err)
	require.Len(t, objects, 2)

	names := []string{objects[0].Name, objects[1].Name}
	sort.Strings(names)
	assert.Equal(t, []string{"categoria-1-aaaa.jpg", "categoria-2-bbbb.jpg"}, names)
	assert.False(t, objects[0].ModTime.IsZero())

	filtered, err := store.ListObjects(ctx, "categorias", "categoria-2")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, int64(4), filtered[0].Size)
}

func TestBlobStore_DeleteObjects(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, _ := newMemStore(t)

	require.NoError(t, store.PutObject(ctx, "categorias", "keep.jpg", []byte("k"), "image/jpeg"))
	require.NoError(t, store.PutObject(ctx, "categorias", "drop.jpg", []byte("d"), "image/jpeg"))

	require.NoError(t, store.DeleteObjects(ctx, "categorias", []string{"drop.jpg", "missing.jpg"}))

	objects, err := store.ListObjects(ctx, "categorias", "")
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "keep.jpg", objects[0].Name)
}

func TestBlobStore_PublicURL(t *testing.T) {
	t.Parallel()

	store, _ := newMemStore(t)

	assert.Equal(t,
		"https://assets.example.com/storage/v1/object/public/categorias/categoria-1-aaaa.jpg",
		store.PublicURL("categorias", "categoria-1-aaaa.jpg"),
	)
}
