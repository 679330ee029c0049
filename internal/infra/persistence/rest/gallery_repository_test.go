package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryRepository_FindGallery(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		repo := NewGalleryRepository(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "eq.product:7", r.URL.Query().Get("key"))
			_, _ = w.Write([]byte(`[{"key":"product:7","category":"product","images":[` +
				`{"url":"https://cdn/a.jpg","object_name":"a.jpg","alt":"front"},` +
				`{"url":"https://cdn/b.jpg","object_name":"b.jpg","text":"detail"}],` +
				`"updated_at":"2026-03-01T10:00:00+00:00"}]`))
		}))

		gallery, err := repo.FindGallery(context.Background(), "product:7")
		require.NoError(t, err)
		assert.Equal(t, entity.CategoryProduct, gallery.Category)
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, gallery.ObjectNames())
		assert.Equal(t, "front", gallery.Images[0].Alt)
		assert.Equal(t, "detail", gallery.Images[1].Text)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		repo := NewGalleryRepository(newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))

		gallery, err := repo.FindGallery(context.Background(), "product:7")
		assert.Nil(t, gallery)
		assert.ErrorIs(t, err, repository.ErrGalleryNotFound)
	})
}

func TestGalleryRepository_SaveGallery(t *testing.T) {
	t.Parallel()

	repo := NewGalleryRepository(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key", r.URL.Query().Get("on_conflict"))

		var row model.GalleryModel
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&row))
		assert.Equal(t, "review:u1:r1", row.Key)
		assert.Equal(t, "review", row.Category)
		assert.Len(t, row.Images, 1)

		_, _ = w.Write([]byte(`[{"key":"review:u1:r1"}]`))
	}))

	gallery := &entity.Gallery{
		Key:      "review:u1:r1",
		Category: entity.CategoryReview,
		Images:   []entity.GalleryImage{{URL: "https://cdn/r.jpg", ObjectName: "review-1.jpg"}},
	}
	require.NoError(t, repo.SaveGallery(context.Background(), gallery))
	assert.False(t, gallery.UpdatedAt.IsZero())
}

func TestGalleryRepository_ListReferencedObjects_PagesPastRowCap(t *testing.T) {
	t.Parallel()

	const galleries, perGallery, maxRows = 7, 3, 2

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "eq.product", query.Get("category"))
		assert.Equal(t, "key,images", query.Get("select"))

		offset, _ := strconv.Atoi(query.Get("offset"))
		end := min(offset+maxRows, galleries)

		rows := make([]model.GalleryModel, 0, maxRows)
		for g := offset; g < end; g++ {
			row := model.GalleryModel{Key: fmt.Sprintf("product:%d", g), Category: "product"}
			for i := range perGallery {
				row.Images = append(row.Images, entity.GalleryImage{ObjectName: fmt.Sprintf("producto-%d-%d.jpg", g, i)})
			}
			rows = append(rows, row)
		}

		if len(rows) == 0 {
			w.Header().Set("Content-Range", fmt.Sprintf("*/%d", galleries))
		} else {
			w.Header().Set("Content-Range", fmt.Sprintf("%d-%d/%d", offset, end-1, galleries))
		}
		w.WriteHeader(http.StatusPartialContent)
		assert.NoError(t, json.NewEncoder(w).Encode(rows))
	})

	names, err := NewGalleryRepository(client).ListReferencedObjects(context.Background(), entity.CategoryProduct)
	require.NoError(t, err)
	require.Len(t, names, galleries*perGallery)
	assert.Equal(t, "producto-0-0.jpg", names[0])
	assert.Equal(t, "producto-6-2.jpg", names[len(names)-1])
}

func TestGalleryRepository_DeleteGallery(t *testing.T) {
	t.Parallel()

	repo := NewGalleryRepository(newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if r.URL.Query().Get("key") == "eq.product:7" {
			_, _ = w.Write([]byte(`[{"key":"product:7"}]`))

			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))

	deleted, err := repo.DeleteGallery(context.Background(), "product:7")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteGallery(context.Background(), "product:8")
	require.NoError(t, err)
	assert.False(t, deleted)
}
