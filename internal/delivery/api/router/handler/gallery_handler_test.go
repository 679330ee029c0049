package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// galleryBody builds a form with the images manifest and one part per named file.
func galleryBody(t *testing.T, manifest string, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("images", manifest))
	for field, data := range files {
		part, err := writer.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func keptImages(n int) string {
	entries := make([]string, n)
	for i := range entries {
		entries[i] = `{"url":"https://cdn.example.com/productos/kept.jpg"}`
	}

	return "[" + strings.Join(entries, ",") + "]"
}

func TestMediaHandler_ReplaceProductImages(t *testing.T) {
	t.Parallel()

	source := []byte("product source")
	keptURL := "https://cdn.example.com/productos/producto-1-b.jpg"
	preview := &entity.PreviewHandle{Format: "png", Width: 1200, Height: 1200}
	region := entity.CropRegion{X: 0, Y: 0, Width: 600, Height: 600}
	crop := entity.NewCropState(1200, 1200, region, 1)
	asset := &entity.ImageAsset{
		Category:   entity.CategoryProduct,
		ObjectName: "producto-2-c.jpg",
		PublicURL:  "https://cdn.example.com/productos/producto-2-c.jpg",
	}
	current := &entity.Gallery{
		Key:      "product:7",
		Category: entity.CategoryProduct,
		Images:   []entity.GalleryImage{{URL: keptURL, ObjectName: "producto-1-b.jpg"}},
	}
	saved := &entity.Gallery{
		Key:      "product:7",
		Category: entity.CategoryProduct,
		Images: []entity.GalleryImage{
			{URL: asset.PublicURL, ObjectName: asset.ObjectName, Alt: "front"},
			{URL: keptURL, ObjectName: "producto-1-b.jpg", Alt: "side"},
		},
		UpdatedAt: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	manifest := `[{"file":"img0","region":{"x":0,"y":0,"width":600,"height":600},"zoom":1,"alt":"front"},` +
		`{"url":"` + keptURL + `","alt":"side"}]`

	tests := []struct {
		name       string
		productID  string
		manifest   string
		files      map[string][]byte
		setup      func(mediaUC *mockUsecase.MockMediaUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name:      "uploads new images and keeps the order",
			productID: "7",
			manifest:  manifest,
			files:     map[string][]byte{"img0": source},
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetGallery(mock.Anything, "product:7").Return(current, nil)
				mediaUC.EXPECT().SelectSource(source).Return(preview, nil)
				mediaUC.EXPECT().AdjustCrop(preview, region, 1.0).Return(crop)
				mediaUC.EXPECT().Finalize(mock.Anything, preview, crop, entity.CategoryProduct).Return(asset, nil)
				mediaUC.EXPECT().
					ReplaceGalleryImages(mock.Anything, "product:7", entity.CategoryProduct, []usecase.GalleryEntry{
						{Asset: asset, Alt: "front"},
						{ExistingURL: keptURL, Alt: "side"},
					}).
					Return(saved, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "too many images are rejected before upload",
			productID:  "7",
			manifest:   keptImages(entity.MaxProductImages + 1),
			wantStatus: http.StatusBadRequest,
			wantCode:   "TOO_MANY_IMAGES",
		},
		{
			name:      "kept url outside the gallery is rejected before upload",
			productID: "7",
			manifest:  `[{"file":"img0"},{"url":"https://cdn.example.com/productos/elsewhere.jpg"}]`,
			files:     map[string][]byte{"img0": source},
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetGallery(mock.Anything, "product:7").Return(current, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "entry with both url and file",
			productID:  "7",
			manifest:   `[{"url":"` + keptURL + `","file":"img0"}]`,
			files:      map[string][]byte{"img0": source},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "malformed manifest",
			productID:  "7",
			manifest:   `{"url":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_INPUT",
		},
		{
			name:       "product id with a separator",
			productID:  "7:8",
			manifest:   `[]`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:      "missing file part",
			productID: "7",
			manifest:  `[{"file":"img0"}]`,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetGallery(mock.Anything, "product:7").Return(nil, domainerrors.ErrGalleryNotFound)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FILE",
		},
		{
			name:      "persist failure",
			productID: "7",
			manifest:  `[]`,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetGallery(mock.Anything, "product:7").Return(nil, domainerrors.ErrGalleryNotFound)
				mediaUC.EXPECT().
					ReplaceGalleryImages(mock.Anything, "product:7", entity.CategoryProduct, []usecase.GalleryEntry{}).
					Return(nil, domainerrors.ErrGalleryPersistFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "GALLERY_PERSIST_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mediaUC := newTestMediaHandler(t)
			if tt.setup != nil {
				tt.setup(mediaUC)
			}

			e := newTestEcho()
			e.PUT("/products/:id/images", h.ReplaceProductImages)

			body, contentType := galleryBody(t, tt.manifest, tt.files)
			req := httptest.NewRequest(http.MethodPut, "/products/"+tt.productID+"/images", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}

			var got GalleryResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, "product:7", got.Key)
			assert.Equal(t, []GalleryImageResponse{
				{URL: asset.PublicURL, Alt: "front"},
				{URL: keptURL, Alt: "side"},
			}, got.Images)
			assert.Equal(t, "2026-03-14T12:00:00Z", got.UpdatedAt)
		})
	}
}

func TestMediaHandler_ReplaceReviewImages_ScopedToCaller(t *testing.T) {
	t.Parallel()

	author := uuid.New()
	key := "review:" + author.String() + ":r1"

	tests := []struct {
		name       string
		caller     uuid.UUID
		setup      func(mediaUC *mockUsecase.MockMediaUsecase)
		wantStatus int
	}{
		{
			name:   "author replaces their review images",
			caller: author,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetGallery(mock.Anything, key).Return(nil, domainerrors.ErrGalleryNotFound)
				mediaUC.EXPECT().
					ReplaceGalleryImages(mock.Anything, key, entity.CategoryReview, []usecase.GalleryEntry{}).
					Return(&entity.Gallery{Key: key, Category: entity.CategoryReview}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "anonymous caller",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mediaUC := newTestMediaHandler(t)
			if tt.setup != nil {
				tt.setup(mediaUC)
			}

			e := newTestEcho()
			e.PUT("/reviews/:id/images", h.ReplaceReviewImages, asCaller(tt.caller, ""))

			body, contentType := galleryBody(t, `[]`, nil)
			req := httptest.NewRequest(http.MethodPut, "/reviews/r1/images", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMediaHandler_DeleteGalleryImages(t *testing.T) {
	t.Parallel()

	author := uuid.New()

	tests := []struct {
		name       string
		route      string
		target     string
		handler    func(h *MediaHandler) echo.HandlerFunc
		setup      func(mediaUC *mockUsecase.MockMediaUsecase)
		wantStatus int
	}{
		{
			name:    "product gallery",
			route:   "/products/:id/images",
			target:  "/products/7/images",
			handler: func(h *MediaHandler) echo.HandlerFunc { return h.DeleteProductImages },
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().DeleteGallery(mock.Anything, "product:7").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:    "review gallery of the caller",
			route:   "/reviews/:id/images",
			target:  "/reviews/r1/images",
			handler: func(h *MediaHandler) echo.HandlerFunc { return h.DeleteReviewImages },
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().DeleteGallery(mock.Anything, "review:"+author.String()+":r1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:    "unknown gallery",
			route:   "/products/:id/images",
			target:  "/products/8/images",
			handler: func(h *MediaHandler) echo.HandlerFunc { return h.DeleteProductImages },
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().DeleteGallery(mock.Anything, "product:8").Return(domainerrors.ErrGalleryNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mediaUC := newTestMediaHandler(t)
			tt.setup(mediaUC)

			e := newTestEcho()
			e.DELETE(tt.route, tt.handler(h), asCaller(author, ""))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMediaHandler_GetGallery(t *testing.T) {
	t.Parallel()

	h, mediaUC := newTestMediaHandler(t)
	mediaUC.EXPECT().GetGallery(mock.Anything, "product:7").Return(&entity.Gallery{
		Key:      "product:7",
		Category: entity.CategoryProduct,
		Images:   []entity.GalleryImage{{URL: "https://cdn.example.com/productos/a.jpg", ObjectName: "a.jpg", Text: "detail"}},
	}, nil)

	e := newTestEcho()
	e.GET("/galleries/:key", h.GetGallery)

	req := httptest.NewRequest(http.MethodGet, "/galleries/product:7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "object_name")

	var got GalleryResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
	assert.Equal(t, entity.CategoryProduct, got.Category)
	assert.Equal(t, []GalleryImageResponse{{URL: "https://cdn.example.com/productos/a.jpg", Text: "detail"}}, got.Images)
	assert.Empty(t, got.UpdatedAt)
}
