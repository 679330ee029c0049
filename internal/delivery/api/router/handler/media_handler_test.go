package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMediaHandler(t *testing.T) (*MediaHandler, *mockUsecase.MockMediaUsecase) {
	mediaUC := mockUsecase.NewMockMediaUsecase(t)

	return NewMediaHandler(MediaHandlerParams{MediaUC: mediaUC, Logger: discardLogger()}), mediaUC
}

// multipartBody builds a form with an optional file part and plain fields.
func multipartBody(t *testing.T, file []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if file != nil {
		part, err := writer.CreateFormFile("file", "upload.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func stringPtr(s string) *string {
	return &s
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
			Rule  string `json:"rule"`
		} `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestMediaHandler_InspectSource(t *testing.T) {
	t.Parallel()

	source := []byte("raw image bytes")
	preview := &entity.PreviewHandle{Format: "png", ContentType: "image/png", Width: 1200, Height: 800, SizeBytes: len(source)}
	fullCrop := entity.NewCropState(1200, 800, entity.CropRegion{}, entity.MinZoom)

	tests := []struct {
		name       string
		file       []byte
		setup      func(mediaUC *mockUsecase.MockMediaUsecase)
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name: "returns metadata and full crop",
			file: source,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().SelectSource(source).Return(preview, nil)
				mediaUC.EXPECT().AdjustCrop(preview, entity.CropRegion{}, entity.MinZoom).Return(fullCrop)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing file",
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FILE",
		},
		{
			name: "unsupported format",
			file: source,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().SelectSource(source).Return(nil, domainerrors.ErrUnsupportedFormat)
			},
			wantStatus: http.StatusUnsupportedMediaType,
			wantCode:   "UNSUPPORTED_FORMAT",
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
			e.POST("/media/inspect", h.InspectSource)

			body, contentType := multipartBody(t, tt.file, nil)
			req := httptest.NewRequest(http.MethodPost, "/media/inspect", body)
			req.Header.Set(echo.HeaderContentType, contentType)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				if tt.wantField != "" {
					require.NotEmpty(t, env.Error.Details)
					assert.Equal(t, tt.wantField, env.Error.Details[0].Field)
					assert.Equal(t, "required", env.Error.Details[0].Rule)
				}

				return
			}

			var got PreviewResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, "png", got.Format)
			assert.Equal(t, 1200, got.Width)
			assert.Equal(t, fullCrop, got.Crop)
		})
	}
}

func TestMediaHandler_AdjustCrop(t *testing.T) {
	t.Parallel()

	bounded := entity.NewCropState(400, 300, entity.CropRegion{X: 100, Y: 0, Width: 300, Height: 300}, 2)

	tests := []struct {
		name       string
		body       string
		setup      func(mediaUC *mockUsecase.MockMediaUsecase)
		wantStatus int
	}{
		{
			name: "bounds the region to the source",
			body: `{"source_width":400,"source_height":300,"region":{"x":350,"y":0,"width":300,"height":300},"zoom":2}`,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().
					AdjustCrop(
						mock.MatchedBy(func(p *entity.PreviewHandle) bool { return p.Width == 400 && p.Height == 300 }),
						entity.CropRegion{X: 350, Y: 0, Width: 300, Height: 300},
						2.0,
					).
					Return(bounded)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing source size",
			body:       `{"region":{"x":0,"y":0,"width":10,"height":10}}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"source_width":"wide"}`,
			wantStatus: http.StatusBadRequest,
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
			e.POST("/media/crop", h.AdjustCrop)

			req := httptest.NewRequest(http.MethodPost, "/media/crop", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got entity.CropState
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
			assert.Equal(t, bounded, got)
		})
	}
}

func TestMediaHandler_ReplaceSlotAsset(t *testing.T) {
	t.Parallel()

	source := []byte("banner source")
	preview := &entity.PreviewHandle{Format: "jpeg", ContentType: "image/jpeg", Width: 2000, Height: 1000}
	region := entity.CropRegion{X: 10, Y: 20, Width: 800, Height: 400}
	crop := entity.NewCropState(2000, 1000, region, 1.5)
	asset := &entity.ImageAsset{
		Category:    entity.CategoryBanner,
		Bucket:      "portadacategorias",
		ObjectName:  "banner-1773489600000-abcd1234.jpg",
		PublicURL:   "https://cdn.example.com/portadacategorias/banner-1773489600000-abcd1234.jpg",
		ContentType: "image/jpeg",
		Width:       800,
		Height:      400,
		SizeBytes:   51200,
	}
	slot := &entity.AssetSlot{
		Key:        "site-banner",
		Category:   entity.CategoryBanner,
		AssetURL:   asset.PublicURL,
		ObjectName: asset.ObjectName,
		UpdatedAt:  time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	fields := map[string]string{
		"category": "banner",
		"x":        "10",
		"y":        "20",
		"width":    "800",
		"height":   "400",
		"zoom":     "1.5",
	}

	tests := []struct {
		name       string
		slotKey    string
		file       []byte
		fields     map[string]string
		setup      func(mediaUC *mockUsecase.MockMediaUsecase)
		wantStatus int
		wantCode   string
		wantField  string
	}{
		{
			name:    "crops uploads and binds the asset",
			slotKey: "site-banner",
			file:    source,
			fields:  fields,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetSlot(mock.Anything, "site-banner").Return(slot, nil)
				mediaUC.EXPECT().SelectSource(source).Return(preview, nil)
				mediaUC.EXPECT().AdjustCrop(preview, region, 1.5).Return(crop)
				mediaUC.EXPECT().Finalize(mock.Anything, preview, crop, entity.CategoryBanner).Return(asset, nil)
				mediaUC.EXPECT().ReplaceSlotAsset(mock.Anything, "site-banner", asset).Return(slot, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing category",
			slotKey:    "site-banner",
			file:       source,
			fields:     map[string]string{"x": "0"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
			wantField:  "category",
		},
		{
			name:       "missing file",
			slotKey:    "site-banner",
			fields:     fields,
			wantStatus: http.StatusBadRequest,
			wantCode:   "MISSING_FILE",
		},
		{
			name:       "malformed slot key is rejected before upload",
			slotKey:    "Site-Banner",
			file:       source,
			fields:     fields,
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_SLOT_KEY",
		},
		{
			name:    "slot of another category is rejected before upload",
			slotKey: "site-banner",
			file:    source,
			fields:  map[string]string{"category": "category"},
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetSlot(mock.Anything, "site-banner").Return(slot, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:    "upload failure leaves the slot untouched",
			slotKey: "site-banner",
			file:    source,
			fields:  fields,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetSlot(mock.Anything, "site-banner").Return(slot, nil)
				mediaUC.EXPECT().SelectSource(source).Return(preview, nil)
				mediaUC.EXPECT().AdjustCrop(preview, region, 1.5).Return(crop)
				mediaUC.EXPECT().Finalize(mock.Anything, preview, crop, entity.CategoryBanner).
					Return(nil, domainerrors.ErrUploadFailed.WrapMessage("banner-1.jpg"))
			},
			wantStatus: http.StatusBadGateway,
			wantCode:   "UPLOAD_FAILED",
		},
		{
			name:    "persist failure",
			slotKey: "site-banner",
			file:    source,
			fields:  fields,
			setup: func(mediaUC *mockUsecase.MockMediaUsecase) {
				mediaUC.EXPECT().GetSlot(mock.Anything, "site-banner").Return(nil, domainerrors.ErrSlotNotFound)
				mediaUC.EXPECT().SelectSource(source).Return(preview, nil)
				mediaUC.EXPECT().AdjustCrop(preview, region, 1.5).Return(crop)
				mediaUC.EXPECT().Finalize(mock.Anything, preview, crop, entity.CategoryBanner).Return(asset, nil)
				mediaUC.EXPECT().ReplaceSlotAsset(mock.Anything, "site-banner", asset).
					Return(nil, domainerrors.ErrSlotPersistFailed)
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SLOT_PERSIST_FAILED",
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
			e.PUT("/slots/:key/asset", h.ReplaceSlotAsset)

			body, contentType := multipartBody(t, tt.file, tt.fields)
			req := httptest.NewRequest(http.MethodPut, "/slots/"+tt.slotKey+"/asset", body)
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

			var got ReplaceAssetResponse
			require.NoError(t, json.Unmarshal(env.Data, &got))
			assert.Equal(t, "site-banner", got.Slot.Key)
			require.NotNil(t, got.Slot.AssetURL)
			assert.Equal(t, asset.PublicURL, *got.Slot.AssetURL)
			assert.Equal(t, asset.PublicURL, got.Asset.URL)
			assert.Equal(t, 51200, got.Asset.SizeBytes)
			assert.Equal(t, "2026-03-14T12:00:00Z", got.Slot.UpdatedAt)
		})
	}
}

func TestMediaHandler_GetSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		slot       *entity.AssetSlot
		err        error
		wantStatus int
		wantURL    *string
	}{
		{
			name:       "bound slot",
			slot:       &entity.AssetSlot{Key: "category-7", Category: entity.CategoryCover, AssetURL: "https://cdn.example.com/categorias/x.jpg"},
			wantStatus: http.StatusOK,
			wantURL:    stringPtr("https://cdn.example.com/categorias/x.jpg"),
		},
		{
			name:       "empty slot reports a null url",
			slot:       &entity.AssetSlot{Key: "category-7", Category: entity.CategoryCover},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown slot",
			err:        domainerrors.ErrSlotNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, mediaUC := newTestMediaHandler(t)
			mediaUC.EXPECT().GetSlot(mock.Anything, "category-7").Return(tt.slot, tt.err)

			e := newTestEcho()
			e.GET("/slots/:key", h.GetSlot)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slots/category-7", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.err != nil {
				return
			}

			var got SlotResponse
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &got))
			assert.Equal(t, tt.wantURL, got.AssetURL)
		})
	}
}

func TestMediaHandler_DeleteSlot(t *testing.T) {
	t.Parallel()

	h, mediaUC := newTestMediaHandler(t)
	mediaUC.EXPECT().DeleteSlot(mock.Anything, "site-banner").Return(nil)

	e := newTestEcho()
	e.DELETE("/slots/:key", h.DeleteSlot)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/slots/site-banner", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
