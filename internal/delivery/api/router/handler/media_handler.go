package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler holds dependencies for image slot handlers
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// CropRequest represents the request body for bounding a crop against a source
type CropRequest struct {
	SourceWidth  int               `json:"source_width" validate:"required,min=1"`
	SourceHeight int               `json:"source_height" validate:"required,min=1"`
	Region       entity.CropRegion `json:"region"`
	Zoom         float64           `json:"zoom"`
}

// ReplaceAssetRequest represents the form fields sent with a new slot image
type ReplaceAssetRequest struct {
	Key      string  `param:"key"`
	Category string  `form:"category" validate:"required"`
	X        int     `form:"x" validate:"min=0"`
	Y        int     `form:"y" validate:"min=0"`
	Width    int     `form:"width" validate:"min=0"`
	Height   int     `form:"height" validate:"min=0"`
	Zoom     float64 `form:"zoom"`
}

// PreviewResponse describes a decoded source and its default crop
type PreviewResponse struct {
	Format      string           `json:"format"`
	ContentType string           `json:"content_type"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	SizeBytes   int              `json:"size_bytes"`
	Crop        entity.CropState `json:"crop"`
}

// SlotResponse is the public view of a slot
type SlotResponse struct {
	Key       string               `json:"key"`
	Category  entity.AssetCategory `json:"category"`
	AssetURL  *string              `json:"asset_url"`
	UpdatedAt string               `json:"updated_at,omitempty"`
}

// ReplaceAssetResponse reports the new binding and the uploaded asset
type ReplaceAssetResponse struct {
	Slot  SlotResponse  `json:"slot"`
	Asset AssetResponse `json:"asset"`
}

// AssetResponse describes an uploaded asset
type AssetResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	SizeBytes   int    `json:"size_bytes"`
	Checksum    string `json:"checksum,omitempty"`
}

// InspectSource decodes an uploaded file and returns its metadata and the full-source crop
func (h *MediaHandler) InspectSource(c echo.Context) error {
	data, err := readFormFile(c, "file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A file field is required")
	}

	preview, err := h.mediaUC.SelectSource(data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PreviewResponse{
		Format:      preview.Format,
		ContentType: preview.ContentType,
		Width:       preview.Width,
		Height:      preview.Height,
		SizeBytes:   preview.SizeBytes,
		Crop:        h.mediaUC.AdjustCrop(preview, entity.CropRegion{}, entity.MinZoom),
	})
}

// AdjustCrop bounds a requested crop to the source dimensions
func (h *MediaHandler) AdjustCrop(c echo.Context) error {
	var req CropRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid crop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	preview := &entity.PreviewHandle{Width: req.SourceWidth, Height: req.SourceHeight}

	return response.Success(c, http.StatusOK, h.mediaUC.AdjustCrop(preview, req.Region, req.Zoom))
}

// ReplaceSlotAsset crops, compresses and uploads a file, then binds it to the slot
func (h *MediaHandler) ReplaceSlotAsset(c echo.Context) error {
	var req ReplaceAssetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid slot asset input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	category := entity.AssetCategory(req.Category)

	data, err := readFormFile(c, "file")
	if err != nil {
		return response.BadRequest(c, "MISSING_FILE", "A file field is required")
	}

	// Reject what can be rejected before anything is uploaded.
	if err := h.checkSlotBinding(ctx, req.Key, category); err != nil {
		return response.HandleAppError(c, err)
	}

	preview, err := h.mediaUC.SelectSource(data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	region := entity.CropRegion{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
	crop := h.mediaUC.AdjustCrop(preview, region, req.Zoom)

	asset, err := h.mediaUC.Finalize(ctx, preview, crop, category)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	slot, err := h.mediaUC.ReplaceSlotAsset(ctx, req.Key, asset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Slot asset replaced",
		slog.String("slot", slot.Key),
		slog.String("asset_url", asset.PublicURL),
		slog.Int("size_bytes", asset.SizeBytes),
	)

	return response.Success(c, http.StatusOK, ReplaceAssetResponse{
		Slot: toSlotResponse(slot),
		Asset: AssetResponse{
			URL:         asset.PublicURL,
			ContentType: asset.ContentType,
			Width:       asset.Width,
			Height:      asset.Height,
			SizeBytes:   asset.SizeBytes,
			Checksum:    asset.Checksum,
		},
	})
}

// GetSlot returns the current asset of a slot
func (h *MediaHandler) GetSlot(c echo.Context) error {
	slot, err := h.mediaUC.GetSlot(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSlotResponse(slot))
}

// DeleteSlot removes a slot
func (h *MediaHandler) DeleteSlot(c echo.Context) error {
	if err := h.mediaUC.DeleteSlot(c.Request().Context(), c.Param("key")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// checkSlotBinding rejects a malformed key or a slot that holds another category
func (h *MediaHandler) checkSlotBinding(ctx context.Context, key string, category entity.AssetCategory) error {
	if !entity.IsValidSlotKey(key) {
		return domainerrors.ErrInvalidSlotKey
	}

	current, err := h.mediaUC.GetSlot(ctx, key)
	switch {
	case errors.Is(err, domainerrors.ErrSlotNotFound):
		return nil
	case err != nil:
		return err
	case current.Category != category:
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("slot %s holds %s assets", key, current.Category))
	}

	return nil
}

func toSlotResponse(slot *entity.AssetSlot) SlotResponse {
	resp := SlotResponse{
		Key:      slot.Key,
		Category: slot.Category,
	}
	if slot.HasAsset() {
		resp.AssetURL = &slot.AssetURL
	}
	if !slot.UpdatedAt.IsZero() {
		resp.UpdatedAt = slot.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return resp
}

func readFormFile(c echo.Context, field string) ([]byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
