package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// GalleryRequest carries the owner id from the path and the JSON image manifest from the form
type GalleryRequest struct {
	ID     string `param:"id" validate:"required,max=64,excludes=:"`
	Images string `form:"images"`
}

// GalleryManifest is the decoded images form field
type GalleryManifest struct {
	Images []GalleryImageInput `json:"images" validate:"dive"`
}

// GalleryImageInput is one position of the new gallery: either a kept url or a form file to crop and upload
type GalleryImageInput struct {
	URL    string            `json:"url" validate:"required_without=File,excluded_with=File"`
	File   string            `json:"file" validate:"omitempty,max=64"`
	Region entity.CropRegion `json:"region"`
	Zoom   float64           `json:"zoom"`
	Alt    string            `json:"alt" validate:"max=200"`
	Text   string            `json:"text" validate:"max=2000"`
}

// GalleryResponse is the public view of a gallery
type GalleryResponse struct {
	Key       string                 `json:"key"`
	Category  entity.AssetCategory   `json:"category"`
	Images    []GalleryImageResponse `json:"images"`
	UpdatedAt string                 `json:"updated_at,omitempty"`
}

// GalleryImageResponse is one image of a gallery
type GalleryImageResponse struct {
	URL  string `json:"url"`
	Alt  string `json:"alt,omitempty"`
	Text string `json:"text,omitempty"`
}

// ReplaceProductImages replaces the ordered images of a product
func (h *MediaHandler) ReplaceProductImages(c echo.Context) error {
	return h.replaceGallery(c, entity.CategoryProduct, productGalleryKey)
}

// ReplaceReviewImages replaces the images of one of the caller's reviews
func (h *MediaHandler) ReplaceReviewImages(c echo.Context) error {
	keyFor, ok := callerReviewKey(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	return h.replaceGallery(c, entity.CategoryReview, keyFor)
}

// DeleteProductImages removes a product gallery and its images
func (h *MediaHandler) DeleteProductImages(c echo.Context) error {
	return h.deleteGallery(c, productGalleryKey)
}

// DeleteReviewImages removes the images of one of the caller's reviews
func (h *MediaHandler) DeleteReviewImages(c echo.Context) error {
	keyFor, ok := callerReviewKey(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	return h.deleteGallery(c, keyFor)
}

// GetGallery returns a gallery by key
func (h *MediaHandler) GetGallery(c echo.Context) error {
	gallery, err := h.mediaUC.GetGallery(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGalleryResponse(gallery))
}

func (h *MediaHandler) replaceGallery(c echo.Context, category entity.AssetCategory, keyFor func(id string) string) error {
	var req GalleryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gallery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	var manifest GalleryManifest
	if err := json.Unmarshal([]byte(req.Images), &manifest.Images); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "The images field must be a JSON array")
	}

	if err := c.Validate(&manifest); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	key := keyFor(req.ID)

	// Reject what can be rejected before anything is uploaded.
	if err := h.checkGallery(ctx, key, category, manifest.Images); err != nil {
		return response.HandleAppError(c, err)
	}

	files := make(map[string][]byte)
	for _, input := range manifest.Images {
		if input.File == "" {
			continue
		}
		if _, ok := files[input.File]; ok {
			return response.BadRequest(c, "DUPLICATE_FILE", fmt.Sprintf("File %s is used twice", input.File))
		}
		data, err := readFormFile(c, input.File)
		if err != nil {
			return response.BadRequest(c, "MISSING_FILE", fmt.Sprintf("A file field %s is required", input.File))
		}
		files[input.File] = data
	}

	entries := make([]usecase.GalleryEntry, 0, len(manifest.Images))
	for _, input := range manifest.Images {
		entry := usecase.GalleryEntry{ExistingURL: input.URL, Alt: input.Alt, Text: input.Text}
		if input.File != "" {
			preview, err := h.mediaUC.SelectSource(files[input.File])
			if err != nil {
				return response.HandleAppError(c, err)
			}

			crop := h.mediaUC.AdjustCrop(preview, input.Region, input.Zoom)

			entry.Asset, err = h.mediaUC.Finalize(ctx, preview, crop, category)
			if err != nil {
				return response.HandleAppError(c, err)
			}
		}
		entries = append(entries, entry)
	}

	gallery, err := h.mediaUC.ReplaceGalleryImages(ctx, key, category, entries)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Gallery replaced",
		slog.String("gallery", gallery.Key),
		slog.Int("images", len(gallery.Images)),
		slog.Int("uploaded", len(files)),
	)

	return response.Success(c, http.StatusOK, toGalleryResponse(gallery))
}

func (h *MediaHandler) deleteGallery(c echo.Context, keyFor func(id string) string) error {
	var req GalleryRequest
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid gallery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	if err := h.mediaUC.DeleteGallery(c.Request().Context(), keyFor(req.ID)); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// checkGallery rejects a malformed key, an oversized list or a kept url the gallery does not hold
func (h *MediaHandler) checkGallery(ctx context.Context, key string, category entity.AssetCategory, inputs []GalleryImageInput) error {
	if !entity.IsValidSlotKey(key) {
		return domainerrors.ErrInvalidGalleryKey
	}

	if limit := category.MaxGalleryImages(); len(inputs) > limit {
		return domainerrors.ErrTooManyImages.WrapMessage(fmt.Sprintf("%d of at most %d", len(inputs), limit))
	}

	current, err := h.mediaUC.GetGallery(ctx, key)
	switch {
	case errors.Is(err, domainerrors.ErrGalleryNotFound):
		current = nil
	case err != nil:
		return err
	case current.Category != category:
		return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("gallery %s holds %s assets", key, current.Category))
	}

	for _, input := range inputs {
		if input.URL == "" {
			continue
		}
		if _, ok := current.ImageByURL(input.URL); !ok {
			return domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("%s is not in the gallery", input.URL))
		}
	}

	return nil
}

func productGalleryKey(id string) string {
	return "product:" + id
}

// callerReviewKey scopes review galleries to the authenticated author.
func callerReviewKey(c echo.Context) (func(id string) string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, false
	}

	return func(id string) string {
		return "review:" + userID.String() + ":" + id
	}, true
}

func toGalleryResponse(gallery *entity.Gallery) GalleryResponse {
	resp := GalleryResponse{
		Key:      gallery.Key,
		Category: gallery.Category,
		Images:   make([]GalleryImageResponse, 0, len(gallery.Images)),
	}
	for _, img := range gallery.Images {
		resp.Images = append(resp.Images, GalleryImageResponse{URL: img.URL, Alt: img.Alt, Text: img.Text})
	}
	if !gallery.UpdatedAt.IsZero() {
		resp.UpdatedAt = gallery.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return resp
}
