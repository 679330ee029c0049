package service

import (
	"image"

	"storefront/internal/domain/entity"
)

// EncodedImage is the compressed output of a crop.
type EncodedImage struct {
	Data        []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
	Quality     int
}

// ImageCodec decodes user uploads and encodes cropped regions to the web output format.
type ImageCodec interface {
	// Decode parses raw bytes into a preview. Non-image input yields ErrUnsupportedFormat.
	Decode(data []byte) (*entity.PreviewHandle, error)

	// Encode copies region out of src and compresses it under the configured ceilings.
	Encode(src image.Image, region entity.CropRegion) (*EncodedImage, error)
}
