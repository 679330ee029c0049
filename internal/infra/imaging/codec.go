// Package imaging implements the image codec with disintegration/imaging.
package imaging

import (
	"bytes"
	"image"
	"image/color"
	"net/http"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// webp sources are accepted alongside the formats imaging registers
	_ "golang.org/x/image/webp"
)

const (
	outputContentType = "image/jpeg"
	outputExtension   = ".jpg"

	// shrinkFactor is applied to the longest side when the lowest quality is still too large
	shrinkFactor = 0.75
	minDimension = 64
)

type codec struct {
	maxDimension    int
	maxBytes        int
	initialQuality  int
	minQuality      int
	qualityStep     int
	maxSourcePixels int64
}

// NewCodec creates the JPEG codec from the media configuration.
func NewCodec(cfg *config.Config) service.ImageCodec {
	media := config.WithMediaDefaults(cfg.Media)

	return newCodec(media)
}

func newCodec(media *config.MediaConfig) *codec {
	return &codec{
		maxDimension:    media.MaxDimension,
		maxBytes:        media.MaxBytes,
		initialQuality:  media.InitialQuality,
		minQuality:      media.MinQuality,
		qualityStep:     media.QualityStep,
		maxSourcePixels: media.MaxSourcePixels,
	}
}

// Decode parses raw bytes into a preview, honoring EXIF orientation.
func (c *codec) Decode(data []byte) (*entity.PreviewHandle, error) {
	if len(data) == 0 {
		return nil, domainerrors.ErrUnsupportedFormat.WrapMessage("empty file")
	}

	contentType := http.DetectContentType(data)

	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, domainerrors.ErrUnsupportedFormat.WrapMessage("decode config: " + contentType)
	}

	if int64(imgCfg.Width)*int64(imgCfg.Height) > c.maxSourcePixels {
		return nil, domainerrors.ErrSourceTooLarge.WrapMessage(format)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, domainerrors.ErrUnsupportedFormat.WrapMessage("decode " + format)
	}

	bounds := img.Bounds()

	return &entity.PreviewHandle{
		Image:       img,
		Format:      format,
		ContentType: contentType,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		SizeBytes:   len(data),
	}, nil
}

// Encode copies region out of src, downsizes it to the max dimension, and lowers JPEG quality
// (then dimensions) until the output fits under the byte ceiling.
func (c *codec) Encode(src image.Image, region entity.CropRegion) (*service.EncodedImage, error) {
	if src == nil {
		return nil, domainerrors.ErrCompressionFailed.WrapMessage("no source image")
	}

	bounds := src.Bounds()
	rect := region.Rect().Add(bounds.Min)
	if rect.Empty() || !rect.In(bounds) {
		return nil, domainerrors.ErrCompressionFailed.WrapMessage("crop region outside source")
	}

	var img image.Image = imaging.Crop(src, rect)
	img = flatten(img)

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	if max(width, height) > c.maxDimension {
		img = imaging.Fit(img, c.maxDimension, c.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	for {
		for quality := c.initialQuality; quality >= c.minQuality; quality -= c.qualityStep {
			buf.Reset()
			if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
				return nil, errors.Wrap(domainerrors.ErrCompressionFailed, err.Error())
			}

			if buf.Len() <= c.maxBytes {
				out := img.Bounds()

				return &service.EncodedImage{
					Data:        bytes.Clone(buf.Bytes()),
					ContentType: outputContentType,
					Extension:   outputExtension,
					Width:       out.Dx(),
					Height:      out.Dy(),
					Quality:     quality,
				}, nil
			}
		}

		out := img.Bounds()
		if max(out.Dx(), out.Dy()) <= minDimension {
			return nil, domainerrors.ErrCompressionFailed.WrapMessage("cannot reach size ceiling")
		}

		if out.Dx() >= out.Dy() {
			img = imaging.Resize(img, max(int(float64(out.Dx())*shrinkFactor), 1), 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, max(int(float64(out.Dy())*shrinkFactor), 1), imaging.Lanczos)
		}
	}
}

// flatten composites translucent pixels over white since JPEG has no alpha channel.
func flatten(img image.Image) image.Image {
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return img
	}

	bounds := img.Bounds()
	background := imaging.New(bounds.Dx(), bounds.Dy(), color.White)

	return imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
}
