// Package entity contains the core business objects of the storefront,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"image"
	"math"
	"regexp"
	"time"
)

// Zoom bounds of the interactive crop viewport.
const (
	MinZoom = 1.0
	MaxZoom = 3.0
)

// AssetCategory groups slots that share one object store bucket.
type AssetCategory string

const (
	// CategoryBanner is the site banner slot category.
	CategoryBanner AssetCategory = "banner"
	// CategoryCover is the product category cover slot category.
	CategoryCover AssetCategory = "category"
	// CategoryProduct holds the ordered images of a product gallery.
	CategoryProduct AssetCategory = "product"
	// CategoryReview holds the images attached to a customer review.
	CategoryReview AssetCategory = "review"
)

// NamePrefix returns the object name prefix used for assets of the category.
func (c AssetCategory) NamePrefix() string {
	switch c {
	case CategoryBanner:
		return "banner"
	case CategoryCover:
		return "categoria"
	case CategoryProduct:
		return "producto"
	default:
		return string(c)
	}
}

var slotKeyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9:_-]{0,127}$`)

// IsValidSlotKey reports whether key can name a slot, e.g. "site-banner" or "category:12".
func IsValidSlotKey(key string) bool {
	return slotKeyPattern.MatchString(key)
}

// AssetSlot is a named single-image binding. AssetURL is empty while no asset is bound.
type AssetSlot struct {
	Key        string        // Slot name, unique across categories.
	Category   AssetCategory // Category deciding the bucket.
	AssetURL   string        // Currently active public URL.
	ObjectName string        // Object name of the active asset inside the bucket.
	UpdatedAt  time.Time
}

// HasAsset reports whether the slot currently references an asset.
func (s *AssetSlot) HasAsset() bool {
	return s != nil && s.AssetURL != ""
}

// ImageAsset is a finalized, compressed and uploaded image. It is never mutated after upload.
type ImageAsset struct {
	Category    AssetCategory
	Bucket      string
	ObjectName  string
	PublicURL   string
	ContentType string
	Width       int
	Height      int
	SizeBytes   int
	Quality     int
	Checksum    string // Hex SHA256 of the uploaded bytes.
	CreatedAt   time.Time
}

// PreviewHandle is a decoded source image ready for interactive cropping.
type PreviewHandle struct {
	Image       image.Image
	Format      string // Decoder name, e.g. "jpeg", "png", "webp".
	ContentType string // Sniffed content type of the raw bytes.
	Width       int
	Height      int
	SizeBytes   int
}

// CropRegion is a rectangle in source pixel coordinates.
type CropRegion struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the region to an image rectangle.
func (r CropRegion) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// AspectRatio returns width/height, or 0 for an empty region.
func (r CropRegion) AspectRatio() float64 {
	if r.Height == 0 {
		return 0
	}

	return float64(r.Width) / float64(r.Height)
}

// CropState is a crop region and zoom that are guaranteed to be within bounds.
type CropState struct {
	Region       CropRegion `json:"region"`
	Zoom         float64    `json:"zoom"`
	SourceWidth  int        `json:"source_width"`
	SourceHeight int        `json:"source_height"`
	Adjusted     bool       `json:"adjusted"` // True when the requested region or zoom had to be clamped.
}

// NewCropState bounds a requested region and zoom to a source of the given size.
// It never fails: zoom is clamped into [MinZoom, MaxZoom], an oversized region is scaled
// down keeping its aspect ratio, an empty region becomes the centered full source,
// and the origin is shifted so the region fits.
func NewCropState(sourceWidth, sourceHeight int, region CropRegion, zoom float64) CropState {
	sourceWidth = max(sourceWidth, 1)
	sourceHeight = max(sourceHeight, 1)

	clampedZoom := ClampZoom(zoom)
	adjusted := clampedZoom != zoom

	width, height := region.Width, region.Height
	if width <= 0 || height <= 0 {
		width, height = sourceWidth, sourceHeight
		region.X, region.Y = 0, 0
		adjusted = true
	}

	if width > sourceWidth || height > sourceHeight {
		scale := math.Min(float64(sourceWidth)/float64(width), float64(sourceHeight)/float64(height))
		width = min(max(int(math.Round(float64(width)*scale)), 1), sourceWidth)
		height = min(max(int(math.Round(float64(height)*scale)), 1), sourceHeight)
		adjusted = true
	}

	x := clampInt(region.X, 0, sourceWidth-width)
	y := clampInt(region.Y, 0, sourceHeight-height)
	if x != region.X || y != region.Y {
		adjusted = true
	}

	return CropState{
		Region:       CropRegion{X: x, Y: y, Width: width, Height: height},
		Zoom:         clampedZoom,
		SourceWidth:  sourceWidth,
		SourceHeight: sourceHeight,
		Adjusted:     adjusted,
	}
}

// ClampZoom bounds zoom into [MinZoom, MaxZoom]. NaN becomes MinZoom.
func ClampZoom(zoom float64) float64 {
	if math.IsNaN(zoom) || zoom < MinZoom {
		return MinZoom
	}
	if zoom > MaxZoom {
		return MaxZoom
	}

	return zoom
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
