package entity

import "time"

// Gallery size limits per category.
const (
	MaxProductImages = 12
	MaxReviewImages  = 6
)

// MaxGalleryImages returns how many images a gallery of the category may hold, or 0 when the
// category is bound through single-image slots only.
func (c AssetCategory) MaxGalleryImages() int {
	switch c {
	case CategoryProduct:
		return MaxProductImages
	case CategoryReview:
		return MaxReviewImages
	default:
		return 0
	}
}

// GalleryImage is one position of a gallery.
type GalleryImage struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	Alt        string `json:"alt"`
	Text       string `json:"text"`
}

// Gallery is a named, ordered multi-image binding such as "product:42" or "review:<user>:<review>".
type Gallery struct {
	Key       string
	Category  AssetCategory
	Images    []GalleryImage
	UpdatedAt time.Time
}

// ObjectNames returns the object names the gallery references, in order.
func (g *Gallery) ObjectNames() []string {
	if g == nil {
		return nil
	}

	names := make([]string, 0, len(g.Images))
	for _, img := range g.Images {
		if img.ObjectName != "" {
			names = append(names, img.ObjectName)
		}
	}

	return names
}

// ImageByURL returns the image currently shown at url.
func (g *Gallery) ImageByURL(url string) (GalleryImage, bool) {
	if g == nil {
		return GalleryImage{}, false
	}

	for _, img := range g.Images {
		if img.URL == url {
			return img, true
		}
	}

	return GalleryImage{}, false
}
