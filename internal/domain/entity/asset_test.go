package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCropState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		width        int
		height       int
		region       CropRegion
		zoom         float64
		wantRegion   CropRegion
		wantZoom     float64
		wantAdjusted bool
	}{
		{
			name:       "region inside source",
			width:      2000,
			height:     2000,
			region:     CropRegion{X: 750, Y: 750, Width: 500, Height: 500},
			zoom:       2,
			wantRegion: CropRegion{X: 750, Y: 750, Width: 500, Height: 500},
			wantZoom:   2,
		},
		{
			name:         "negative origin",
			width:        400,
			height:       300,
			region:       CropRegion{X: -20, Y: -5, Width: 100, Height: 100},
			zoom:         1,
			wantRegion:   CropRegion{X: 0, Y: 0, Width: 100, Height: 100},
			wantZoom:     1,
			wantAdjusted: true,
		},
		{
			name:         "oversized region keeps aspect ratio",
			width:        400,
			height:       300,
			region:       CropRegion{X: 0, Y: 0, Width: 800, Height: 400},
			zoom:         1,
			wantRegion:   CropRegion{X: 0, Y: 0, Width: 400, Height: 200},
			wantZoom:     1,
			wantAdjusted: true,
		},
		{
			name:         "empty region selects the whole source",
			width:        640,
			height:       480,
			region:       CropRegion{X: 30, Y: 30},
			zoom:         1.5,
			wantRegion:   CropRegion{X: 0, Y: 0, Width: 640, Height: 480},
			wantZoom:     1.5,
			wantAdjusted: true,
		},
		{
			name:         "zoom above maximum",
			width:        100,
			height:       100,
			region:       CropRegion{Width: 10, Height: 10},
			zoom:         7,
			wantRegion:   CropRegion{Width: 10, Height: 10},
			wantZoom:     MaxZoom,
			wantAdjusted: true,
		},
		{
			name:         "NaN zoom",
			width:        100,
			height:       100,
			region:       CropRegion{Width: 10, Height: 10},
			zoom:         math.NaN(),
			wantRegion:   CropRegion{Width: 10, Height: 10},
			wantZoom:     MinZoom,
			wantAdjusted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := NewCropState(tt.width, tt.height, tt.region, tt.zoom)

			assert.Equal(t, tt.wantRegion, state.Region)
			assert.InDelta(t, tt.wantZoom, state.Zoom, 1e-9)
			assert.Equal(t, tt.wantAdjusted, state.Adjusted)
			source := CropRegion{Width: tt.width, Height: tt.height}
			assert.True(t, state.Region.Rect().In(source.Rect()))
		})
	}
}

func TestIsValidSlotKey(t *testing.T) {
	t.Parallel()

	valid := []string{"site-banner", "category:12", "home_hero", "a"}
	invalid := []string{"", "Site-Banner", "-banner", "has space", "category/12"}

	for _, key := range valid {
		assert.True(t, IsValidSlotKey(key), key)
	}
	for _, key := range invalid {
		assert.False(t, IsValidSlotKey(key), key)
	}
}

func TestAssetCategory_NamePrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "banner", CategoryBanner.NamePrefix())
	assert.Equal(t, "categoria", CategoryCover.NamePrefix())
	assert.Equal(t, "producto", CategoryProduct.NamePrefix())
	assert.Equal(t, "review", CategoryReview.NamePrefix())
	assert.Equal(t, "avatar", AssetCategory("avatar").NamePrefix())
}

func TestAssetSlot_HasAsset(t *testing.T) {
	t.Parallel()

	var nilSlot *AssetSlot
	assert.False(t, nilSlot.HasAsset())
	assert.False(t, (&AssetSlot{Key: "site-banner"}).HasAsset())
	assert.True(t, (&AssetSlot{Key: "site-banner", AssetURL: "https://cdn/x.jpg"}).HasAsset())
}
