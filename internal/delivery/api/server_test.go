package api

import (
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
)

func TestLocalAssetRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		store      *config.ObjectStoreConfig
		wantPrefix string
		wantDir    string
		wantOK     bool
	}{
		{
			name: "file bucket behind the api",
			store: &config.ObjectStoreConfig{
				Provider:      config.ObjectStoreProviderBlob,
				BlobURL:       "file:///tmp/storefront-assets?create_dir=true",
				PublicBaseURL: "http://localhost:8080/assets/",
			},
			wantPrefix: "/assets",
			wantDir:    "/tmp/storefront-assets",
			wantOK:     true,
		},
		{
			name: "memory bucket",
			store: &config.ObjectStoreConfig{
				Provider:      config.ObjectStoreProviderBlob,
				BlobURL:       "mem://",
				PublicBaseURL: "http://localhost:8080/assets",
			},
		},
		{
			name: "hosted storage",
			store: &config.ObjectStoreConfig{
				Provider:      config.ObjectStoreProviderS3,
				PublicBaseURL: "https://project.example.co/storage/v1/object/public",
			},
		},
		{
			name: "prefix would shadow the api",
			store: &config.ObjectStoreConfig{
				Provider:      config.ObjectStoreProviderBlob,
				BlobURL:       "file:///tmp/storefront-assets",
				PublicBaseURL: "http://localhost:8080/api/v1",
			},
		},
		{name: "no object store"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prefix, dir, ok := localAssetRoot(&config.Config{ObjectStore: tt.store})

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPrefix, prefix)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}
