package config

import (
	"reflect"
	"testing"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"dataStore": map[string]any{
			"url": "",
			"key": "",
		},
		"objectStore": map[string]any{
			"bucketNames":       map[string]any{"banner": "portadacategorias"},
			"orphanGracePeriod": "10m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "DATA_STORE_URL", want: "dataStore.url"},
		{envKey: "DATA_STORE_KEY", want: "dataStore.key"},
		{envKey: "OBJECT_STORE_BUCKET_NAMES", want: "objectStore.bucketNames"},
		{envKey: "OBJECT_STORE_ORPHAN_GRACE_PERIOD", want: "objectStore.orphanGracePeriod"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			t.Parallel()

			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestParseKeyValueList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    map[string]string
		wantErr bool
	}{
		{
			name: "two categories",
			raw:  "banner=portadacategorias, category=categorias",
			want: map[string]string{"banner": "portadacategorias", "category": "categorias"},
		},
		{
			name: "trailing comma",
			raw:  "banner=covers,",
			want: map[string]string{"banner": "covers"},
		},
		{
			name:    "missing value",
			raw:     "banner=",
			wantErr: true,
		},
		{
			name:    "missing separator",
			raw:     "banner",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseKeyValueList(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKeyValueList(%q) expected error", tt.raw)
				}

				return
			}
			if err != nil {
				t.Fatalf("ParseKeyValueList(%q) unexpected error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseKeyValueList(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_DerivesPublicBaseURL(t *testing.T) {
	t.Parallel()

	cfg := &Config{DataStore: &DataStoreConfig{URL: "https://project.example.co/"}}
	applyDefaults(cfg)

	if got, want := cfg.ObjectStore.PublicBaseURL, "https://project.example.co/storage/v1/object/public"; got != want {
		t.Fatalf("PublicBaseURL = %q, want %q", got, want)
	}
	if cfg.DataStore.Provider != DataStoreProviderPostgres {
		t.Fatalf("Provider = %q, want %q", cfg.DataStore.Provider, DataStoreProviderPostgres)
	}
	if cfg.Media.MaxBytes != 200*1024 || cfg.Media.MaxDimension != 1000 {
		t.Fatalf("unexpected media defaults: %+v", cfg.Media)
	}
	if cfg.Retry.Attempts != 3 {
		t.Fatalf("Retry.Attempts = %d, want 3", cfg.Retry.Attempts)
	}
}

func TestApplyDefaults_PublicBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *Config
		want string
	}{
		{
			name: "explicit value wins",
			cfg: &Config{
				DataStore:   &DataStoreConfig{URL: "https://project.example.co"},
				ObjectStore: &ObjectStoreConfig{PublicBaseURL: "https://cdn.example.com"},
			},
			want: "https://cdn.example.com",
		},
		{
			name: "data store url wins over a local bucket",
			cfg: &Config{
				DataStore:   &DataStoreConfig{URL: "https://project.example.co"},
				ObjectStore: &ObjectStoreConfig{Provider: ObjectStoreProviderBlob, BlobURL: "file:///tmp/assets"},
			},
			want: "https://project.example.co/storage/v1/object/public",
		},
		{
			name: "local bucket served by the api",
			cfg: func() *Config {
				cfg := &Config{ObjectStore: &ObjectStoreConfig{Provider: ObjectStoreProviderBlob, BlobURL: "file:///tmp/assets"}}
				cfg.HTTP.Port = 9090

				return cfg
			}(),
			want: "http://localhost:9090/assets",
		},
		{
			name: "remote bucket without a data store url",
			cfg:  &Config{ObjectStore: &ObjectStoreConfig{Provider: ObjectStoreProviderBlob, BlobURL: "gs://assets"}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			applyDefaults(tt.cfg)
			if got := tt.cfg.ObjectStore.PublicBaseURL; got != tt.want {
				t.Fatalf("PublicBaseURL = %q, want %q", got, tt.want)
			}
		})
	}
}
