package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(&config.DataStoreConfig{
		URL:    server.URL + "/",
		Key:    "service-key",
		Schema: "public",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return client
}

func TestNewClient_RequiresURLAndKey(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewClient(&config.DataStoreConfig{Key: "k"}, logger)
	require.Error(t, err)

	_, err = NewClient(&config.DataStoreConfig{URL: "https://db.example.co"}, logger)
	require.Error(t, err)
}

func TestClient_SendsAuthAndProfileHeaders(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/asset_slots", r.URL.Path)
		assert.Equal(t, "eq.site-banner", r.URL.Query().Get("key"))
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		assert.Equal(t, "public", r.Header.Get("Accept-Profile"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"key":"site-banner"}]`))
	})

	var rows []map[string]any
	require.NoError(t, client.Select(context.Background(), "asset_slots", Eq(nil, "key", "site-banner"), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "site-banner", rows[0]["key"])
}

func TestClient_UpsertUsesMergeDuplicates(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "key", r.URL.Query().Get("on_conflict"))
		assert.Equal(t, preferMergeUpsert, r.Header.Get("Prefer"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "category", body["category"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[]`))
	})

	require.NoError(t, client.Upsert(context.Background(), "asset_slots", "key", map[string]string{"category": "category"}, nil))
}

func TestClient_DecodesAPIError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":"23505","message":"duplicate key value violates unique constraint"}`))
	})

	err := client.Insert(context.Background(), "loyalty_accounts", map[string]any{"points": 0}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "23505", apiErr.Code)
	assert.True(t, IsUniqueViolation(err))
}

func TestClient_NonJSONErrorBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	})

	err := client.Select(context.Background(), "asset_slots", nil, &[]map[string]any{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
	assert.False(t, IsUniqueViolation(err))
}
