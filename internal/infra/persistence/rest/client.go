// Package rest implements the slot and loyalty repositories on a PostgREST-compatible data store.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
)

const (
	restPath = "/rest/v1/"

	preferRepresentation = "return=representation"
	preferMergeUpsert    = "resolution=merge-duplicates,return=representation"
	preferCountExact     = "count=exact"

	// defaultPageSize matches the default db-max-rows of hosted data stores
	defaultPageSize = 1000

	// maxErrorBody caps how much of a failed response is read
	maxErrorBody = 4 << 10
)

// APIError is a non-2xx response from the data store
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("data store returned %d (%s): %s", e.Status, e.Code, e.Message)
	}

	return fmt.Sprintf("data store returned %d: %s", e.Status, e.Message)
}

// IsUniqueViolation reports whether err is a unique constraint rejection
func IsUniqueViolation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	return apiErr.Code == "23505" || apiErr.Status == http.StatusConflict
}

// Client performs table requests against the data store REST endpoint
type Client struct {
	baseURL    string
	key        string
	schema     string
	pageSize   int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a client authenticated with the service key
func NewClient(cfg *config.DataStoreConfig, logger *slog.Logger) (*Client, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("dataStore.url is required for the rest data store")
	}
	if cfg.Key == "" {
		return nil, errors.New("dataStore.key is required for the rest data store")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/") + restPath,
		key:        cfg.Key,
		schema:     cfg.Schema,
		pageSize:   defaultPageSize,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("component", "rest_data_store")),
	}, nil
}

// Eq builds a filter matching column = value
func Eq(filters url.Values, column string, value any) url.Values {
	if filters == nil {
		filters = url.Values{}
	}
	filters.Set(column, "eq."+fmt.Sprint(value))

	return filters
}

// Select reads rows matching filters into out, which must point to a slice.
// The server may cap the number of rows; use SelectAll when every row matters.
func (c *Client) Select(ctx context.Context, table string, filters url.Values, out any) error {
	_, err := c.do(ctx, http.MethodGet, table, filters, nil, "", out)

	return err
}

// SelectAll reads every row matching filters, one page at a time ordered by order.
// It keeps paging until the exact count from Content-Range is reached, so a server-side
// row cap cannot silently truncate the result.
func SelectAll[T any](ctx context.Context, c *Client, table string, filters url.Values, order string) ([]T, error) {
	var rows []T
	for offset := 0; ; {
		query := maps.Clone(filters)
		if query == nil {
			query = url.Values{}
		}
		query.Set("order", order)
		query.Set("limit", strconv.Itoa(c.pageSize))
		query.Set("offset", strconv.Itoa(offset))

		var page []T
		header, err := c.do(ctx, http.MethodGet, table, query, nil, preferCountExact, &page)
		if err != nil {
			return nil, err
		}
		rows = append(rows, page...)
		offset += len(page)

		total, known := contentRangeTotal(header.Get("Content-Range"))
		switch {
		case known && offset >= total:
			return rows, nil
		case len(page) == 0 && known:
			return nil, errors.Errorf("%s: read %d of %d rows", table, offset, total)
		case len(page) == 0, !known && len(page) < c.pageSize:
			return rows, nil
		}
	}
}

// Insert creates a row and decodes the created representation into out
func (c *Client) Insert(ctx context.Context, table string, row, out any) error {
	_, err := c.do(ctx, http.MethodPost, table, nil, row, preferRepresentation, out)

	return err
}

// Upsert inserts a row or merges it into the existing row with the same onConflict columns
func (c *Client) Upsert(ctx context.Context, table, onConflict string, row, out any) error {
	query := url.Values{"on_conflict": []string{onConflict}}

	_, err := c.do(ctx, http.MethodPost, table, query, row, preferMergeUpsert, out)

	return err
}

// Update patches rows matching filters and decodes the updated rows into out
func (c *Client) Update(ctx context.Context, table string, filters url.Values, patch, out any) error {
	_, err := c.do(ctx, http.MethodPatch, table, filters, patch, preferRepresentation, out)

	return err
}

// Delete removes rows matching filters and decodes the deleted rows into out
func (c *Client) Delete(ctx context.Context, table string, filters url.Values, out any) error {
	_, err := c.do(ctx, http.MethodDelete, table, filters, nil, preferRepresentation, out)

	return err
}

func (c *Client) do(ctx context.Context, method, table string, query url.Values, body any, prefer string, out any) (http.Header, error) {
	endpoint := c.baseURL + table
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	if c.schema != "" {
		req.Header.Set("Accept-Profile", c.schema)
		req.Header.Set("Content-Profile", c.schema)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, table)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "Data store request",
		slog.String("method", method),
		slog.String("table", table),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}

		return nil, apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.Header, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", table)
	}

	return resp.Header, nil
}

// contentRangeTotal parses the total of a "0-999/1500" or "*/0" header. An unknown total is "*".
func contentRangeTotal(value string) (int, bool) {
	_, total, found := strings.Cut(value, "/")
	if !found || total == "*" {
		return 0, false
	}

	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, false
	}

	return n, true
}
