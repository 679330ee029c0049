package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"storefront/internal/infra/retry"

	"github.com/pkg/errors"
)

// postJSON sends body to endpoint with a bearer token. Client errors other than 408 and 429
// are marked permanent so the retry policy does not repeat them.
func postJSON(ctx context.Context, client *http.Client, endpoint, token string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return retry.Permanent(errors.WithStack(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return retry.Permanent(errors.WithStack(err))
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
	statusErr := errors.Errorf("%s returned %d: %s", endpoint, resp.StatusCode, bytes.TrimSpace(raw))

	if resp.StatusCode >= 400 && resp.StatusCode < 500 &&
		resp.StatusCode != http.StatusRequestTimeout && resp.StatusCode != http.StatusTooManyRequests {
		return retry.Permanent(statusErr)
	}

	return statusErr
}
