package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

var (
	// ErrNotFound means the remote service answered and the entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrUnavailable means the remote service could not give an answer.
	ErrUnavailable = errors.New("service unavailable")
)

// BaseURL yields the current base URL of a remote service. It is called per
// request so discovery changes are picked up.
type BaseURL func() string

func StaticURL(url string) BaseURL {
	return func() string { return url }
}

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// getJSON decodes a 200 response into dest. A 404, an empty body or a JSON
// null yield ErrNotFound; everything else that prevents an answer yields
// ErrUnavailable.
func getJSON(ctx context.Context, httpClient *http.Client, url string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned status %d", ErrUnavailable, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrUnavailable, err)
	}
	if len(body) == 0 || string(body) == "null" {
		return ErrNotFound
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}
	return nil
}
