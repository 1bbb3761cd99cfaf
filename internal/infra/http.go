// Package infra provides shared infrastructure used across the application:
// the outbound HTTP client and request helpers.
package infra

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// userAgent identifies outbound requests. Yahoo Finance rejects requests
// without a browser-like User-Agent.
const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// defaultClient is shared by all providers. A single generous timeout
// bounds every outbound call; the caller's context can cut it shorter.
var defaultClient = &http.Client{Timeout: 60 * time.Second}

// Client returns the shared outbound HTTP client.
func Client() *http.Client {
	return defaultClient
}

// DoGet performs a GET request and returns the response body and status
// code. The caller must close the body on success.
func DoGet(ctx context.Context, url string, headers map[string]string) (io.ReadCloser, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := defaultClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, resp.StatusCode, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}
	return resp.Body, resp.StatusCode, nil
}
