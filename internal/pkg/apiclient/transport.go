package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// Transport handles low-level HTTP against the HRMS API
type Transport struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewTransport creates a transport for baseURL. A zero timeout means none.
func NewTransport(baseURL string, timeout time.Duration) *Transport {
	return &Transport{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// helper: build full URL with query params
func (t *Transport) buildURL(path string, query url.Values) (string, error) {
	u, err := url.Parse(t.BaseURL + path)
	if err != nil {
		return "", fmt.Errorf("invalid API url %q: %w", t.BaseURL+path, err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String(), nil
}

// Get sends a GET request and decodes the JSON response into out.
func (t *Transport) Get(ctx context.Context, path string, query url.Values, out any) error {
	return t.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post sends a POST request with a JSON body and decodes the response into out.
func (t *Transport) Post(ctx context.Context, path string, data any, out any) error {
	return t.do(ctx, http.MethodPost, path, nil, data, out)
}

// Delete sends a DELETE request. Any response body is discarded.
func (t *Transport) Delete(ctx context.Context, path string) error {
	return t.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (t *Transport) do(ctx context.Context, method, path string, query url.Values, data any, out any) error {
	fullURL, err := t.buildURL(path, query)
	if err != nil {
		return err
	}

	var body io.Reader
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		slog.Warn("API request got no response", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrNetworkUnreachable, method, path, err)
	}
	defer resp.Body.Close()

	slog.Debug("API request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode >= 300 {
		return parseAPIError(resp, method, path, requestID)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}

	return nil
}
