package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HeaderOption is an extra request header, used for provider specific
// authentication such as x-goog-api-key.
type HeaderOption struct {
	Key   string
	Value string
}

// StatusError reports a non-2xx reply. Body is truncated for logging.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("non-2xx status %d: %s", e.StatusCode, e.Body)
}

// DoPostSync posts body as JSON to url and decodes a 2xx reply into
// OutputStruct. When apiKey is non-empty it is sent as a Bearer token;
// headers are applied afterwards and may override it.
//
// Context errors are returned wrapped so callers can test them with
// errors.Is. Failing to close the response body is logged, never returned.
func DoPostSync[OutputStruct any](ctx context.Context, client *http.Client, url string, apiKey string, body any, headers ...HeaderOption) (*http.Response, *OutputStruct, error) {
	httpClient := client
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, nil, fmt.Errorf("error marshaling body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	for _, h := range headers {
		req.Header.Set(h.Key, h.Value)
	}

	start := time.Now()
	res, err := httpClient.Do(req)
	if err != nil {
		slog.DebugContext(ctx, "http request failed", "duration", time.Since(start), "error", err)
		return nil, nil, fmt.Errorf("error sending request: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if closeErr := Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr.Error(), "url", url)
		}
	}(res.Body)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return res, nil, fmt.Errorf("error reading response body: %w", err)
	}
	slog.DebugContext(ctx, "http response received",
		"status", res.StatusCode,
		"bytes", len(respBody),
		"duration", time.Since(start),
	)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res, nil, &StatusError{StatusCode: res.StatusCode, Body: TruncateString(string(respBody), DefaultMaxStringLength)}
	}

	var out OutputStruct
	if err = json.Unmarshal(respBody, &out); err != nil {
		return res, nil, fmt.Errorf("error unmarshaling response body (status %d): %w\nResponse preview: %s", res.StatusCode, err, TruncateString(string(respBody), DefaultMaxStringLength))
	}
	return res, &out, nil
}
