package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient is the subset of *http.Client used for deliveries.
// Tests substitute their own implementation.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Transport delivers one JSON payload and returns the decoded response body
type Transport interface {
	PostJSON(ctx context.Context, endpoint string, payload any) (any, error)
}

// TransportError is returned for non-2xx responses. Body is the parsed JSON
// value when the response was JSON, the raw text otherwise.
type TransportError struct {
	StatusCode int
	Body       any
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed (%d)", e.StatusCode)
}

// HTTPTransport posts payloads with an HTTPClient
type HTTPTransport struct {
	client HTTPClient
}

// NewHTTPTransport creates a transport. A zero timeout leaves the client without one.
func NewHTTPTransport(timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{client: &http.Client{Timeout: timeout}}
}

// NewHTTPTransportWithClient creates a transport around an existing client
func NewHTTPTransportWithClient(client HTTPClient) *HTTPTransport {
	return &HTTPTransport{client: client}
}

// PostJSON implements Transport
func (t *HTTPTransport) PostJSON(ctx context.Context, endpoint string, payload any) (any, error) {
	return PostJSON(ctx, t.client, endpoint, payload)
}

// PostJSON sends payload as JSON in a single POST. The whole response body is
// read, parsed as JSON when possible and returned as text otherwise. There is
// no retry.
func PostJSON(ctx context.Context, client HTTPClient, endpoint string, payload any) (any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to deliver: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	data := decodeBody(raw)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return data, &TransportError{StatusCode: resp.StatusCode, Body: data}
	}
	return data, nil
}

func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}
