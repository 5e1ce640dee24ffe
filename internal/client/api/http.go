package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hiddenhaul/haul/internal/logging"
)

const contentTypeJSON = "application/json"

// TokenSource supplies the current bearer token for outgoing requests.
// The session store is the canonical implementation; an empty string means
// the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger

	// onAuthFailure fires once per 401 response, before the error is
	// propagated: the session must be purged and the UI sent back to the
	// login surface no matter which command triggered the request.
	onAuthFailure func(ctx context.Context)
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// SetAuthFailureHook installs the global reaction to authentication expiry.
func (c *HTTPClient) SetAuthFailureHook(fn func(ctx context.Context)) {
	c.onAuthFailure = fn
}

// do runs the uniform request pipeline and returns the raw response body
// for a 2xx response.
//
// Content type: JSON by default when a body is present; a caller-declared
// multipart content type is never overwritten. The bearer token, when
// present, is attached regardless of content kind.
func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	} else if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.log.Warn(ctx, "authentication failure", "method", method, "path", path)
		if c.onAuthFailure != nil {
			c.onAuthFailure(ctx)
		}
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, &StatusError{Code: resp.StatusCode, Message: snippet(data)}
	}
}

// doJSON marshals in (when non-nil) as a JSON body and runs the pipeline.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request body: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, path, "", body)
}

// decodeData unwraps the backend's `{"data": ...}` success envelope once,
// here at the boundary.
func decodeData[T any](raw []byte) (T, error) {
	var env struct {
		Data T `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}
	return env.Data, nil
}

func snippet(b []byte) string {
	const max = 200
	s := string(bytes.TrimSpace(b))
	if len(s) > max {
		return s[:max]
	}
	return s
}
