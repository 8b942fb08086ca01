// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Sends a browser-like User-Agent so the dictionary site serves real pages

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"dle-app-api/core/interfaces"
)

const maxRetries = 3

// DefaultUserAgent is sent when no agent is configured. The dictionary site
// returns a challenge page to clients that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0"

// StandardHTTPClient implements the HTTPClient interface using net/http
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
// and User-Agent. An empty userAgent falls back to DefaultUserAgent.
func NewStandardHTTPClient(timeout time.Duration, userAgent string) *StandardHTTPClient {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get performs an HTTP GET request, retrying transport failures and 5xx
// responses with exponential backoff
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
				// Continue with retry
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		// Success and 4xx responses are final; the last attempt's response
		// is returned whatever its status.
		if resp.StatusCode < 500 || attempt == maxRetries-1 {
			break
		}

		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp.Body.Close()
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
