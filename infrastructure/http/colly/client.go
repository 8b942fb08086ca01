// ABOUTME: Colly-backed HTTP client implementation
// ABOUTME: Alternative fetcher selected by config, useful when scraping many pages

package colly

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"dle-app-api/core/interfaces"
	gocolly "github.com/gocolly/colly"
)

const (
	maxBodySize      = 5 * 1024 * 1024
	defaultUserAgent = "Mozilla/5.0"
)

// CollyHTTPClient implements the HTTPClient interface on top of colly
type CollyHTTPClient struct {
	timeout   time.Duration
	userAgent string
}

// NewCollyHTTPClient creates a new colly-backed client with the specified
// timeout and User-Agent. An empty userAgent falls back to a browser-like one.
func NewCollyHTTPClient(timeout time.Duration, userAgent string) *CollyHTTPClient {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &CollyHTTPClient{
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// Get fetches a URL through a fresh collector. Non-2xx responses are
// returned as responses, not errors, so callers can map status codes the
// same way as with the net/http client.
func (c *CollyHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	collector := gocolly.NewCollector(
		gocolly.UserAgent(c.userAgent),
		gocolly.MaxBodySize(maxBodySize),
		gocolly.Async(false),
		gocolly.AllowURLRevisit(),
		gocolly.IgnoreRobotsTxt(),
	)
	collector.SetRequestTimeout(c.timeout)

	var (
		statusCode int
		body       []byte
		headers    http.Header
		fetchErr   error
	)

	capture := func(r *gocolly.Response) {
		statusCode = r.StatusCode
		body = r.Body
		if r.Headers != nil {
			headers = *r.Headers
		}
	}

	collector.OnResponse(capture)

	collector.OnError(func(r *gocolly.Response, err error) {
		// colly reports non-2xx statuses as errors; keep them as responses.
		if r != nil && r.StatusCode != 0 {
			capture(r)
			return
		}
		fetchErr = err
	})

	if err := collector.Visit(url); err != nil && statusCode == 0 {
		return nil, err
	}

	if fetchErr != nil && statusCode == 0 {
		return nil, fetchErr
	}

	return &collyResponse{
		statusCode: statusCode,
		body:       body,
		headers:    headers,
	}, nil
}

// collyResponse implements the Response interface over a buffered body
type collyResponse struct {
	statusCode int
	body       []byte
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *collyResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the buffered response body
func (r *collyResponse) Body() io.ReadCloser {
	return io.NopCloser(bytes.NewReader(r.body))
}

// Header returns the value of the specified header
func (r *collyResponse) Header(key string) string {
	if r.headers == nil {
		return ""
	}
	return r.headers.Get(key)
}
