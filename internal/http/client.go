package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single request when the caller passes zero.
const DefaultTimeout = 10 * time.Second

// Client wraps a net/http client with a fixed timeout.
//
// Redirects follow the net/http defaults. No authentication and no custom
// headers are sent apart from the optional User-Agent.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a Client. A non-positive timeout falls back to
// DefaultTimeout; an empty userAgent keeps the Go default header.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// Response is a fully read HTTP response.
type Response struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ContentType returns the raw Content-Type header, or "" if absent.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// MediaType returns the lower-cased media type of the response with any
// parameters removed, e.g. "image/png" for "Image/PNG; charset=binary".
func (r *Response) MediaType() string {
	return ParseMediaType(r.ContentType())
}

// ParseMediaType strips parameters from a Content-Type value and lower-cases
// the result. Malformed values fall back to the text before the first ';'.
func ParseMediaType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt, _, _ = strings.Cut(contentType, ";")
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// RequestError reports a failed request to URL.
type RequestError struct {
	URL string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// IsConnectionError reports whether err came from the network layer or from
// a non-2xx status.
func IsConnectionError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// Get performs a GET request and reads the whole body.
//
// Returns a *RequestError if:
//   - The URL cannot be turned into a request
//   - The request fails (DNS, refused, timeout, ...)
//   - The response status is not 2xx
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{URL: url, Err: &StatusError{Code: resp.StatusCode, Status: resp.Status}}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: url, Err: fmt.Errorf("read body: %w", err)}
	}

	return &Response{
		URL:        url,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
