package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/handiism/groupie-tracker/internal/groupie/dto"
	"github.com/handiism/groupie-tracker/internal/logger"
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	// Status is the HTTP status code.
	Status int

	// URL is the requested URL.
	URL string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.URL)
}

// IsNotFound reports whether err wraps an HTTPError with status 404.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Status == http.StatusNotFound
}

// Options configures a Client.
type Options struct {
	// BaseURL is prepended to every request path ("http://localhost:8080").
	BaseURL string

	// UserAgent is sent with every request.
	UserAgent string

	// Timeout bounds each request. Zero means 10 seconds.
	Timeout time.Duration

	// StrictShapes makes FetchArray return decode errors instead of
	// absorbing unknown shapes into empty collections.
	StrictShapes bool

	// Logger receives request and shape diagnostics. Nil disables logging.
	Logger *logger.Logger

	// Transport overrides the underlying round tripper (tests).
	Transport http.RoundTripper
}

// Client wraps HTTP operations against the Groupie Tracker backend.
//
// Client provides:
//   - Base URL and query string assembly
//   - Configured User-Agent and a fresh X-Request-ID per request
//   - Status validation with a typed HTTPError
//   - Collection shape normalization (FetchArray)
//
// Example usage:
//
//	client := http.NewClient(http.Options{BaseURL: "http://localhost:8080"})
//
//	// Any accepted collection shape comes back as a slice of items
//	items, err := client.FetchArray(ctx, "/api/relation", nil)
//
//	// Single objects
//	var artist dto.JSONArtist
//	err = client.GetJSON(ctx, "/api/spotify/artist", url.Values{"id": {id}}, &artist)
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	strict     bool
	log        *logger.Logger
}

// NewClient creates a new HTTP client for the backend.
//
// The client is configured with:
//   - 10 second timeout unless Options.Timeout is set
//   - "GroupieTracker" User-Agent header unless Options.UserAgent is set
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "GroupieTracker"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: opts.Transport,
		},
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: userAgent,
		strict:    opts.StrictShapes,
		log:       opts.Logger,
	}
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL builds the absolute URL for path and query.
func (c *Client) URL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Get performs a GET request and returns the response body as bytes.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 2xx (*HTTPError)
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.URL(path, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	requestID := uuid.NewString()
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("request failed", logger.Fields{
			"path":       path,
			"request_id": requestID,
		}, err)
		return nil, err
	}
	defer resp.Body.Close()

	c.log.Debug("request done", logger.Fields{
		"path":        path,
		"status":      resp.StatusCode,
		"request_id":  requestID,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{Status: resp.StatusCode, URL: target}
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the body into v.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, v interface{}) error {
	body, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &dto.MalformedResponseError{Found: "invalid json", Err: err}
	}
	return nil
}

// FetchArray performs a GET request and normalizes a collection body.
//
// A bare array, an {"index": [...]} wrapper and a single relation object
// all come back as a slice of items. Any other body is logged and returned
// as an empty slice, or as a *dto.MalformedResponseError when the client
// is strict. Transport and status errors are always returned.
func (c *Client) FetchArray(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	body, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	shape, items, err := dto.ClassifyCollection(body)
	if err != nil {
		if absorbErr := c.absorb(path, err); absorbErr != nil {
			return nil, absorbErr
		}
		return []json.RawMessage{}, nil
	}

	c.log.Debug("collection decoded", logger.Fields{
		"path":  path,
		"shape": shape.String(),
		"count": len(items),
	})
	return items, nil
}

// absorb applies the shape policy to a decode error: nil when absorbed.
func (c *Client) absorb(path string, err error) error {
	if c.strict {
		return fmt.Errorf("%s: %w", path, err)
	}
	c.log.Warn("unexpected response shape, using empty collection", logger.Fields{
		"path":  path,
		"error": err.Error(),
	})
	return nil
}

// FetchList fetches a collection and decodes every item into T.
//
// An item that does not decode is handled like an unknown shape: the whole
// collection is absorbed to empty unless the client is strict.
func FetchList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	items, err := c.FetchArray(ctx, path, query)
	if err != nil {
		return nil, err
	}

	out, err := dto.DecodeItems[T](items)
	if err != nil {
		if absorbErr := c.absorb(path, err); absorbErr != nil {
			return nil, absorbErr
		}
		return []T{}, nil
	}
	return out, nil
}
