package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// maxUpstreamBody caps how much of an upstream response is read.
const maxUpstreamBody = 8 << 20

// StatusError is returned when the upstream answers with a non-2xx status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned status %d", e.URL, e.Code)
}

func (e *StatusError) StatusCode() int { return e.Code }

// TransportError is returned when the upstream could not be reached. Its
// text is shown to visitors, so it never carries the upstream address; the
// wrapped error does.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	var netErr net.Error
	switch {
	case errors.Is(e.Err, context.Canceled):
		return "upstream request canceled"
	case errors.Is(e.Err, context.DeadlineExceeded),
		errors.As(e.Err, &netErr) && netErr.Timeout():
		return "upstream request timed out"
	default:
		return "upstream unavailable"
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamClient talks to the external commerce API.
type UpstreamClient struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
	flight  singleflight.Group
}

func NewUpstreamClient(baseURL string, timeout time.Duration, log *zap.Logger) *UpstreamClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &UpstreamClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// ListingURL builds {base}/products?page=<page>[&q=<query>].
func (c *UpstreamClient) ListingURL(query, page string) string {
	if page == "" {
		page = "1"
	}
	params := url.Values{}
	params.Set("page", page)
	if query != "" {
		params.Set("q", query)
	}
	return c.baseURL + "/products?" + params.Encode()
}

// DetailURL builds {base}/products/details/<id>.
func (c *UpstreamClient) DetailURL(id string) string {
	return c.baseURL + "/products/details/" + url.PathEscape(id)
}

// FetchListingRaw returns the raw listing body. Identical concurrent calls
// share one upstream request.
func (c *UpstreamClient) FetchListingRaw(ctx context.Context, query, page string) ([]byte, error) {
	return c.fetchShared(ctx, c.ListingURL(query, page))
}

// FetchDetailRaw returns the raw detail body for id.
func (c *UpstreamClient) FetchDetailRaw(ctx context.Context, id string) ([]byte, error) {
	return c.fetchShared(ctx, c.DetailURL(id))
}

func (c *UpstreamClient) fetchShared(ctx context.Context, target string) ([]byte, error) {
	ch := c.flight.DoChan(target, func() (any, error) {
		// Detached from any one caller so a cancelled caller does not fail
		// the others waiting on the same request.
		return c.fetch(context.WithoutCancel(ctx), target)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	}
}

func (c *UpstreamClient) fetch(ctx context.Context, target string) ([]byte, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed", zap.String("url", target), zap.Error(err))
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxUpstreamBody))
		c.log.Warn("upstream returned error status",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode))
		return nil, &StatusError{Code: resp.StatusCode, URL: target}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	c.log.Debug("upstream request",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("latency", time.Since(start)))
	return body, nil
}
