package dblp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrUpstream indicates DBLP could not be reached, answered with a non-200 status,
	// or served a page that could not be parsed.
	ErrUpstream = errors.New("upstream request failed")

	// ErrMissingMarkup indicates a page without the elements the parser needs.
	ErrMissingMarkup = errors.New("expected markup not found")

	// ErrNotConfigured indicates that no listing URL is set.
	ErrNotConfigured = errors.New("scraper listing_url is not configured")
)

const maxPageBytes = 16 << 20

// Client fetches DBLP pages. Requests are sequential and paced by a limiter.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a client. A non-positive RequestsPerSecond disables pacing.
func NewClient(cfg Config) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{},
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Listing fetches and parses the configured author page.
func (c *Client) Listing(ctx context.Context) ([]Record, error) {
	if c.cfg.ListingURL == "" {
		return nil, ErrNotConfigured
	}
	body, err := c.get(ctx, c.cfg.ListingURL, seconds(c.cfg.TimeoutSeconds, 30))
	if err != nil {
		return nil, err
	}
	records, err := ParseListing(bytes.NewReader(body), c.cfg.HighlightAuthor)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing listing: %w", ErrUpstream, err)
	}
	return records, nil
}

// FetchDetail fetches the proceedings page behind href, which may be relative
// to the listing URL.
func (c *Client) FetchDetail(ctx context.Context, href string) (Detail, error) {
	target, err := c.ResolveURL(href)
	if err != nil {
		return Detail{}, err
	}
	body, err := c.get(ctx, target, seconds(c.cfg.DetailTimeoutSeconds, 10))
	if err != nil {
		return Detail{}, err
	}
	return ParseDetail(bytes.NewReader(body))
}

// ResolveURL makes href absolute against the listing URL and drops the fragment.
func (c *Client) ResolveURL(href string) (string, error) {
	base, err := url.Parse(c.cfg.ListingURL)
	if err != nil {
		return "", fmt.Errorf("parsing listing url: %w", err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parsing detail url %q: %w", href, err)
	}
	abs := base.ResolveReference(ref)
	abs.Fragment = ""
	return abs.String(), nil
}

func (c *Client) get(ctx context.Context, target string, timeout time.Duration) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: waiting to fetch %s: %w", ErrUpstream, target, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", target, err)
	}
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrUpstream, target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrUpstream, target, err)
	}
	return body, nil
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
