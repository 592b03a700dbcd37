package siteinfo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nao1215/versioncompare/internal/config"
	"github.com/nao1215/versioncompare/internal/model"
)

// siteinfoQuery holds the parameters added to every base URL.
var siteinfoQuery = map[string]string{
	"action": "query",
	"meta":   "siteinfo",
	"siprop": "general|extensions|skins",
	"format": "json",
}

// Fetcher retrieves and normalizes siteinfo from MediaWiki API endpoints.
// A Fetcher holds no per-request state and may be reused.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	repairJSON  bool
	logger      *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the largest accepted response body in bytes.
// Larger responses fail with ErrUnreachable. Non-positive values keep
// the default.
func WithMaxBodySize(size int64) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithLenientJSON enables a JSON repair pass for bodies that fail to parse.
func WithLenientJSON(enabled bool) Option {
	return func(f *Fetcher) {
		f.repairJSON = enabled
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFetcher creates a Fetcher. Without WithHTTPClient it uses a client
// with config.DefaultTimeout.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: config.DefaultTimeout},
		userAgent:   config.DefaultUserAgent,
		maxBodySize: config.DefaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// QueryURL returns baseURL with the siteinfo query parameters added.
// Parameters already on baseURL are kept unless they collide.
// Only absolute http and https URLs are accepted.
func QueryURL(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL %q has no host", baseURL)
	}

	q := u.Query()
	for k, v := range siteinfoQuery {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch retrieves siteinfo from baseURL and normalizes it.
// The returned error wraps ErrUnreachable, ErrInvalidJSON or
// ErrMissingFields.
func (f *Fetcher) Fetch(ctx context.Context, baseURL string) (*model.SiteInfo, error) {
	target, err := QueryURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	f.logger.Debug("fetching siteinfo", "url", target)

	body, err := f.get(ctx, target)
	if err != nil {
		f.logger.Warn("siteinfo request failed", "url", target, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	info, err := Normalize(body, WithRepair(f.repairJSON))
	if err != nil {
		f.logger.Warn("siteinfo response rejected", "url", target, "error", err)
		return nil, err
	}
	info.SourceURL = baseURL

	f.logger.Debug("siteinfo fetched",
		"url", target,
		"wikiid", info.WikiID,
		"extensions", info.ExtensionCount,
	)
	return info, nil
}

// get performs the GET and returns the body of a 200 response. A body
// longer than maxBodySize is an error, never a truncated read.
func (f *Fetcher) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, fmt.Errorf("response exceeds %d bytes", f.maxBodySize)
	}
	return body, nil
}

// NewFetcherFromConfig creates a Fetcher from the timeout, proxy, user
// agent, body size and lenient JSON settings of cfg.
func NewFetcherFromConfig(cfg *config.Config, logger *slog.Logger) (*Fetcher, error) {
	client, err := NewHTTPClient(cfg.Timeout, cfg.Proxy)
	if err != nil {
		return nil, err
	}
	return NewFetcher(
		WithHTTPClient(client),
		WithUserAgent(cfg.UserAgent),
		WithMaxBodySize(cfg.MaxBodySize),
		WithLenientJSON(cfg.LenientJSON),
		WithLogger(logger),
	), nil
}
