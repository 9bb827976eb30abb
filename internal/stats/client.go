package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"cerb/internal/stats/metrics"
	"cerb/pkg/platform/sentinel"
)

// Query names, used as metric labels and in errors.
const (
	QuerySummary   = "summary"
	QueryCountries = "countries"
)

const maxBodyBytes = 16 << 20

// ErrResponseTooLarge is wrapped by the FetchError returned for bodies over
// the size limit.
var ErrResponseTooLarge = errors.New("response too large")

// Client fetches pandemic statistics. Each call is a single blocking GET;
// failures are returned as *FetchError and never retried.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
	maxBody    int64
	logger     *zap.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default client (which has a 10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCache enables response caching for ttl. A zero ttl disables caching.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) { c.tracer = tracer }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse stats base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("stats base URL must be http or https, got %q", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		maxBody:    maxBodyBytes,
		logger:     zap.NewNop(),
		tracer:     otel.Tracer("cerb/stats"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Summary returns worldwide totals and the per-country list.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var summary Summary
	if err := c.get(ctx, QuerySummary, "/summary", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GlobalSummary returns the worldwide totals.
func (c *Client) GlobalSummary(ctx context.Context) (*GlobalStats, error) {
	summary, err := c.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &summary.Global, nil
}

// Countries lists every country the API knows about.
func (c *Client) Countries(ctx context.Context) ([]Country, error) {
	var countries []Country
	if err := c.get(ctx, QueryCountries, "/countries", &countries); err != nil {
		return nil, err
	}
	return countries, nil
}

// CountrySummary finds the country whose slug matches in the full summary.
// There is no per-country endpoint; this is a linear scan.
func (c *Client) CountrySummary(ctx context.Context, slug string) (*CountryStats, error) {
	summary, err := c.Summary(ctx)
	if err != nil {
		return nil, err
	}
	country, ok := summary.FindCountry(slug)
	if !ok {
		return nil, NewFetchError(ErrorNotFound, QuerySummary, fmt.Sprintf("no country with slug %q", slug), sentinel.ErrNotFound)
	}
	return country, nil
}

func (c *Client) get(ctx context.Context, query, path string, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "stats."+query, trace.WithAttributes(attribute.String("stats.path", path)))
	start := time.Now()
	defer func() {
		c.metrics.ObserveFetch(query, time.Since(start))
		if err != nil {
			c.metrics.IncrementError(query, string(GetCategory(err)))
			span.RecordError(err)
			span.SetStatus(codes.Error, string(GetCategory(err)))
			c.logger.Warn("stats fetch failed", zap.String("query", query), zap.Error(err))
		}
		span.End()
	}()

	body, err := c.fetch(ctx, query, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return NewFetchError(ErrorBadData, query, "malformed JSON", err)
	}
	return nil
}

// fetch returns the response body, consulting the cache first. Cache
// failures are logged and treated as misses.
func (c *Client) fetch(ctx context.Context, query, path string) ([]byte, error) {
	if c.cachingEnabled() {
		body, err := c.cache.Get(ctx, path)
		switch {
		case err == nil:
			c.metrics.IncrementCache("hit")
			return body, nil
		case errors.Is(err, sentinel.ErrNotFound):
			c.metrics.IncrementCache("miss")
		default:
			c.metrics.IncrementCache("error")
			c.logger.Warn("stats cache read failed", zap.String("path", path), zap.Error(err))
		}
	}

	body, err := c.do(ctx, query, path)
	if err != nil {
		return nil, err
	}

	// Only cache bodies that decode, so a bad payload is not served again.
	if c.cachingEnabled() && json.Valid(body) {
		if err := c.cache.Set(ctx, path, body, c.cacheTTL); err != nil {
			c.logger.Warn("stats cache write failed", zap.String("path", path), zap.Error(err))
		}
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, query, path string) ([]byte, error) {
	u := *c.baseURL
	u.Path += path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, NewFetchError(ErrorInternal, query, "build request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, NewFetchError(ErrorTimeout, query, "request timed out", err)
		}
		return nil, NewFetchError(ErrorProviderOutage, query, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fe := NewFetchError(categoryForStatus(resp.StatusCode), query, "unexpected status "+resp.Status, nil)
		fe.StatusCode = resp.StatusCode
		return nil, fe
	}

	// One byte past the limit tells a full body apart from a cut-off one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		if isTimeout(err) {
			return nil, NewFetchError(ErrorTimeout, query, "reading response timed out", err)
		}
		return nil, NewFetchError(ErrorProviderOutage, query, "read response", err)
	}
	if int64(len(body)) > c.maxBody {
		return nil, NewFetchError(ErrorBadData, query, fmt.Sprintf("body exceeds %d bytes", c.maxBody), ErrResponseTooLarge)
	}
	return body, nil
}

func (c *Client) cachingEnabled() bool {
	return c.cache != nil && c.cacheTTL > 0
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
