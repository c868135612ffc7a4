package openlibrary

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/librelibrary/librelibrary/internal/metrics"
	log "github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

const DefaultEndpoint = "https://openlibrary.org/search.json"

var (
	ErrUnavailable       = errors.New("search service unavailable")
	ErrMalformedResponse = errors.New("malformed search response")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Endpoint          string
	UserAgent         string
	RequestsPerSecond float64
	Timeout           time.Duration
}

// Client queries the Open Library search API. It is safe for concurrent use.
type Client struct {
	httpClient *fasthttp.Client
	endpoint   string
	userAgent  string
	limiter    *rate.Limiter
	timeout    time.Duration
}

func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		httpClient: &fasthttp.Client{
			Name:                     cfg.UserAgent,
			ReadTimeout:              cfg.Timeout,
			WriteTimeout:             cfg.Timeout,
			NoDefaultUserAgentHeader: cfg.UserAgent == "",
		},
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		limiter:   rate.NewLimiter(limit, 1),
		timeout:   cfg.Timeout,
	}
}

// Search returns at most limit books matching query. A blank query returns no
// books without contacting the service.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Book, error) {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return []Book{}, nil
	}

	start := time.Now()
	books, err := c.search(ctx, query, limit)
	metrics.FetchDuration.Observe(time.Since(start).Seconds())

	fields := log.Fields{"query": query, "limit": limit, "took": time.Since(start)}
	if err != nil {
		metrics.FetchesTotal.WithLabelValues(outcome(err)).Inc()
		log.WithFields(fields).WithError(err).Debug("openlibrary.search")
		return []Book{}, err
	}
	metrics.FetchesTotal.WithLabelValues("ok").Inc()
	log.WithFields(fields).WithField("results", len(books)).Debug("openlibrary.search")
	return books, nil
}

func (c *Client) search(ctx context.Context, query string, limit int) ([]Book, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.searchURL(query, limit))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if c.userAgent != "" {
		req.Header.SetUserAgent(c.userAgent)
	}

	if err := c.httpClient.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUnavailable, resp.StatusCode())
	}

	var res searchResponse
	if err := json.Unmarshal(resp.Body(), &res); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if res.Docs == nil {
		return []Book{}, nil
	}
	if len(res.Docs) > limit {
		res.Docs = res.Docs[:limit]
	}
	return res.Docs, nil
}

func (c *Client) searchURL(query string, limit int) string {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + params.Encode()
}

// deadline is the earliest of the configured timeout and the context deadline.
func (c *Client) deadline(ctx context.Context) time.Time {
	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		return ctxDeadline
	}
	return deadline
}

func outcome(err error) string {
	if errors.Is(err, ErrMalformedResponse) {
		return "malformed"
	}
	return "unavailable"
}
