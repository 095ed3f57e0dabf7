package overpass

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	DEFAULT_URL          = "https://overpass-api.de/api/interpreter"
	DEFAULT_HTTP_TIMEOUT = 90 * time.Second
	USER_AGENT           = "turismo-search/1.0"
)

// request outcomes reported to the observer
const (
	OutcomeOK       = "ok"
	OutcomeCacheHit = "cache_hit"
	OutcomeError    = "error"
)

var ErrTransport = errors.New("overpass request failed")

// TransportError is returned for every failed round trip: network errors,
// non-2xx responses and undecodable bodies. It matches ErrTransport.
type TransportError struct {
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", ErrTransport, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ElementCache stores decoded responses keyed by query text.
type ElementCache interface {
	Get(query string) ([]Element, bool, error)
	Put(query string, elements []Element) error
}

type RequestObserver interface {
	ObserveRequest(outcome string, d time.Duration)
}

type Config struct {
	URL         string
	HTTPTimeout time.Duration
	RateLimit   float64 // requests per second, <= 0 disables the limiter
	RateBurst   int
}

type Client struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      ElementCache
	observer   RequestObserver
	log        *zap.Logger
}

type Option func(*Client)

func WithCache(cache ElementCache) Option {
	return func(c *Client) { c.cache = cache }
}

func WithObserver(observer RequestObserver) Option {
	return func(c *Client) { c.observer = observer }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(cfg Config, log *zap.Logger, opts ...Option) *Client {
	if cfg.URL == "" {
		cfg.URL = DEFAULT_URL
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = DEFAULT_HTTP_TIMEOUT
	}
	c := &Client{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		log:        log,
	}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchElements posts query as text/plain and returns the elements array of the
// response, empty when the array is missing. There is no retry.
func (c *Client) FetchElements(ctx context.Context, query string) ([]Element, error) {
	start := time.Now()

	if c.cache != nil {
		elements, ok, err := c.cache.Get(query)
		if err != nil {
			c.log.Warn("overpass cache read failed", zap.Error(err))
		} else if ok {
			c.observe(OutcomeCacheHit, start)
			return elements, nil
		}
	}

	elements, err := c.post(ctx, query)
	if err != nil {
		c.observe(OutcomeError, start)
		return nil, err
	}
	c.observe(OutcomeOK, start)

	if c.cache != nil {
		if err := c.cache.Put(query, elements); err != nil {
			c.log.Warn("overpass cache write failed", zap.Error(err))
		}
	}
	return elements, nil
}

func (c *Client) post(ctx context.Context, query string) ([]Element, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &TransportError{Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(query))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	if body.Elements == nil {
		return []Element{}, nil
	}
	return body.Elements, nil
}

func (c *Client) observe(outcome string, start time.Time) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveRequest(outcome, time.Since(start))
}
