// Package helix implements the Helix request/response framework and
// driver (spec §4.3, §4.4): per-endpoint request values, a uniform
// execute path, pagination, retry-worthy error classification and typed
// deserialization. It depends only on a request/response abstraction —
// the concrete HTTP transport (connections, TLS, HTTP/2) is always an
// external collaborator.
package helix

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BaseURL is the root every request path in this package is relative to.
const BaseURL = "https://api.twitch.tv/helix/"

// Doer is the sole transport abstraction the driver depends on. Any
// *http.Client satisfies it, and so does a test double — this is the
// monomorphized-per-implementation shape spec §9's design note calls
// for, expressed as a Go interface rather than a generic future.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource holds the bearer token and its granted scopes, shared by
// reference across goroutines. Rotation (e.g. by an external refresh
// loop) is safe: writers take the write lock, the driver takes a brief
// read lock to copy the token before each request (spec §5).
type TokenSource struct {
	mu     sync.RWMutex
	token  string
	scopes map[string]bool
}

// NewTokenSource builds a TokenSource from an initial bearer token and
// its granted scopes.
func NewTokenSource(token string, scopes []string) *TokenSource {
	return &TokenSource{token: token, scopes: scopeSet(scopes)}
}

// Set rotates the token and its granted scopes. Safe for concurrent use
// with Get and with in-flight requests that already copied the old token.
func (t *TokenSource) Set(token string, scopes []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
	t.scopes = scopeSet(scopes)
}

// Get copies out the current token and scope set under a read lock.
func (t *TokenSource) Get() (string, map[string]bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token, t.scopes
}

// metrics holds the optional Prometheus instrumentation. Every field is
// nil-safe: a Client built without WithPrometheus does no metrics work.
type metrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// Client drives Helix requests for a single client-id/token pair. It is
// stateless between calls (spec §4.4): concurrency is the caller's
// responsibility, achieved simply by calling Execute from multiple
// goroutines.
type Client struct {
	clientID string
	tokens   *TokenSource
	doer     Doer
	baseURL  string
	logger   *zap.Logger
	limiter  *rate.Limiter
	metrics  *metrics
	strict   bool // reject unknown JSON fields instead of tolerating them
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient supplies the transport collaborator. Defaults to
// http.DefaultClient.
func WithHTTPClient(d Doer) Option { return func(c *Client) { c.doer = d } }

// WithBaseURL overrides BaseURL, for testing against an httptest.Server.
func WithBaseURL(url string) Option { return func(c *Client) { c.baseURL = url } }

// WithLogger attaches structured logging for retry-worthy conditions and
// classification decisions. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option { return func(c *Client) { c.logger = l } }

// WithRateLimiter attaches an outbound token-bucket limiter, generalizing
// the pacing the teacher applies to outgoing chat messages
// (golang.org/x/time/rate) to Helix calls. Nil (the default) disables
// limiting; the driver then issues requests as fast as the caller asks.
func WithRateLimiter(l *rate.Limiter) Option { return func(c *Client) { c.limiter = l } }

// WithPrometheus registers request-count and latency instrumentation on
// the given registerer. Safe to call with nil to explicitly disable.
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(c *Client) {
		if reg == nil {
			c.metrics = nil
			return
		}
		m := &metrics{
			requests: prometheus.NewCounterVec(prometheus.CounterOpts{
				Name: "twitch_helix_requests_total",
				Help: "Helix requests issued, labeled by endpoint and outcome.",
			}, []string{"endpoint", "outcome"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name: "twitch_helix_request_duration_seconds",
				Help: "Helix request latency, labeled by endpoint.",
			}, []string{"endpoint"}),
		}
		reg.MustRegister(m.requests, m.latency)
		c.metrics = m
	}
}

// WithStrictUnknownFields flips the deserialization policy from
// "tolerate unknown fields" (the default) to "reject unknown fields"
// (spec §4.3).
func WithStrictUnknownFields() Option { return func(c *Client) { c.strict = true } }

// NewClient builds a Helix client for the given client-id and token
// source. Both are required: the client-id is sent as the Client-Id
// header on every call, and the token source supplies the bearer token
// and the scopes used for pre-flight scope checks.
func NewClient(clientID string, tokens *TokenSource, opts ...Option) *Client {
	c := &Client{
		clientID: clientID,
		tokens:   tokens,
		doer:     http.DefaultClient,
		baseURL:  BaseURL,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
