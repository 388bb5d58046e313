package helix

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/twitch-rs/twitch-api-sub001/ids"
	"github.com/twitch-rs/twitch-api-sub001/internal/query"
	"github.com/twitch-rs/twitch-api-sub001/twitcherr"
	"go.uber.org/zap"
)

// Request is the static descriptor every Helix endpoint value implements.
// Constructing one never performs I/O (spec §3): it is pure data until
// handed to Execute.
type Request interface {
	// HTTPMethod is one of GET, POST, PUT, PATCH, DELETE.
	HTTPMethod() string
	// Path is the URL suffix appended to BaseURL.
	Path() string
	// RequiredScope is the boolean scope expression the driver checks
	// before transport.
	RequiredScope() ScopeRequirement
	// QueryValue is serialized via internal/query into the query string.
	// Return nil for requests with no query parameters.
	QueryValue() interface{}
	// BodyValue returns the value to JSON-encode as the request body, and
	// whether a body is present at all.
	BodyValue() (interface{}, bool)
}

// PaginatedRequest is implemented by Request values that support forward
// pagination via an `after` cursor.
type PaginatedRequest interface {
	Request
	SetAfter(c ids.Cursor)
}

// Pagination carries the cursor and optional total count the server
// returned alongside a list response.
type Pagination struct {
	Cursor    ids.Cursor
	HasCursor bool
	Total     *int
}

// rawEnvelope mirrors the wire shape `{data, pagination, total}` (spec §6).
type rawEnvelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination *struct {
		Cursor string `json:"cursor"`
	} `json:"pagination"`
	Total *int `json:"total"`
}

// helixErrorShape mirrors Twitch's own error document, which, when
// present, overrides the declared success shape regardless of transport
// status (spec §4.4 step 5, §6).
type helixErrorShape struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (c *Client) buildURL(r Request) (string, error) {
	base := strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(r.Path(), "/")
	u, err := url.Parse(base)
	if err != nil {
		return "", &twitcherr.URIError{URI: base, Err: err}
	}
	if qv := r.QueryValue(); qv != nil {
		values, err := query.Encode(qv)
		if err != nil {
			return "", &twitcherr.URIError{URI: base, Err: err}
		}
		u.RawQuery = values.Encode()
	}
	return u.String(), nil
}

// checkScope enforces spec §7 "Missing scope: refuse before transport."
func (c *Client) checkScope(r Request) error {
	req := r.RequiredScope()
	if req == nil {
		req = NoScope{}
	}
	_, have := c.tokens.Get()
	if req.check(have) {
		return nil
	}
	granted := make([]string, 0, len(have))
	for s := range have {
		granted = append(granted, s)
	}
	return &twitcherr.MissingScopeError{Required: req.String(), Have: granted}
}

// do performs steps 1-4 of the driver (spec §4.4): build the URL, encode
// the body, attach headers, dispatch. It returns the raw status and body
// for the caller to classify and decode.
func (c *Client) do(ctx context.Context, r Request) (status int, body []byte, err error) {
	if err := c.checkScope(r); err != nil {
		return 0, nil, err
	}

	urlStr, err := c.buildURL(r)
	if err != nil {
		return 0, nil, err
	}

	var bodyReader io.Reader
	hasBody := false
	if bv, ok := r.BodyValue(); ok {
		hasBody = true
		encoded, err := json.Marshal(bv)
		if err != nil {
			return 0, nil, &twitcherr.SerializeError{Value: bv, Err: err}
		}
		bodyReader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, r.HTTPMethod(), urlStr, bodyReader)
	if err != nil {
		return 0, nil, &twitcherr.URIError{URI: urlStr, Err: err}
	}

	token, _ := c.tokens.Get()
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Client-Id", c.clientID)
	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, &twitcherr.TransportError{Op: "rate limit wait", Err: err}
		}
	}

	start := time.Now()
	resp, err := c.doer.Do(httpReq)
	elapsed := time.Since(start)
	endpoint := r.Path()
	if c.metrics != nil {
		c.metrics.latency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
	}
	if err != nil {
		c.observe(endpoint, "transport_error")
		return 0, nil, &twitcherr.TransportError{Op: r.HTTPMethod() + " " + urlStr, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(endpoint, "read_error")
		return resp.StatusCode, nil, &twitcherr.TransportError{Op: "read response body", Err: err}
	}

	c.logger.Debug("helix request",
		zap.String("method", r.HTTPMethod()),
		zap.String("url", urlStr),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	)

	return resp.StatusCode, respBody, nil
}

func (c *Client) observe(endpoint, outcome string) {
	if c.metrics != nil {
		c.metrics.requests.WithLabelValues(endpoint, outcome).Inc()
	}
}

// classify inspects a response body for Twitch's own error shape
// (spec §4.4 step 5). If present, it always wins over the declared
// success shape, even on a 2xx transport status.
func classify(urlStr string, status int, body []byte) error {
	var errShape helixErrorShape
	if err := json.Unmarshal(body, &errShape); err == nil && errShape.Error != "" {
		reportedStatus := errShape.Status
		if reportedStatus == 0 {
			reportedStatus = status
		}
		return &twitcherr.HTTPError{URI: urlStr, Status: reportedStatus, Error_: errShape.Error, Message: errShape.Message}
	}
	if status >= 400 {
		return &twitcherr.HTTPError{URI: urlStr, Status: status, Error_: http.StatusText(status), Message: string(body)}
	}
	return nil
}

// ExecuteList runs r and returns the entire `data` array, decoded as
// []T, plus pagination metadata when present.
func ExecuteList[T any](ctx context.Context, c *Client, r Request) ([]T, *Pagination, error) {
	urlStr, _ := c.buildURL(r)
	status, body, err := c.do(ctx, r)
	if err != nil {
		c.observe(r.Path(), "error")
		return nil, nil, err
	}
	if err := classify(urlStr, status, body); err != nil {
		c.observe(r.Path(), "http_error")
		return nil, nil, err
	}

	var env rawEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		c.observe(r.Path(), "decode_error")
		return nil, nil, &twitcherr.DeserializeError{URI: urlStr, Status: status, Body: body, Err: err}
	}

	var items []T
	if len(env.Data) > 0 {
		dec := json.NewDecoder(bytes.NewReader(env.Data))
		if c.strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&items); err != nil {
			c.observe(r.Path(), "decode_error")
			return nil, nil, &twitcherr.DeserializeError{URI: urlStr, Status: status, Body: body, Err: err}
		}
	}

	var page *Pagination
	if env.Pagination != nil {
		page = &Pagination{Total: env.Total}
		if env.Pagination.Cursor != "" {
			page.Cursor = ids.Cursor(env.Pagination.Cursor)
			page.HasCursor = true
		}
	}

	c.observe(r.Path(), "ok")
	return items, page, nil
}

// ExecuteSingle runs r and extracts data[0], failing if data is empty
// (spec §4.3 response type (a)).
func ExecuteSingle[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var zero T
	items, _, err := ExecuteList[T](ctx, c, r)
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		urlStr, _ := c.buildURL(r)
		return zero, &twitcherr.InvalidResponseError{URI: urlStr, Reason: "expected one item, got empty data"}
	}
	return items[0], nil
}

// ExecuteOptional runs r and extracts data[0] if present, or nil
// (spec §4.3 response type (b)).
func ExecuteOptional[T any](ctx context.Context, c *Client, r Request) (*T, error) {
	items, _, err := ExecuteList[T](ctx, c, r)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// StatusResult classifies a non-200-success response by HTTP status code
// (spec §4.3 "For endpoints returning non-200 success").
type StatusResult struct {
	Status int
}

// Success reports whether the call succeeded (2xx).
func (s StatusResult) Success() bool { return s.Status >= 200 && s.Status < 300 }

// ExecuteStatus runs r and classifies the result purely by status code,
// for endpoints whose success response carries no body (e.g. 204 on
// Modify Channel Information, spec §8 scenario 2).
func ExecuteStatus(ctx context.Context, c *Client, r Request) (StatusResult, error) {
	urlStr, _ := c.buildURL(r)
	status, body, err := c.do(ctx, r)
	if err != nil {
		c.observe(r.Path(), "error")
		return StatusResult{}, err
	}
	if err := classify(urlStr, status, body); err != nil {
		c.observe(r.Path(), "http_error")
		return StatusResult{}, err
	}
	c.observe(r.Path(), "ok")
	return StatusResult{Status: status}, nil
}

// Paginator walks a PaginatedRequest page by page, writing the returned
// cursor back onto the request before each subsequent call, stopping
// when a response carries no cursor (spec §4.4 step 6).
type Paginator[T any] struct {
	client *Client
	req    PaginatedRequest
	done   bool
	err    error
	page   []T
	total  *int
}

// NewPaginator builds a Paginator for req, which must not yet have been
// executed.
func NewPaginator[T any](client *Client, req PaginatedRequest) *Paginator[T] {
	return &Paginator[T]{client: client, req: req}
}

// Next fetches the next page, returning false when there are no more
// pages or an error occurred (check Err).
func (p *Paginator[T]) Next(ctx context.Context) bool {
	if p.done {
		return false
	}
	items, page, err := ExecuteList[T](ctx, p.client, p.req)
	if err != nil {
		p.err = err
		p.done = true
		return false
	}
	p.page = items
	if page != nil && page.Total != nil {
		p.total = page.Total
	}
	if page == nil || !page.HasCursor {
		// This is the last page; it is still valid and must be
		// processed via Page(), but no further call should fetch again.
		p.done = true
		return true
	}
	p.req.SetAfter(page.Cursor)
	return true
}

// Page returns the items fetched by the most recent Next call.
func (p *Paginator[T]) Page() []T { return p.page }

// Total returns the server-reported total count, if any page carried one.
func (p *Paginator[T]) Total() *int { return p.total }

// Err returns the error, if any, that stopped iteration.
func (p *Paginator[T]) Err() error { return p.err }
