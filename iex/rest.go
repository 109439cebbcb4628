// Package iex is a client of the IEX 1.0 API.
//
// Requests go through a Client, which wraps every body in a Response;
// Convert gives a Response its record type. The service encodes some
// numbers and booleans as strings. StringUint64, StringInt64,
// StringFloat64 and Flag decode those fields, and can be used in caller
// defined records for the payloads returned unconverted, such as the
// daily list dividends.
package iex

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iexdata/iex-api-go/iex/stock"
)

const (
	// DefaultBaseURL is the host and version prefix of every endpoint.
	DefaultBaseURL = "https://api.iextrading.com/1.0"
	// DefaultWebsocketURL is the socket.io endpoint of the push feed.
	DefaultWebsocketURL = "https://ws-api.iextrading.com/1.0"
)

// Fetcher retrieves the body behind u. Implementations report connection
// failures and non-success statuses as errors; they own timeouts and
// cancellation.
//
//go:generate mockgen -package=iex -destination=mock_fetcher_test.go -source=rest.go Fetcher
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, u *url.URL) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	return f(ctx, u)
}

// ClientOpts contains options for the IEX client.
type ClientOpts struct {
	// BaseURL defaults to IEX_API_BASE_URL, or DefaultBaseURL.
	BaseURL string
	// Timeout of the default HTTP fetcher. Ignored when Fetcher is set.
	Timeout time.Duration
	// Fetcher replaces the default HTTP fetcher.
	Fetcher Fetcher
	// Logger receives a debug event per request. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Client builds request URLs, hands them to its Fetcher and wraps the
// results in Responses. It holds no mutable state and is safe for
// concurrent use.
type Client struct {
	opts    ClientOpts
	fetcher Fetcher
	logger  zerolog.Logger
}

// NewClient creates a new IEX client using the given opts.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		if s := os.Getenv("IEX_API_BASE_URL"); s != "" {
			opts.BaseURL = s
		} else {
			opts.BaseURL = DefaultBaseURL
		}
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	c := &Client{
		opts:    opts,
		fetcher: opts.Fetcher,
		logger:  zerolog.Nop(),
	}
	if c.fetcher == nil {
		c.fetcher = NewHTTPFetcher(opts.Timeout)
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	return c
}

// DefaultClient uses options from environment variables, or the defaults.
var DefaultClient = NewClient(ClientOpts{})

// RequestOption modifies the query of a single request.
type RequestOption func(q url.Values)

// WithFilter limits the response to the given fields. Field names are
// case-sensitive.
func WithFilter(fields ...string) RequestOption {
	return func(q url.Values) {
		if len(fields) > 0 {
			q.Set("filter", strings.Join(fields, ","))
		}
	}
}

// Format is the response format of Export. The zero value is JSON.
type Format struct {
	token string
}

func (f Format) String() string {
	if f.token == "" {
		return "json"
	}
	return f.token
}

// List of formats
var (
	JSON = Format{}
	CSV  = Format{"csv"}
	PSV  = Format{"psv"}
)

// Request fetches the stock endpoint e for symbol.
func (c *Client) Request(ctx context.Context, symbol string, e stock.Endpoint, opts ...RequestOption) (*Response, error) {
	path, q := stock.Encode(e, symbol)
	return c.Get(ctx, path, q, opts...)
}

// Get fetches path (relative to the base URL) with query q.
func (c *Client) Get(ctx context.Context, path string, q url.Values, opts ...RequestOption) (*Response, error) {
	b, err := c.fetch(ctx, path, q, opts)
	if err != nil {
		return nil, err
	}
	resp, err := NewResponse(b)
	if err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("iex: malformed response")
		return nil, err
	}
	return resp, nil
}

// Export fetches path in the given format and returns the raw body.
func (c *Client) Export(ctx context.Context, f Format, path string, q url.Values, opts ...RequestOption) ([]byte, error) {
	if f.token != "" {
		opts = append(opts, func(q url.Values) { q.Set("format", f.token) })
	}
	return c.fetch(ctx, path, q, opts)
}

// ExportStock fetches the stock endpoint e for symbol in the given format.
func (c *Client) ExportStock(ctx context.Context, f Format, symbol string, e stock.Endpoint, opts ...RequestOption) ([]byte, error) {
	path, q := stock.Encode(e, symbol)
	return c.Export(ctx, f, path, q, opts...)
}

func (c *Client) fetch(ctx context.Context, path string, q url.Values, opts []RequestOption) ([]byte, error) {
	u, err := url.Parse(c.opts.BaseURL)
	if err != nil {
		return nil, &TransportError{URL: c.opts.BaseURL + path, Err: fmt.Errorf("invalid base url: %w", err)}
	}
	// path is unescaped: symbols may contain '?', '#' or '%'
	u.Path = u.Path + path
	u.RawPath = ""
	query := u.Query()
	for k, vs := range q {
		query[k] = append(query[k], vs...)
	}
	for _, opt := range opts {
		opt(query)
	}
	u.RawQuery = query.Encode()

	c.logger.Debug().Str("url", u.String()).Msg("iex: request")
	b, err := c.fetcher.Fetch(ctx, u)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", u.String()).Msg("iex: request failed")
		var te *TransportError
		if errors.As(err, &te) {
			return nil, err
		}
		return nil, &TransportError{URL: u.String(), Err: err}
	}
	return b, nil
}

// maxErrorBody limits how much of an error body ends up in a TransportError.
const maxErrorBody = 4 << 10

type httpFetcher struct {
	client    *http.Client
	userAgent string
}

// NewHTTPFetcher returns the default Fetcher: a GET over net/http that
// accepts gzip and turns non-success statuses into TransportErrors.
func NewHTTPFetcher(timeout time.Duration) Fetcher {
	return &httpFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent(),
	}
}

func (f *httpFetcher) Fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &TransportError{URL: u.String(), Err: err}
	}
	req.Header.Set("Accept-Encoding", "gzip")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u.String(), Err: err}
	}
	defer resp.Body.Close()

	if err := verify(u, resp); err != nil {
		return nil, err
	}

	b, err := readBody(resp)
	if err != nil {
		return nil, &TransportError{URL: u.String(), StatusCode: resp.StatusCode, Status: resp.Status, Err: err}
	}
	return b, nil
}

func verify(u *url.URL, resp *http.Response) error {
	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &TransportError{
			URL:        u.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}
	return nil
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}
	return io.ReadAll(reader)
}
