package stream

import (
	"context"
	"net/url"
	"os"
	"time"

	"github.com/iexdata/iex-api-go/iex"
)

// Option is a configuration option of the Client.
type Option interface {
	apply(*options)
}

type options struct {
	logger         Logger
	baseURL        string
	reconnectLimit int
	reconnectDelay time.Duration
	bufferSize     int
	symbols        []string
	deepChannels   []string

	topsHandler func(iex.TOPS)
	lastHandler func(iex.LastSale)
	deepHandler func(DeepMessage)

	// for testing only
	connCreator   func(ctx context.Context, u url.URL) (conn, error)
	tickerCreator tickerCreator
}

type funcOption struct {
	f func(*options)
}

func (fo *funcOption) apply(o *options) {
	fo.f(o)
}

func newFuncOption(f func(*options)) *funcOption {
	return &funcOption{
		f: f,
	}
}

// WithLogger configures the logger
func WithLogger(logger Logger) Option {
	return newFuncOption(func(o *options) {
		o.logger = logger
	})
}

// WithBaseURL configures the base URL, e.g. https://ws-api.iextrading.com/1.0.
// The channel is appended to its path to form the socket.io namespace.
func WithBaseURL(url string) Option {
	return newFuncOption(func(o *options) {
		o.baseURL = url
	})
}

// WithReconnectSettings configures how many consecutive connection
// errors should be accepted and the delay (that is multiplied by the number of consecutive errors)
// between retries. limit = 0 means the client will try restarting indefinitely.
func WithReconnectSettings(limit int, delay time.Duration) Option {
	return newFuncOption(func(o *options) {
		o.reconnectLimit = limit
		o.reconnectDelay = delay
	})
}

// WithBufferSize sets the number of subscription changes that may be
// queued while the connection is busy.
func WithBufferSize(size int) Option {
	return newFuncOption(func(o *options) {
		o.bufferSize = size
	})
}

// WithSymbols configures the symbols subscribed to on connection.
// Use "firehose" to receive every symbol of the tops and last channels.
func WithSymbols(symbols ...string) Option {
	return newFuncOption(func(o *options) {
		o.symbols = symbols
	})
}

// WithDeepChannels selects the DEEP message types to subscribe to.
// Defaults to "deep", which includes all of them.
func WithDeepChannels(channels ...string) Option {
	return newFuncOption(func(o *options) {
		o.deepChannels = channels
	})
}

// WithTOPSHandler sets the handler of the tops channel.
func WithTOPSHandler(handler func(iex.TOPS)) Option {
	return newFuncOption(func(o *options) {
		o.topsHandler = handler
	})
}

// WithLastHandler sets the handler of the last channel.
func WithLastHandler(handler func(iex.LastSale)) Option {
	return newFuncOption(func(o *options) {
		o.lastHandler = handler
	})
}

// WithDeepHandler sets the handler of the deep channel.
func WithDeepHandler(handler func(DeepMessage)) Option {
	return newFuncOption(func(o *options) {
		o.deepHandler = handler
	})
}

// withConnCreator is only used for testing
func withConnCreator(connCreator func(ctx context.Context, u url.URL) (conn, error)) Option {
	return newFuncOption(func(o *options) {
		o.connCreator = connCreator
	})
}

// withTickerCreator is only used for testing
func withTickerCreator(creator tickerCreator) Option {
	return newFuncOption(func(o *options) {
		o.tickerCreator = creator
	})
}

func defaultOptions() *options {
	baseURL := iex.DefaultWebsocketURL
	if s := os.Getenv("IEX_WS_BASE_URL"); s != "" {
		baseURL = s
	}
	return &options{
		logger:         newDefaultLog(),
		baseURL:        baseURL,
		reconnectLimit: 20,
		reconnectDelay: 150 * time.Millisecond,
		bufferSize:     16,
		deepChannels:   []string{"deep"},
		topsHandler:    func(iex.TOPS) {},
		lastHandler:    func(iex.LastSale) {},
		deepHandler:    func(DeepMessage) {},
		connCreator:    newNhooyrWebsocketConn,
		tickerCreator:  newTimeTicker,
	}
}

func (o *options) applyAll(opts ...Option) {
	for _, opt := range opts {
		opt.apply(o)
	}
}
