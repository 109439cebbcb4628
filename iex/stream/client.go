// Package stream is a client of the IEX socket.io push feed.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/iexdata/iex-api-go/iex"
	"github.com/iexdata/iex-api-go/internal/ctxtime"
)

// Client is a client that connects to one channel of the IEX push feed.
//
// After constructing, Connect() must be called before any subscription changes
// are called. Connect keeps the connection alive and reestablishes it until
// a configured number of retries has not been exceeded. Subscriptions are
// replayed after every reconnect.
//
// Terminated() returns a channel that the client sends an error to when it has terminated.
// A client can not be reused once it has terminated!
//
// The feed does not acknowledge subscription changes, so Subscribe and
// Unsubscribe return once the change is queued for writing.
type Client interface {
	// Connect establishes a connection and reestablishes it when errors occur.
	// It blocks until the connection has been established for the first time (or it failed to do so).
	//
	// Should only be called once!
	Connect(ctx context.Context) error
	// Terminated returns a channel that the client sends an error to when it has terminated.
	// The channel is also closed upon termination.
	Terminated() <-chan error
	Subscribe(symbols ...string) error
	Unsubscribe(symbols ...string) error
}

type client struct {
	logger Logger

	baseURL        string
	channel        Channel
	reconnectLimit int
	reconnectDelay time.Duration
	deepChannels   []string

	connectOnce    sync.Once
	terminatedChan chan error
	conn           conn
	out            chan []byte
	namespace      string

	mu         sync.Mutex
	symbols    []string
	connected  bool
	terminated bool

	topsHandler func(iex.TOPS)
	lastHandler func(iex.LastSale)
	deepHandler func(DeepMessage)

	connCreator   func(ctx context.Context, u url.URL) (conn, error)
	tickerCreator tickerCreator
}

var _ Client = (*client)(nil)

// NewClient returns a new Client of channel whose default configurations
// are modified by opts.
func NewClient(channel Channel, opts ...Option) Client {
	o := defaultOptions()
	o.applyAll(opts...)
	return &client{
		logger:         o.logger,
		baseURL:        o.baseURL,
		channel:        channel,
		reconnectLimit: o.reconnectLimit,
		reconnectDelay: o.reconnectDelay,
		deepChannels:   o.deepChannels,
		terminatedChan: make(chan error, 1),
		out:            make(chan []byte, o.bufferSize),
		symbols:        slices.Clone(o.symbols),
		topsHandler:    o.topsHandler,
		lastHandler:    o.lastHandler,
		deepHandler:    o.deepHandler,
		connCreator:    o.connCreator,
		tickerCreator:  o.tickerCreator,
	}
}

// constructURL returns the websocket URL of the socket.io endpoint and the
// namespace of the channel.
func (c *client) constructURL() (url.URL, string, error) {
	ub, err := url.Parse(c.baseURL)
	if err != nil {
		return url.URL{}, "", err
	}
	scheme := "wss"
	switch ub.Scheme {
	case "http", "ws":
		scheme = "ws"
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     ub.Host,
		Path:     "/socket.io/",
		RawQuery: "EIO=3&transport=websocket",
	}
	return u, strings.TrimSuffix(ub.Path, "/") + "/" + c.channel.token, nil
}

func (c *client) Connect(ctx context.Context) error {
	err := ErrConnectCalledMultipleTimes
	c.connectOnce.Do(func() {
		var u url.URL
		u, c.namespace, err = c.constructURL()
		if err == nil {
			err = c.connectAndMaintainConnection(ctx, u)
		}
		if err != nil {
			c.setTerminated()
			c.terminatedChan <- err
			close(c.terminatedChan)
		}
	})
	return err
}

func (c *client) setTerminated() {
	c.mu.Lock()
	c.terminated = true
	c.mu.Unlock()
}

func (c *client) connectAndMaintainConnection(ctx context.Context, u url.URL) error {
	initialResultCh := make(chan error)
	go c.maintainConnection(ctx, u, initialResultCh)
	return <-initialResultCh
}

func (c *client) Terminated() <-chan error {
	return c.terminatedChan
}

// maintainConnection initializes a connection to u, starts the necessary goroutines
// and recreates them if there was an error as long as reconnectLimit consecutive
// connection initialization errors don't occur. It sends the first connection
// initialization's result to initialResultCh.
func (c *client) maintainConnection(ctx context.Context, u url.URL, initialResultCh chan<- error) {
	var connError error
	failedAttemptsInARow := 0
	connectedAtLeastOnce := false

	defer func() {
		// if we haven't connected at least once then Connect closes the channel
		if connectedAtLeastOnce {
			close(c.terminatedChan)
		}
	}()

	sendError := func(err error) {
		c.setTerminated()
		if !connectedAtLeastOnce {
			initialResultCh <- err
		} else {
			c.terminatedChan <- err
		}
	}

	for {
		if ctx.Err() != nil {
			c.setTerminated()
			if !connectedAtLeastOnce {
				c.logger.Warnf("iexstream: cancelled before connection could be established, last error: %v", connError)
				initialResultCh <- fmt.Errorf("cancelled before connection could be established, last error: %w", connError)
			} else {
				c.terminatedChan <- nil
			}
			return
		}
		if c.reconnectLimit != 0 && failedAttemptsInARow >= c.reconnectLimit {
			c.logger.Errorf("iexstream: max reconnect limit has been reached, last error: %v", connError)
			sendError(fmt.Errorf("max reconnect limit has been reached, last error: %w", connError))
			return
		}
		if err := ctxtime.Sleep(ctx, time.Duration(failedAttemptsInARow)*c.reconnectDelay); err != nil {
			continue
		}
		failedAttemptsInARow++
		c.logger.Infof("iexstream: connecting to %s, attempt %d/%d ...", u.String(), failedAttemptsInARow, c.reconnectLimit)
		conn, err := c.connCreator(ctx, u)
		if err != nil {
			connError = err
			c.logger.Warnf("iexstream: failed to connect, error: %v", err)
			continue
		}
		c.conn = conn

		pingPeriod, err := c.initialize(ctx)
		if err != nil {
			connError = err
			c.conn.close()
			c.logger.Warnf("iexstream: connection setup failed, error: %v", err)
			continue
		}
		c.logger.Infof("iexstream: joined %s", c.namespace)
		connError = nil
		if !connectedAtLeastOnce {
			c.mu.Lock()
			c.connected = true
			c.mu.Unlock()
			initialResultCh <- nil
			connectedAtLeastOnce = true
		}
		failedAttemptsInARow = 0

		wg := sync.WaitGroup{}
		wg.Add(3)
		closeCh := make(chan struct{})
		go c.connPinger(ctx, &wg, closeCh, pingPeriod)
		go c.connReader(ctx, &wg, closeCh)
		go c.connWriter(ctx, &wg, closeCh)
		wg.Wait()
		if ctx.Err() != nil {
			c.logger.Infof("iexstream: disconnected")
		} else {
			c.logger.Warnf("iexstream: connection lost")
		}
	}
}

// initialize performs the engine.io open and socket.io namespace connect
// exchange, then replays the current subscriptions. It returns the ping
// period announced by the server.
func (c *client) initialize(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, handshakeWait)
	defer cancel()

	f, err := c.readFrame(ctx)
	if err != nil {
		return 0, err
	}
	if f.kind != frameOpen {
		return 0, ErrNoOpen
	}
	pingPeriod := f.pingInterval()

	if err := c.conn.writeMessage(ctx, connectFrame(c.namespace)); err != nil {
		return 0, err
	}
	for joined := false; !joined; {
		f, err := c.readFrame(ctx)
		if err != nil {
			return 0, err
		}
		switch {
		case f.kind == frameError && f.namespace == c.namespace:
			return 0, fmt.Errorf("%w: %s", ErrNamespaceRejected, f.data)
		case f.kind == frameConnect && f.namespace == c.namespace:
			joined = true
		}
	}

	// changes queued while disconnected are covered by the replay
	for drained := false; !drained; {
		select {
		case <-c.out:
		default:
			drained = true
		}
	}
	c.mu.Lock()
	symbols := slices.Clone(c.symbols)
	c.mu.Unlock()
	if len(symbols) == 0 {
		return pingPeriod, nil
	}
	msg, err := c.subscriptionFrame(subscribeEvent, symbols)
	if err != nil {
		return 0, err
	}
	return pingPeriod, c.conn.writeMessage(ctx, msg)
}

func (c *client) readFrame(ctx context.Context) (frame, error) {
	b, err := c.conn.readMessage(ctx)
	if err != nil {
		return frame{}, err
	}
	return parseFrame(b)
}

// connPinger sends an engine.io ping every pingPeriod, which keeps the
// session alive on the server side.
func (c *client) connPinger(ctx context.Context, wg *sync.WaitGroup, closeCh <-chan struct{}, pingPeriod time.Duration) {
	pingTicker := c.tickerCreator(pingPeriod)
	defer func() {
		pingTicker.Stop()
		c.conn.close()
		wg.Done()
	}()

	for {
		select {
		case <-closeCh:
			return
		case <-ctx.Done():
			return
		case <-pingTicker.C():
			if err := c.conn.writeMessage(ctx, pingFrame); err != nil {
				if ctx.Err() == nil {
					c.logger.Errorf("iexstream: ping failed, error: %v", err)
				}
				return
			}
		}
	}
}

// connReader reads from c.conn and dispatches the messages to the handlers.
// It is also responsible for closing closeCh that terminates the other worker
// goroutines.
func (c *client) connReader(ctx context.Context, wg *sync.WaitGroup, closeCh chan<- struct{}) {
	defer func() {
		close(closeCh)
		c.conn.close()
		wg.Done()
	}()

	for {
		f, err := c.readFrame(ctx)
		if err != nil {
			if ctx.Err() == nil {
				c.logger.Errorf("iexstream: reading from conn failed, error: %v", err)
			}
			return
		}
		switch f.kind {
		case frameClose:
			c.logger.Warnf("iexstream: server closed the session")
			return
		case frameDisconnect:
			if f.namespace == c.namespace {
				c.logger.Warnf("iexstream: server left %s", c.namespace)
				return
			}
		case framePing:
			if err := c.conn.writeMessage(ctx, pongFrame); err != nil {
				return
			}
		case frameEvent:
			if err := c.handleEvent(f); err != nil {
				c.logger.Errorf("iexstream: could not handle message, error: %v", err)
			}
		}
	}
}

// connWriter handles writing messages from c.out to c.conn
func (c *client) connWriter(ctx context.Context, wg *sync.WaitGroup, closeCh <-chan struct{}) {
	defer func() {
		c.conn.close()
		wg.Done()
	}()

	for {
		select {
		case <-closeCh:
			return
		case <-ctx.Done():
			return
		case msg := <-c.out:
			if err := c.conn.writeMessage(ctx, msg); err != nil {
				if ctx.Err() == nil {
					c.logger.Errorf("iexstream: writing to conn failed, error: %v", err)
				}
				return
			}
		}
	}
}

func (c *client) handleEvent(f frame) error {
	if f.namespace != c.namespace {
		return nil
	}
	name, payload, err := f.event()
	if err != nil {
		return err
	}
	if name != "message" {
		c.logger.Infof("iexstream: ignoring %q event", name)
		return nil
	}
	switch c.channel {
	case TOPSChannel:
		tops, err := decode[iex.TOPS](payload)
		if err != nil {
			return err
		}
		c.topsHandler(tops)
	case LastChannel:
		last, err := decode[iex.LastSale](payload)
		if err != nil {
			return err
		}
		c.lastHandler(last)
	case DEEPChannel:
		msg, err := decode[DeepMessage](payload)
		if err != nil {
			return err
		}
		c.deepHandler(msg)
	}
	return nil
}

func decode[T any](payload []byte) (T, error) {
	resp, err := iex.NewResponse(payload)
	if err != nil {
		var zero T
		return zero, err
	}
	return iex.Convert[T](resp)
}

const (
	subscribeEvent   = "subscribe"
	unsubscribeEvent = "unsubscribe"
)

func (c *client) subscriptionFrame(event string, symbols []string) ([]byte, error) {
	arg := strings.Join(symbols, ",")
	if c.channel == DEEPChannel {
		b, err := json.Marshal(deepSubscription{Symbols: symbols, Channels: c.deepChannels})
		if err != nil {
			return nil, err
		}
		arg = string(b)
	}
	return eventFrame(c.namespace, event, arg)
}

func (c *client) Subscribe(symbols ...string) error {
	return c.change(subscribeEvent, symbols)
}

func (c *client) Unsubscribe(symbols ...string) error {
	return c.change(unsubscribeEvent, symbols)
}

func (c *client) change(event string, symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.terminated:
		return ErrSubscriptionChangeAfterTerminated
	case !c.connected:
		return ErrSubscriptionChangeBeforeConnect
	}
	msg, err := c.subscriptionFrame(event, symbols)
	if err != nil {
		return err
	}
	select {
	case c.out <- msg:
	default:
		return ErrSubscriptionBufferFull
	}
	if event == subscribeEvent {
		for _, s := range symbols {
			if !slices.Contains(c.symbols, s) {
				c.symbols = append(c.symbols, s)
			}
		}
	} else {
		c.symbols = slices.DeleteFunc(c.symbols, func(s string) bool {
			return slices.Contains(symbols, s)
		})
	}
	return nil
}
