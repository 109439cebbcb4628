package stream

import (
	"context"
	"time"
)

// conn represents a websocket connection between the server and the client
type conn interface {
	// close closes the websocket connection
	close() error
	// readMessage blocks until it reads a single text frame
	readMessage(ctx context.Context) (data []byte, err error)
	// writeMessage writes a single text frame
	writeMessage(ctx context.Context, data []byte) error
}

var (
	dialTimeout       = 3 * time.Second  // Time allowed to establish the websocket
	writeWait         = 5 * time.Second  // Time allowed to write a message to the peer
	handshakeWait     = 10 * time.Second // Time allowed for the open and namespace connect exchange
	defaultPingPeriod = 25 * time.Second // Used when the server does not announce a ping interval
)
