package stream

import (
	"context"
	"net/url"

	"nhooyr.io/websocket"
)

type nhooyrWebsocketConn struct {
	conn *websocket.Conn
}

// newNhooyrWebsocketConn dials u. The socket.io feed exchanges text frames
// only.
func newNhooyrWebsocketConn(ctx context.Context, u url.URL) (conn, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	c, _, err := websocket.Dial(ctxWithTimeout, u.String(), &websocket.DialOptions{
		CompressionMode: websocket.CompressionDisabled,
	})
	if err != nil {
		return nil, err
	}
	return &nhooyrWebsocketConn{conn: c}, nil
}

func (c *nhooyrWebsocketConn) close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}

func (c *nhooyrWebsocketConn) readMessage(ctx context.Context) (data []byte, err error) {
	_, data, err = c.conn.Read(ctx)
	return data, err
}

func (c *nhooyrWebsocketConn) writeMessage(ctx context.Context, data []byte) error {
	writeCtx, cancel := context.WithTimeout(ctx, writeWait)
	defer cancel()

	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
