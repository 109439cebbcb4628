package stream

import (
	"context"
	"errors"
	"sync"
)

var errClose = errors.New("closed")

type mockConn struct {
	closeCh   chan struct{}
	closeOnce sync.Once
	readCh    chan []byte
	writeCh   chan []byte
}

var _ conn = (*mockConn)(nil)

func newMockConn() *mockConn {
	return &mockConn{
		closeCh: make(chan struct{}),
		readCh:  make(chan []byte, 10),
		writeCh: make(chan []byte, 10),
	}
}

func (c *mockConn) close() error {
	c.closeOnce.Do(func() {
		close(c.closeCh)
	})
	return nil
}

func (c *mockConn) readMessage(ctx context.Context) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case data := <-c.readCh:
		return data, nil
	case <-c.closeCh:
		return nil, errClose
	}
}

func (c *mockConn) writeMessage(_ context.Context, data []byte) error {
	select {
	case <-c.closeCh:
		return errClose
	default:
	}
	c.writeCh <- data
	return nil
}
