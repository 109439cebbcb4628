package stream

import "errors"

var (
	// ErrConnectCalledMultipleTimes is returned when Connect has been called multiple times on a single client
	ErrConnectCalledMultipleTimes = errors.New("tried to call Connect multiple times")
	// ErrNoOpen is returned when the server did not start the session with
	// an open packet
	ErrNoOpen = errors.New("did not receive open packet")
	// ErrNamespaceRejected is returned when the server answered the namespace
	// connect with an error packet
	ErrNamespaceRejected = errors.New("namespace connect rejected")
	// ErrSubscriptionChangeBeforeConnect is returned when the client attempts to change subscriptions before
	// calling Connect
	ErrSubscriptionChangeBeforeConnect = errors.New("subscription change attempted before calling Connect")
	// ErrSubscriptionChangeAfterTerminated is returned when client attempts to change subscriptions after
	// the client has been terminated
	ErrSubscriptionChangeAfterTerminated = errors.New("subscription change after client termination")
	// ErrSubscriptionBufferFull is returned when subscription changes are
	// requested faster than they can be written
	ErrSubscriptionBufferFull = errors.New("subscription change buffer full")
)
