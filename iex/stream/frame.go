package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// frameKind is the engine.io packet type, or for engine.io messages the
// socket.io packet type carried by them.
type frameKind int

const (
	frameOpen frameKind = iota
	frameClose
	framePing
	framePong
	frameNoop
	frameConnect
	frameDisconnect
	frameEvent
	frameAck
	frameError
)

// frame is a decoded engine.io v3 text packet.
type frame struct {
	kind      frameKind
	namespace string
	data      []byte
}

var (
	pingFrame = []byte("2")
	pongFrame = []byte("3")
)

var errEmptyFrame = errors.New("empty frame")

func parseFrame(b []byte) (frame, error) {
	if len(b) == 0 {
		return frame{}, errEmptyFrame
	}
	rest := b[1:]
	switch b[0] {
	case '0':
		return frame{kind: frameOpen, data: rest}, nil
	case '1':
		return frame{kind: frameClose}, nil
	case '2':
		return frame{kind: framePing, data: rest}, nil
	case '3':
		return frame{kind: framePong, data: rest}, nil
	case '6':
		return frame{kind: frameNoop}, nil
	case '4':
		return parseSocketPacket(rest)
	}
	return frame{}, fmt.Errorf("unknown engine.io packet type %q", b[0])
}

func parseSocketPacket(b []byte) (frame, error) {
	if len(b) == 0 {
		return frame{}, errEmptyFrame
	}
	var f frame
	switch b[0] {
	case '0':
		f.kind = frameConnect
	case '1':
		f.kind = frameDisconnect
	case '2':
		f.kind = frameEvent
	case '3':
		f.kind = frameAck
	case '4':
		f.kind = frameError
	default:
		return frame{}, fmt.Errorf("unknown socket.io packet type %q", b[0])
	}
	b = b[1:]
	f.namespace = "/"
	if len(b) > 0 && b[0] == '/' {
		end := strings.IndexByte(string(b), ',')
		if end < 0 {
			f.namespace = string(b)
			return f, nil
		}
		f.namespace = string(b[:end])
		b = b[end+1:]
	}
	// skip the ack id
	for len(b) > 0 && b[0] >= '0' && b[0] <= '9' {
		b = b[1:]
	}
	f.data = b
	return f, nil
}

// pingInterval returns the interval announced by an open packet.
func (f frame) pingInterval() time.Duration {
	var handshake struct {
		PingInterval int64 `json:"pingInterval"`
	}
	if err := json.Unmarshal(f.data, &handshake); err != nil || handshake.PingInterval <= 0 {
		return defaultPingPeriod
	}
	return time.Duration(handshake.PingInterval) * time.Millisecond
}

// event returns the name and the first argument of an event packet. A
// string argument is unquoted, as the feed sends its JSON messages as
// strings.
func (f frame) event() (string, []byte, error) {
	var args []json.RawMessage
	if err := json.Unmarshal(f.data, &args); err != nil {
		return "", nil, fmt.Errorf("invalid event payload: %w", err)
	}
	if len(args) == 0 {
		return "", nil, errors.New("event without name")
	}
	var name string
	if err := json.Unmarshal(args[0], &name); err != nil {
		return "", nil, fmt.Errorf("invalid event name: %w", err)
	}
	if len(args) < 2 {
		return name, nil, nil
	}
	arg := []byte(args[1])
	if len(arg) > 0 && arg[0] == '"' {
		var s string
		if err := json.Unmarshal(arg, &s); err != nil {
			return "", nil, err
		}
		arg = []byte(s)
	}
	return name, arg, nil
}

func connectFrame(namespace string) []byte {
	return []byte("40" + namespace + ",")
}

func eventFrame(namespace, name, arg string) ([]byte, error) {
	payload, err := json.Marshal([]string{name, arg})
	if err != nil {
		return nil, err
	}
	return append([]byte("42"+namespace+","), payload...), nil
}
