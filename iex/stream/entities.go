package stream

import "encoding/json"

// Channel is one of the socket.io namespaces of the feed.
type Channel struct {
	token string
}

func (c Channel) String() string {
	return c.token
}

// List of channels
var (
	// TOPSChannel streams top of book quotes and last sales.
	TOPSChannel = Channel{"tops"}
	// LastChannel streams last sales only.
	LastChannel = Channel{"last"}
	// DEEPChannel streams depth of book messages.
	DEEPChannel = Channel{"deep"}
)

// DeepMessage is a message of the DEEP channel. Data holds the message
// body, whose shape depends on MessageType (e.g. "book", "trades",
// "auction"). Decode it with iex.NewResponse and iex.Convert.
type DeepMessage struct {
	Symbol      string          `json:"symbol"`
	MessageType string          `json:"messageType"`
	Data        json.RawMessage `json:"data"`
	SeqNumber   int64           `json:"seq"`
}

// deepSubscription is the argument of a DEEP subscribe event.
type deepSubscription struct {
	Symbols  []string `json:"symbols"`
	Channels []string `json:"channels"`
}
