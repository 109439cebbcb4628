package stream

import "time"

// ticker drives the engine.io pings of a connection.
type ticker interface {
	C() <-chan time.Time
	Stop()
}

// tickerCreator returns the ping ticker of a connection, given the ping
// interval the server announced in its open packet.
type tickerCreator func(interval time.Duration) ticker

type timeTicker struct {
	t *time.Ticker
}

var _ ticker = timeTicker{}

func newTimeTicker(interval time.Duration) ticker {
	if interval <= 0 {
		interval = defaultPingPeriod
	}
	return timeTicker{t: time.NewTicker(interval)}
}

func (t timeTicker) C() <-chan time.Time {
	return t.t.C
}

func (t timeTicker) Stop() {
	t.t.Stop()
}
