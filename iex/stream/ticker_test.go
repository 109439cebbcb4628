package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeTicker fires only when the test calls tick. It reports the interval
// of every ticker created from it on intervals.
type fakeTicker struct {
	ch        chan time.Time
	intervals chan time.Duration
}

var _ ticker = (*fakeTicker)(nil)

func newFakeTicker() *fakeTicker {
	return &fakeTicker{
		ch:        make(chan time.Time),
		intervals: make(chan time.Duration, 4),
	}
}

func (f *fakeTicker) create(interval time.Duration) ticker {
	select {
	case f.intervals <- interval:
	default:
	}
	return f
}

func (f *fakeTicker) C() <-chan time.Time {
	return f.ch
}

func (f *fakeTicker) Stop() {
}

func (f *fakeTicker) tick() {
	f.ch <- time.Now()
}

func TestTimeTickerFires(t *testing.T) {
	tk := newTimeTicker(time.Millisecond)
	defer tk.Stop()
	select {
	case <-tk.C():
	case <-time.After(time.Second):
		require.Fail(t, "ticker did not fire")
	}
}

func TestTimeTickerNonPositiveInterval(t *testing.T) {
	require.NotPanics(t, func() {
		newTimeTicker(0).Stop()
		newTimeTicker(-time.Second).Stop()
	})
}
