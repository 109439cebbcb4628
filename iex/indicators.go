package iex

import (
	"context"
	"fmt"

	movingaverage "github.com/RobinUS2/golang-moving-average"

	"github.com/iexdata/iex-api-go/iex/stock"
)

// TechnicalIndicators can be used to calculate technical indicators from
// daily chart bars.
type TechnicalIndicators interface {
	// ADTV calculates the average daily trading volume.
	ADTV(ctx context.Context, symbol string, rng stock.Duration) (*ADTV, error)
	// SMA calculates the simple moving average of closing prices.
	SMA(ctx context.Context, symbol string, rng stock.Duration, window int) ([]float64, error)
}

type indicators struct {
	// mockable functions
	getChart func(ctx context.Context, symbol string, rng stock.Duration) ([]ChartBar, error)
}

type IndicatorsOpts struct {
	Client *Client
}

func NewIndicators(opts IndicatorsOpts) TechnicalIndicators {
	c := opts.Client
	if c == nil {
		c = DefaultClient
	}
	return &indicators{
		getChart: func(ctx context.Context, symbol string, rng stock.Duration) ([]ChartBar, error) {
			return c.GetChart(ctx, symbol, rng, nil)
		},
	}
}

// Indicators can be used to query technical indicators using the default client.
var Indicators = NewIndicators(IndicatorsOpts{})

// ADTV calculates the average daily trading volume over rng.
func (i *indicators) ADTV(ctx context.Context, symbol string, rng stock.Duration) (*ADTV, error) {
	bars, err := i.getChart(ctx, symbol, rng)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return &ADTV{}, nil
	}
	var totalVolume int64
	for _, bar := range bars {
		totalVolume += bar.Volume
	}
	return &ADTV{
		AverageVolume: float64(totalVolume) / float64(len(bars)),
		Days:          len(bars),
	}, nil
}

// SMA returns the average closing price of every full window of bars over
// rng, oldest first. It is empty when rng holds fewer than window bars.
func (i *indicators) SMA(ctx context.Context, symbol string, rng stock.Duration, window int) ([]float64, error) {
	if window <= 0 {
		return nil, fmt.Errorf("iex: invalid SMA window %d", window)
	}
	bars, err := i.getChart(ctx, symbol, rng)
	if err != nil {
		return nil, err
	}
	ma := movingaverage.New(window)
	var out []float64
	for n, bar := range bars {
		ma.Add(bar.Close)
		if n+1 >= window {
			out = append(out, ma.Avg())
		}
	}
	return out, nil
}

// ADTV is the average daily trading volume. It also contains the number of trading days
// the average contains.
type ADTV struct {
	AverageVolume float64
	Days          int
}
