package iex

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iexdata/iex-api-go/iex/stock"
)

func TestADTV(t *testing.T) {
	ind := NewIndicators(IndicatorsOpts{}).(*indicators)
	ind.getChart = func(_ context.Context, symbol string, rng stock.Duration) ([]ChartBar, error) {
		assert.Equal(t, "aapl", symbol)
		assert.Equal(t, stock.OneMonth, rng)
		return []ChartBar{{Volume: 1}, {Volume: 5}, {Volume: 4}, {Volume: 9}}, nil
	}
	got, err := ind.ADTV(context.Background(), "aapl", stock.OneMonth)
	require.NoError(t, err)
	assert.EqualValues(t, 4, got.Days)
	assert.EqualValues(t, 4.75, got.AverageVolume)

	t.Run("no bars", func(t *testing.T) {
		ind.getChart = func(context.Context, string, stock.Duration) ([]ChartBar, error) {
			return nil, nil
		}
		got, err := ind.ADTV(context.Background(), "msft", stock.OneMonth)
		assert.NoError(t, err)
		assert.EqualValues(t, 0, got.Days)
		assert.EqualValues(t, 0, got.AverageVolume)
	})

	t.Run("error", func(t *testing.T) {
		ind.getChart = func(context.Context, string, stock.Duration) ([]ChartBar, error) {
			return nil, errors.New("something went wrong")
		}
		got, err := ind.ADTV(context.Background(), "ibm", stock.OneMonth)
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestSMA(t *testing.T) {
	ind := NewIndicators(IndicatorsOpts{}).(*indicators)
	ind.getChart = func(context.Context, string, stock.Duration) ([]ChartBar, error) {
		return []ChartBar{{Close: 1}, {Close: 2}, {Close: 3}, {Close: 4}, {Close: 5}}, nil
	}
	got, err := ind.SMA(context.Background(), "aapl", stock.ThreeMonths, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, 4}, got, 1e-9)

	got, err = ind.SMA(context.Background(), "aapl", stock.ThreeMonths, 10)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ind.SMA(context.Background(), "aapl", stock.ThreeMonths, 0)
	assert.Error(t, err)
}
