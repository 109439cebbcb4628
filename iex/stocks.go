package iex

import (
	"context"
	"net/url"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/iexdata/iex-api-go/iex/stock"
)

func getStock[T any](ctx context.Context, c *Client, symbol string, e stock.Endpoint, opts []RequestOption) (T, error) {
	resp, err := c.Request(ctx, symbol, e, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Convert[T](resp)
}

func getPath[T any](ctx context.Context, c *Client, path string, opts []RequestOption) (T, error) {
	return getQuery[T](ctx, c, path, nil, opts)
}

func getQuery[T any](ctx context.Context, c *Client, path string, q url.Values, opts []RequestOption) (T, error) {
	resp, err := c.Get(ctx, path, q, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return Convert[T](resp)
}

// GetBook returns the quote, IEX order book and recent trades of symbol.
func (c *Client) GetBook(ctx context.Context, symbol string, opts ...RequestOption) (*Book, error) {
	return getStock[*Book](ctx, c, symbol, stock.Book{}, opts)
}

// GetChart returns the chart of symbol over rng. params may be nil.
func (c *Client) GetChart(ctx context.Context, symbol string, rng stock.Duration, params *stock.ChartParams, opts ...RequestOption) ([]ChartBar, error) {
	return getStock[[]ChartBar](ctx, c, symbol, stock.Chart{Range: rng, Params: params}, opts)
}

// GetCompany returns the company profile of symbol.
func (c *Client) GetCompany(ctx context.Context, symbol string, opts ...RequestOption) (*Company, error) {
	return getStock[*Company](ctx, c, symbol, stock.Company{}, opts)
}

// GetDelayedQuote returns the 15 minute delayed quote of symbol.
func (c *Client) GetDelayedQuote(ctx context.Context, symbol string, opts ...RequestOption) (*DelayedQuote, error) {
	return getStock[*DelayedQuote](ctx, c, symbol, stock.DelayedQuote{}, opts)
}

// GetDividends returns the dividends of symbol over rng.
func (c *Client) GetDividends(ctx context.Context, symbol string, rng stock.Duration, opts ...RequestOption) ([]Dividend, error) {
	return getStock[[]Dividend](ctx, c, symbol, stock.Dividends{Range: rng}, opts)
}

// GetEarnings returns the last four quarters of earnings of symbol.
func (c *Client) GetEarnings(ctx context.Context, symbol string, opts ...RequestOption) (*Earnings, error) {
	return getStock[*Earnings](ctx, c, symbol, stock.Earnings{}, opts)
}

// GetEffectiveSpread returns the effective spread of symbol per venue.
func (c *Client) GetEffectiveSpread(ctx context.Context, symbol string, opts ...RequestOption) ([]EffectiveSpread, error) {
	return getStock[[]EffectiveSpread](ctx, c, symbol, stock.EffectiveSpread{}, opts)
}

// GetFinancials returns the last four quarters of financials of symbol.
func (c *Client) GetFinancials(ctx context.Context, symbol string, opts ...RequestOption) (*Financials, error) {
	return getStock[*Financials](ctx, c, symbol, stock.Financials{}, opts)
}

// GetList returns the quotes of a ranked list.
func (c *Client) GetList(ctx context.Context, category stock.ListCategory, opts ...RequestOption) ([]Quote, error) {
	return getStock[[]Quote](ctx, c, "market", stock.List{Category: category}, opts)
}

// GetLogo returns the logo of symbol.
func (c *Client) GetLogo(ctx context.Context, symbol string, opts ...RequestOption) (*Logo, error) {
	return getStock[*Logo](ctx, c, symbol, stock.Logo{}, opts)
}

// GetNews returns the news of symbol. last limits the number of items if
// it is not 0.
func (c *Client) GetNews(ctx context.Context, symbol string, last int, opts ...RequestOption) ([]NewsItem, error) {
	e := stock.News{}
	if last != 0 {
		e.Last = &last
	}
	return getStock[[]NewsItem](ctx, c, symbol, e, opts)
}

// GetOHLC returns the official open and close of symbol.
func (c *Client) GetOHLC(ctx context.Context, symbol string, opts ...RequestOption) (*OHLC, error) {
	return getStock[*OHLC](ctx, c, symbol, stock.OHLC{}, opts)
}

// GetPeers returns the peer symbols of symbol.
func (c *Client) GetPeers(ctx context.Context, symbol string, opts ...RequestOption) ([]string, error) {
	return getStock[[]string](ctx, c, symbol, stock.Peers{}, opts)
}

// GetPrevious returns the previous day adjusted price data of symbol.
func (c *Client) GetPrevious(ctx context.Context, symbol string, opts ...RequestOption) (*Previous, error) {
	return getStock[*Previous](ctx, c, symbol, stock.Previous{}, opts)
}

// GetPrice returns the last IEX price of symbol.
func (c *Client) GetPrice(ctx context.Context, symbol string, opts ...RequestOption) (decimal.Decimal, error) {
	return getStock[decimal.Decimal](ctx, c, symbol, stock.Price{}, opts)
}

// GetQuote returns the quote of symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string, opts ...RequestOption) (*Quote, error) {
	return getStock[*Quote](ctx, c, symbol, stock.Quote{}, opts)
}

// GetRelevant returns the symbols relevant to symbol.
func (c *Client) GetRelevant(ctx context.Context, symbol string, opts ...RequestOption) (*Relevant, error) {
	return getStock[*Relevant](ctx, c, symbol, stock.Relevant{}, opts)
}

// GetSplits returns the splits of symbol over rng.
func (c *Client) GetSplits(ctx context.Context, symbol string, rng stock.Duration, opts ...RequestOption) ([]Split, error) {
	return getStock[[]Split](ctx, c, symbol, stock.Splits{Range: rng}, opts)
}

// GetStats returns the key stats of symbol.
func (c *Client) GetStats(ctx context.Context, symbol string, opts ...RequestOption) (*KeyStats, error) {
	return getStock[*KeyStats](ctx, c, symbol, stock.Stats{}, opts)
}

// GetThresholdSecurities returns the Reg SHO threshold securities list of
// date, or the latest one if date is nil.
func (c *Client) GetThresholdSecurities(ctx context.Context, date *civil.Date, opts ...RequestOption) ([]ThresholdSecurity, error) {
	return getStock[[]ThresholdSecurity](ctx, c, "market", stock.ThresholdSecurities{Date: date}, opts)
}

// GetVolumeByVenue returns the delayed volume of symbol per venue.
func (c *Client) GetVolumeByVenue(ctx context.Context, symbol string, opts ...RequestOption) ([]VenueVolume, error) {
	return getStock[[]VenueVolume](ctx, c, symbol, stock.VolumeByVenue{}, opts)
}

// GetQuote returns the quote of symbol.
func GetQuote(ctx context.Context, symbol string, opts ...RequestOption) (*Quote, error) {
	return DefaultClient.GetQuote(ctx, symbol, opts...)
}

// GetChart returns the chart of symbol over rng.
func GetChart(ctx context.Context, symbol string, rng stock.Duration, params *stock.ChartParams, opts ...RequestOption) ([]ChartBar, error) {
	return DefaultClient.GetChart(ctx, symbol, rng, params, opts...)
}

// GetPrice returns the last IEX price of symbol.
func GetPrice(ctx context.Context, symbol string, opts ...RequestOption) (decimal.Decimal, error) {
	return DefaultClient.GetPrice(ctx, symbol, opts...)
}

// GetCompany returns the company profile of symbol.
func GetCompany(ctx context.Context, symbol string, opts ...RequestOption) (*Company, error) {
	return DefaultClient.GetCompany(ctx, symbol, opts...)
}
