package iex

import (
	"context"
	"net/url"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/iexdata/iex-api-go/iex/stock"
)

//go:generate easyjson -all -lower_camel_case $GOFILE

// TOPS is the top of the IEX book of a symbol.
type TOPS struct {
	Symbol        string  `json:"symbol"`
	MarketPercent float64 `json:"marketPercent"`
	BidSize       int64   `json:"bidSize"`
	BidPrice      float64 `json:"bidPrice"`
	AskSize       int64   `json:"askSize"`
	AskPrice      float64 `json:"askPrice"`
	Volume        int64   `json:"volume"`
	LastSalePrice float64 `json:"lastSalePrice"`
	LastSaleSize  int64   `json:"lastSaleSize"`
	LastSaleTime  int64   `json:"lastSaleTime"`
	LastUpdated   int64   `json:"lastUpdated"`
	Sector        string  `json:"sector"`
	SecurityType  string  `json:"securityType"`
}

// LastSale is the last trade of a symbol on IEX.
type LastSale struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
	Size   int64   `json:"size"`
	Time   int64   `json:"time"`
}

// PriceLevel is the aggregated size resting at a price on one side of the
// book.
type PriceLevel struct {
	Price     float64 `json:"price"`
	Size      int64   `json:"size"`
	Timestamp int64   `json:"timestamp"`
}

// DeepTrade is a trade or trade break reported by DEEP.
type DeepTrade struct {
	Price                 float64 `json:"price"`
	Size                  int64   `json:"size"`
	TradeID               int64   `json:"tradeId"`
	IsISO                 bool    `json:"isISO"`
	IsOddLot              bool    `json:"isOddLot"`
	IsOutsideRegularHours bool    `json:"isOutsideRegularHours"`
	IsSinglePriceCross    bool    `json:"isSinglePriceCross"`
	IsTradeThroughExempt  bool    `json:"isTradeThroughExempt"`
	Timestamp             int64   `json:"timestamp"`
}

// SystemEvent is an IEX system event, e.g. "O" for start of messages or
// "R" for start of regular market hours.
type SystemEvent struct {
	SystemEvent string `json:"systemEvent"`
	Timestamp   int64  `json:"timestamp"`
}

// TradingStatus is the trading status of a security on IEX. Status is "H"
// (halted), "O" (order acceptance period), "P" (paused) or "T" (trading).
type TradingStatus struct {
	Status    string `json:"status"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// OperationalHaltStatus tells whether IEX halted trading of a security.
type OperationalHaltStatus struct {
	IsHalted  bool  `json:"isHalted"`
	Timestamp int64 `json:"timestamp"`
}

// ShortSalePriceTestStatus tells whether Reg SHO short sale restrictions
// are in effect for a security.
type ShortSalePriceTestStatus struct {
	IsSSR     bool   `json:"isSSR"`
	Detail    string `json:"detail"`
	Timestamp int64  `json:"timestamp"`
}

// SecurityEvent is a security event, "MarketOpen" or "MarketClose".
type SecurityEvent struct {
	SecurityEvent string `json:"securityEvent"`
	Timestamp     int64  `json:"timestamp"`
}

// Auction is the auction information of an IEX listed security. Collar
// prices are 0 when no collar applies.
type Auction struct {
	// AuctionType is one of Open, Close, Halt, Volatility and IPO.
	AuctionType          string  `json:"auctionType"`
	PairedShares         int64   `json:"pairedShares"`
	ImbalanceShares      int64   `json:"imbalanceShares"`
	ImbalanceSide        string  `json:"imbalanceSide"`
	ReferencePrice       float64 `json:"referencePrice"`
	IndicativePrice      float64 `json:"indicativePrice"`
	AuctionBookPrice     float64 `json:"auctionBookPrice"`
	CollarReferencePrice float64 `json:"collarReferencePrice"`
	LowerCollarPrice     float64 `json:"lowerCollarPrice"`
	UpperCollarPrice     float64 `json:"upperCollarPrice"`
	ExtensionNumber      int64   `json:"extensionNumber"`
	// StartTime is the projected time of the auction match, in
	// milliseconds since the epoch.
	StartTime int64 `json:"startTime"`
	Timestamp int64 `json:"timestamp"`
}

// OfficialPrice is the IEX official opening ("Q") or closing ("M") price.
type OfficialPrice struct {
	PriceType string  `json:"priceType"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"`
}

// DeepBook is the IEX order book of a symbol.
type DeepBook struct {
	Bids []PriceLevel `json:"bids"`
	Asks []PriceLevel `json:"asks"`
}

// DEEP is the full depth of book of a symbol together with its latest
// status messages.
type DEEP struct {
	Symbol        string                   `json:"symbol"`
	MarketPercent float64                  `json:"marketPercent"`
	Volume        int64                    `json:"volume"`
	LastSalePrice float64                  `json:"lastSalePrice"`
	LastSaleSize  int64                    `json:"lastSaleSize"`
	LastSaleTime  int64                    `json:"lastSaleTime"`
	LastUpdated   int64                    `json:"lastUpdated"`
	Bids          []PriceLevel             `json:"bids"`
	Asks          []PriceLevel             `json:"asks"`
	SystemEvent   SystemEvent              `json:"systemEvent"`
	TradingStatus TradingStatus            `json:"tradingStatus"`
	OpHaltStatus  OperationalHaltStatus    `json:"opHaltStatus"`
	SSRStatus     ShortSalePriceTestStatus `json:"ssrStatus"`
	SecurityEvent SecurityEvent            `json:"securityEvent"`
	Trades        []DeepTrade              `json:"trades"`
	TradeBreaks   []DeepTrade              `json:"tradeBreaks"`
}

func symbolsQuery(symbols []string) url.Values {
	q := url.Values{}
	if len(symbols) > 0 {
		q.Set("symbols", strings.Join(symbols, ","))
	}
	return q
}

// GetTOPS returns the top of book of symbols, or of every symbol when none
// is given.
func (c *Client) GetTOPS(ctx context.Context, symbols []string, opts ...RequestOption) ([]TOPS, error) {
	return getQuery[[]TOPS](ctx, c, "/tops", symbolsQuery(symbols), opts)
}

// GetLast returns the last sale of symbols, or of every symbol when none
// is given.
func (c *Client) GetLast(ctx context.Context, symbols []string, opts ...RequestOption) ([]LastSale, error) {
	return getQuery[[]LastSale](ctx, c, "/tops/last", symbolsQuery(symbols), opts)
}

// GetHIST returns the links to the historical data files of date, or of
// every available date when date is nil. The shape of the payload depends
// on the date, so it is returned unconverted.
func (c *Client) GetHIST(ctx context.Context, date *civil.Date, opts ...RequestOption) (*Response, error) {
	q := url.Values{}
	if date != nil {
		q.Set("date", stock.FormatDate(*date))
	}
	return c.Get(ctx, "/hist", q, opts...)
}

// GetDEEP returns the depth of book of symbol.
func (c *Client) GetDEEP(ctx context.Context, symbol string, opts ...RequestOption) (*DEEP, error) {
	return getQuery[*DEEP](ctx, c, "/deep", symbolsQuery([]string{symbol}), opts)
}

// GetDeepBook returns the order books of symbols, keyed by symbol.
func (c *Client) GetDeepBook(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]DeepBook, error) {
	return getQuery[map[string]DeepBook](ctx, c, "/deep/book", symbolsQuery(symbols), opts)
}

// GetTrades returns the recent trades of symbols, keyed by symbol.
func (c *Client) GetTrades(ctx context.Context, symbols []string, opts ...RequestOption) (map[string][]DeepTrade, error) {
	return getQuery[map[string][]DeepTrade](ctx, c, "/deep/trades", symbolsQuery(symbols), opts)
}

// GetSystemEvent returns the latest IEX system event.
func (c *Client) GetSystemEvent(ctx context.Context, opts ...RequestOption) (*SystemEvent, error) {
	return getPath[*SystemEvent](ctx, c, "/deep/system-event", opts)
}

// GetTradingStatus returns the trading status of symbols, keyed by symbol.
func (c *Client) GetTradingStatus(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]TradingStatus, error) {
	return getQuery[map[string]TradingStatus](ctx, c, "/deep/trading-status", symbolsQuery(symbols), opts)
}

// GetOperationalHaltStatus returns the operational halt status of symbols,
// keyed by symbol.
func (c *Client) GetOperationalHaltStatus(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]OperationalHaltStatus, error) {
	return getQuery[map[string]OperationalHaltStatus](ctx, c, "/deep/op-halt-status", symbolsQuery(symbols), opts)
}

// GetShortSalePriceTestStatus returns the short sale price test status of
// symbols, keyed by symbol.
func (c *Client) GetShortSalePriceTestStatus(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]ShortSalePriceTestStatus, error) {
	return getQuery[map[string]ShortSalePriceTestStatus](ctx, c, "/deep/ssr-status", symbolsQuery(symbols), opts)
}

// GetSecurityEvent returns the latest security event of symbols, keyed by
// symbol.
func (c *Client) GetSecurityEvent(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]SecurityEvent, error) {
	return getQuery[map[string]SecurityEvent](ctx, c, "/deep/security-event", symbolsQuery(symbols), opts)
}

// GetTradeBreaks returns the trade breaks of symbols, keyed by symbol.
func (c *Client) GetTradeBreaks(ctx context.Context, symbols []string, opts ...RequestOption) (map[string][]DeepTrade, error) {
	return getQuery[map[string][]DeepTrade](ctx, c, "/deep/trade-breaks", symbolsQuery(symbols), opts)
}

// GetAuction returns the auction information of symbols, keyed by symbol.
func (c *Client) GetAuction(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]Auction, error) {
	return getQuery[map[string]Auction](ctx, c, "/deep/auction", symbolsQuery(symbols), opts)
}

// GetOfficialPrice returns the official opening and closing prices of
// symbols, keyed by symbol.
func (c *Client) GetOfficialPrice(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]OfficialPrice, error) {
	return getQuery[map[string]OfficialPrice](ctx, c, "/deep/official-price", symbolsQuery(symbols), opts)
}

// GetTOPS returns the top of book of symbols.
func GetTOPS(ctx context.Context, symbols []string, opts ...RequestOption) ([]TOPS, error) {
	return DefaultClient.GetTOPS(ctx, symbols, opts...)
}

// GetAuction returns the auction information of symbols.
func GetAuction(ctx context.Context, symbols []string, opts ...RequestOption) (map[string]Auction, error) {
	return DefaultClient.GetAuction(ctx, symbols, opts...)
}
