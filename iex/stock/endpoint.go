// Package stock describes the products of the /stock/{symbol} family of
// the IEX API and encodes them into request paths.
package stock

import (
	"fmt"
	"net/url"
	"strconv"

	"cloud.google.com/go/civil"
)

// Duration is the lookback window of the chart, dividends and splits
// endpoints. The zero value leaves the choice to the service, which
// currently defaults to one month.
type Duration struct {
	token string
}

func (d Duration) String() string {
	return d.token
}

// List of durations
var (
	FiveYears   = Duration{"5y"}
	TwoYears    = Duration{"2y"}
	OneYear     = Duration{"1y"}
	YearToDate  = Duration{"ytd"}
	SixMonths   = Duration{"6m"}
	ThreeMonths = Duration{"3m"}
	OneMonth    = Duration{"1m"}
	OneDay      = Duration{"1d"}
)

// ParseDuration returns the duration of token, e.g. "1m" or "ytd". An
// empty token yields the zero Duration.
func ParseDuration(token string) (Duration, error) {
	if token == "" {
		return Duration{}, nil
	}
	for _, d := range []Duration{FiveYears, TwoYears, OneYear, YearToDate, SixMonths, ThreeMonths, OneMonth, OneDay} {
		if d.token == token {
			return d, nil
		}
	}
	return Duration{}, fmt.Errorf("unknown duration %q", token)
}

// ListCategory selects one of the ranked lists. The zero value is MostActive.
type ListCategory struct {
	token string
}

func (c ListCategory) String() string {
	if c.token == "" {
		return MostActive.token
	}
	return c.token
}

// List of list categories
var (
	MostActive = ListCategory{"mostactive"}
	Gainers    = ListCategory{"gainers"}
	Losers     = ListCategory{"losers"}
	IEXVolume  = ListCategory{"iexvolume"}
	IEXPercent = ListCategory{"iexpercent"}
	InFocus    = ListCategory{"infocus"}
)

// ParseListCategory returns the category of token, e.g. "gainers". An
// empty token yields MostActive.
func ParseListCategory(token string) (ListCategory, error) {
	if token == "" {
		return MostActive, nil
	}
	for _, c := range []ListCategory{MostActive, Gainers, Losers, IEXVolume, IEXPercent, InFocus} {
		if c.token == token {
			return c, nil
		}
	}
	return ListCategory{}, fmt.Errorf("unknown list category %q", token)
}

// ChartParams contains optional parameters of the chart endpoint.
// Unset members are not sent.
type ChartParams struct {
	// Reset resets the 1d chart at midnight instead of 9:30 a.m. ET.
	Reset bool
	// Simplify runs a polyline simplification on the returned points.
	Simplify bool
	// ChangeFromClose makes changeOverTime relative to the previous close.
	ChangeFromClose bool
	// Interval returns every nth element.
	Interval int
	// Last returns only the last n elements.
	Last int
}

func (p *ChartParams) values(q url.Values) {
	if p == nil {
		return
	}
	if p.Reset {
		q.Set("chartReset", "true")
	}
	if p.Simplify {
		q.Set("chartSimplify", "true")
	}
	if p.ChangeFromClose {
		q.Set("changeFromClose", "true")
	}
	if p.Interval != 0 {
		q.Set("chartInterval", strconv.Itoa(p.Interval))
	}
	if p.Last != 0 {
		q.Set("chartLast", strconv.Itoa(p.Last))
	}
}

// Endpoint is one of the products of the /stock/{symbol} family.
// The set of implementations is closed: Book, Chart, Company, DelayedQuote,
// Dividends, Earnings, EffectiveSpread, Financials, List, Logo, News, OHLC,
// Peers, Previous, Price, Quote, Relevant, Splits, Stats,
// ThresholdSecurities and VolumeByVenue.
type Endpoint interface {
	// segment returns the path below /stock/{symbol}/ and adds the
	// endpoint's query parameters to q.
	segment(q url.Values) string
}

type (
	// Book is the quote plus the IEX bids, asks and trades of a symbol.
	Book struct{}
	// Chart is the historical or intraday price series of a symbol.
	Chart struct {
		Range  Duration
		Params *ChartParams
	}
	// Company is the company profile.
	Company struct{}
	// DelayedQuote is the 15 minute delayed market quote.
	DelayedQuote struct{}
	// Dividends is the dividend history over Range.
	Dividends struct {
		Range Duration
	}
	// Earnings is the last four quarters of earnings.
	Earnings struct{}
	// EffectiveSpread is the per-venue effective spread.
	EffectiveSpread struct{}
	// Financials is the last four quarters of income statement,
	// balance sheet and cash flow data.
	Financials struct{}
	// List is a ranked list of quotes; request it with the "market" symbol.
	List struct {
		Category ListCategory
	}
	// Logo is the company logo URL.
	Logo struct{}
	// News is the latest news. Last limits the number of items (1-50).
	News struct {
		Last *int
	}
	// OHLC is the official open and close.
	OHLC struct{}
	// Peers is the list of peer symbols.
	Peers struct{}
	// Previous is the previous day adjusted price data.
	Previous struct{}
	// Price is the last IEX price.
	Price struct{}
	// Quote is the market quote.
	Quote struct{}
	// Relevant is the list of symbols relevant to the given one.
	Relevant struct{}
	// Splits is the split history over Range.
	Splits struct {
		Range Duration
	}
	// Stats is the key stats.
	Stats struct{}
	// ThresholdSecurities is the IEX-listed Reg SHO threshold list; request
	// it with the "market" symbol. A nil Date yields the latest list.
	ThresholdSecurities struct {
		Date *civil.Date
	}
	// VolumeByVenue is the 15 minute delayed volume per venue.
	VolumeByVenue struct{}
)

func (Book) segment(url.Values) string            { return "book" }
func (Company) segment(url.Values) string         { return "company" }
func (DelayedQuote) segment(url.Values) string    { return "delayed-quote" }
func (Earnings) segment(url.Values) string        { return "earnings" }
func (EffectiveSpread) segment(url.Values) string { return "effective-spread" }
func (Financials) segment(url.Values) string      { return "financials" }
func (Logo) segment(url.Values) string            { return "logo" }
func (OHLC) segment(url.Values) string            { return "ohlc" }
func (Peers) segment(url.Values) string           { return "peers" }
func (Previous) segment(url.Values) string        { return "previous" }
func (Price) segment(url.Values) string           { return "price" }
func (Quote) segment(url.Values) string           { return "quote" }
func (Relevant) segment(url.Values) string        { return "relevant" }
func (Stats) segment(url.Values) string           { return "stats" }
func (VolumeByVenue) segment(url.Values) string   { return "volume-by-venue" }

func (e Chart) segment(q url.Values) string {
	e.Params.values(q)
	return withRange("chart", e.Range)
}

func (e Dividends) segment(url.Values) string {
	return withRange("dividends", e.Range)
}

func (e Splits) segment(url.Values) string {
	return withRange("splits", e.Range)
}

func (e List) segment(url.Values) string {
	return "list/" + e.Category.String()
}

func (e News) segment(q url.Values) string {
	if e.Last != nil {
		q.Set("last", strconv.Itoa(*e.Last))
	}
	return "news"
}

func (e ThresholdSecurities) segment(url.Values) string {
	if e.Date == nil {
		return "threshold-securities"
	}
	return "threshold-securities/" + FormatDate(*e.Date)
}

func withRange(segment string, d Duration) string {
	if d.token == "" {
		return segment
	}
	return segment + "/" + d.token
}

// FormatDate formats d the way the service expects dates in paths and
// query parameters: YYYYMMDD.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// Encode returns the path and query parameters of e for symbol. The
// symbol is used verbatim. Encode has no side effects: the same arguments
// always yield the same result.
func Encode(e Endpoint, symbol string) (string, url.Values) {
	q := url.Values{}
	segment := e.segment(q)
	return fmt.Sprintf("/stock/%s/%s", symbol, segment), q
}
