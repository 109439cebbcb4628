package iex

import (
	"github.com/shopspring/decimal"
	// Required for easyjson generation
	_ "github.com/mailru/easyjson/gen"
)

//go:generate go install github.com/mailru/easyjson/...@v0.7.7
//go:generate easyjson -all -lower_camel_case $GOFILE

// Quote is the market quote of a symbol. Prices the service does not know
// (e.g. outside of trading hours) decode as 0.
type Quote struct {
	Symbol                string  `json:"symbol"`
	CompanyName           string  `json:"companyName"`
	PrimaryExchange       string  `json:"primaryExchange"`
	Sector                string  `json:"sector"`
	CalculationPrice      string  `json:"calculationPrice"`
	Open                  float64 `json:"open"`
	OpenTime              int64   `json:"openTime"`
	Close                 float64 `json:"close"`
	CloseTime             int64   `json:"closeTime"`
	High                  float64 `json:"high"`
	Low                   float64 `json:"low"`
	LatestPrice           float64 `json:"latestPrice"`
	LatestSource          string  `json:"latestSource"`
	LatestTime            string  `json:"latestTime"`
	LatestUpdate          int64   `json:"latestUpdate"`
	LatestVolume          int64   `json:"latestVolume"`
	IEXRealtimePrice      float64 `json:"iexRealtimePrice"`
	IEXRealtimeSize       int64   `json:"iexRealtimeSize"`
	IEXLastUpdated        int64   `json:"iexLastUpdated"`
	DelayedPrice          float64 `json:"delayedPrice"`
	DelayedPriceTime      int64   `json:"delayedPriceTime"`
	ExtendedPrice         float64 `json:"extendedPrice"`
	ExtendedChange        float64 `json:"extendedChange"`
	ExtendedChangePercent float64 `json:"extendedChangePercent"`
	ExtendedPriceTime     int64   `json:"extendedPriceTime"`
	PreviousClose         float64 `json:"previousClose"`
	Change                float64 `json:"change"`
	ChangePercent         float64 `json:"changePercent"`
	IEXMarketPercent      float64 `json:"iexMarketPercent"`
	IEXVolume             int64   `json:"iexVolume"`
	AvgTotalVolume        int64   `json:"avgTotalVolume"`
	IEXBidPrice           float64 `json:"iexBidPrice"`
	IEXBidSize            int64   `json:"iexBidSize"`
	IEXAskPrice           float64 `json:"iexAskPrice"`
	IEXAskSize            int64   `json:"iexAskSize"`
	MarketCap             int64   `json:"marketCap"`
	PERatio               float64 `json:"peRatio"`
	Week52High            float64 `json:"week52High"`
	Week52Low             float64 `json:"week52Low"`
	YTDChange             float64 `json:"ytdChange"`
}

// Book is the quote of a symbol together with its IEX order book and
// recent trades.
type Book struct {
	Quote       Quote        `json:"quote"`
	Bids        []PriceLevel `json:"bids"`
	Asks        []PriceLevel `json:"asks"`
	Trades      []DeepTrade  `json:"trades"`
	SystemEvent SystemEvent  `json:"systemEvent"`
}

// ChartBar is a single point of a chart. Daily charts fill the daily
// fields; the 1d chart fills Minute, Label and the market* fields.
type ChartBar struct {
	// Date is "2006-01-02" for daily bars and "20060102" for minute bars.
	Date                 string  `json:"date"`
	Minute               string  `json:"minute"`
	Label                string  `json:"label"`
	Open                 float64 `json:"open"`
	High                 float64 `json:"high"`
	Low                  float64 `json:"low"`
	Close                float64 `json:"close"`
	Average              float64 `json:"average"`
	Volume               int64   `json:"volume"`
	UnadjustedVolume     int64   `json:"unadjustedVolume"`
	Notional             float64 `json:"notional"`
	NumberOfTrades       int64   `json:"numberOfTrades"`
	MarketHigh           float64 `json:"marketHigh"`
	MarketLow            float64 `json:"marketLow"`
	MarketAverage        float64 `json:"marketAverage"`
	MarketVolume         int64   `json:"marketVolume"`
	MarketNotional       float64 `json:"marketNotional"`
	MarketNumberOfTrades int64   `json:"marketNumberOfTrades"`
	Change               float64 `json:"change"`
	ChangePercent        float64 `json:"changePercent"`
	ChangeOverTime       float64 `json:"changeOverTime"`
	MarketChangeOverTime float64 `json:"marketChangeOverTime"`
	VWAP                 float64 `json:"vwap"`
}

// Company is the company profile of a symbol.
type Company struct {
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"companyName"`
	Exchange    string    `json:"exchange"`
	Industry    string    `json:"industry"`
	Website     string    `json:"website"`
	Description string    `json:"description"`
	CEO         string    `json:"CEO"`
	IssueType   IssueType `json:"issueType"`
	Sector      string    `json:"sector"`
	Tags        []string  `json:"tags"`
}

// DelayedQuote is the 15 minute delayed quote of a symbol.
type DelayedQuote struct {
	Symbol           string  `json:"symbol"`
	DelayedPrice     float64 `json:"delayedPrice"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	DelayedSize      int64   `json:"delayedSize"`
	DelayedPriceTime int64   `json:"delayedPriceTime"`
	ProcessedTime    int64   `json:"processedTime"`
}

// Dividend is a single dividend payment. Dates are "2006-01-02" and may be
// empty when not yet declared.
type Dividend struct {
	ExDate       string          `json:"exDate"`
	PaymentDate  string          `json:"paymentDate"`
	RecordDate   string          `json:"recordDate"`
	DeclaredDate string          `json:"declaredDate"`
	Amount       decimal.Decimal `json:"amount"`
	Flag         string          `json:"flag"`
	Type         string          `json:"type"`
	Qualified    string          `json:"qualified"`
	Indicated    string          `json:"indicated"`
}

// Earnings is the last four quarters of earnings of a symbol.
type Earnings struct {
	Symbol   string    `json:"symbol"`
	Earnings []Earning `json:"earnings"`
}

// Earning is a single quarter of earnings.
type Earning struct {
	ActualEPS              float64 `json:"actualEPS"`
	ConsensusEPS           float64 `json:"consensusEPS"`
	EstimatedEPS           float64 `json:"estimatedEPS"`
	AnnounceTime           string  `json:"announceTime"`
	NumberOfEstimates      int64   `json:"numberOfEstimates"`
	EPSSurpriseDollar      float64 `json:"EPSSurpriseDollar"`
	EPSReportDate          string  `json:"EPSReportDate"`
	FiscalPeriod           string  `json:"fiscalPeriod"`
	FiscalEndDate          string  `json:"fiscalEndDate"`
	YearAgo                float64 `json:"yearAgo"`
	YearAgoChangePercent   float64 `json:"yearAgoChangePercent"`
	EstimatedChangePercent float64 `json:"estimatedChangePercent"`
	SymbolID               int64   `json:"symbolId"`
}

// EffectiveSpread is the effective spread of a symbol on a single venue.
type EffectiveSpread struct {
	Volume           int64   `json:"volume"`
	Venue            string  `json:"venue"`
	VenueName        string  `json:"venueName"`
	EffectiveSpread  float64 `json:"effectiveSpread"`
	EffectiveQuoted  float64 `json:"effectiveQuoted"`
	PriceImprovement float64 `json:"priceImprovement"`
}

// Financials is the last four quarters of financial data of a symbol.
type Financials struct {
	Symbol     string      `json:"symbol"`
	Financials []Financial `json:"financials"`
}

// Financial is a single quarter of financial data.
type Financial struct {
	ReportDate             string  `json:"reportDate"`
	GrossProfit            float64 `json:"grossProfit"`
	CostOfRevenue          float64 `json:"costOfRevenue"`
	OperatingRevenue       float64 `json:"operatingRevenue"`
	TotalRevenue           float64 `json:"totalRevenue"`
	OperatingIncome        float64 `json:"operatingIncome"`
	NetIncome              float64 `json:"netIncome"`
	ResearchAndDevelopment float64 `json:"researchAndDevelopment"`
	OperatingExpense       float64 `json:"operatingExpense"`
	CurrentAssets          float64 `json:"currentAssets"`
	TotalAssets            float64 `json:"totalAssets"`
	TotalLiabilities       float64 `json:"totalLiabilities"`
	CurrentCash            float64 `json:"currentCash"`
	CurrentDebt            float64 `json:"currentDebt"`
	TotalCash              float64 `json:"totalCash"`
	TotalDebt              float64 `json:"totalDebt"`
	ShareholderEquity      float64 `json:"shareholderEquity"`
	CashChange             float64 `json:"cashChange"`
	CashFlow               float64 `json:"cashFlow"`
	OperatingGainsLosses   float64 `json:"operatingGainsLosses"`
}

// Logo points to the company logo.
type Logo struct {
	URL string `json:"url"`
}

// NewsItem is a single news article. Related is a comma-delimited list of
// symbols.
type NewsItem struct {
	Datetime string `json:"datetime"`
	Headline string `json:"headline"`
	Source   string `json:"source"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
	Related  string `json:"related"`
	Image    string `json:"image"`
}

// OHLC is the official open and close of a symbol.
type OHLC struct {
	Open  OHLCPoint `json:"open"`
	Close OHLCPoint `json:"close"`
	High  float64   `json:"high"`
	Low   float64   `json:"low"`
}

// OHLCPoint is an official price and its time in milliseconds since epoch.
type OHLCPoint struct {
	Price float64 `json:"price"`
	Time  int64   `json:"time"`
}

// Previous is the previous day adjusted price data of a symbol.
type Previous struct {
	Symbol           string  `json:"symbol"`
	Date             string  `json:"date"`
	Open             float64 `json:"open"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Close            float64 `json:"close"`
	Volume           int64   `json:"volume"`
	UnadjustedVolume int64   `json:"unadjustedVolume"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	VWAP             float64 `json:"vwap"`
}

// Relevant lists symbols relevant to a symbol. Peers tells whether the
// list is the symbol's peers or the most active market symbols.
type Relevant struct {
	Peers   bool     `json:"peers"`
	Symbols []string `json:"symbols"`
}

// Split is a single stock split.
type Split struct {
	ExDate       string  `json:"exDate"`
	DeclaredDate string  `json:"declaredDate"`
	RecordDate   string  `json:"recordDate"`
	PaymentDate  string  `json:"paymentDate"`
	Ratio        float64 `json:"ratio"`
	ToFactor     float64 `json:"toFactor"`
	ForFactor    float64 `json:"forFactor"`
}

// KeyStats contains the key stats of a symbol.
type KeyStats struct {
	CompanyName         string  `json:"companyName"`
	Symbol              string  `json:"symbol"`
	MarketCap           int64   `json:"marketcap"`
	Beta                float64 `json:"beta"`
	Week52High          float64 `json:"week52high"`
	Week52Low           float64 `json:"week52low"`
	Week52Change        float64 `json:"week52change"`
	ShortInterest       int64   `json:"shortInterest"`
	DividendRate        float64 `json:"dividendRate"`
	DividendYield       float64 `json:"dividendYield"`
	LatestEPS           float64 `json:"latestEPS"`
	LatestEPSDate       string  `json:"latestEPSDate"`
	SharesOutstanding   int64   `json:"sharesOutstanding"`
	Float               int64   `json:"float"`
	ReturnOnEquity      float64 `json:"returnOnEquity"`
	ConsensusEPS        float64 `json:"consensusEPS"`
	NumberOfEstimates   int64   `json:"numberOfEstimates"`
	EBITDA              int64   `json:"EBITDA"`
	Revenue             int64   `json:"revenue"`
	GrossProfit         int64   `json:"grossProfit"`
	Cash                int64   `json:"cash"`
	Debt                int64   `json:"debt"`
	TTMEPS              float64 `json:"ttmEPS"`
	RevenuePerShare     float64 `json:"revenuePerShare"`
	RevenuePerEmployee  float64 `json:"revenuePerEmployee"`
	PERatioHigh         float64 `json:"peRatioHigh"`
	PERatioLow          float64 `json:"peRatioLow"`
	ReturnOnAssets      float64 `json:"returnOnAssets"`
	ProfitMargin        float64 `json:"profitMargin"`
	PriceToSales        float64 `json:"priceToSales"`
	PriceToBook         float64 `json:"priceToBook"`
	Day200MovingAvg     float64 `json:"day200MovingAvg"`
	Day50MovingAvg      float64 `json:"day50MovingAvg"`
	InstitutionPercent  float64 `json:"institutionPercent"`
	InsiderPercent      float64 `json:"insiderPercent"`
	ShortRatio          float64 `json:"shortRatio"`
	Year5ChangePercent  float64 `json:"year5ChangePercent"`
	Year2ChangePercent  float64 `json:"year2ChangePercent"`
	Year1ChangePercent  float64 `json:"year1ChangePercent"`
	YTDChangePercent    float64 `json:"ytdChangePercent"`
	Month6ChangePercent float64 `json:"month6ChangePercent"`
	Month3ChangePercent float64 `json:"month3ChangePercent"`
	Month1ChangePercent float64 `json:"month1ChangePercent"`
	Day5ChangePercent   float64 `json:"day5ChangePercent"`
}

// ThresholdSecurity is an entry of the Reg SHO threshold securities list.
type ThresholdSecurity struct {
	TradeDate             string `json:"TradeDate"`
	SymbolInINETSymbology string `json:"SymbolinINETSymbology"`
	SymbolInCQSSymbology  string `json:"SymbolinCQSSymbology"`
	SymbolInCMSSymbology  string `json:"SymbolinCMSSymbology"`
	SecurityName          string `json:"SecurityName"`
}

// VenueVolume is the delayed volume of a symbol on a single venue.
type VenueVolume struct {
	Volume           int64   `json:"volume"`
	Venue            string  `json:"venue"`
	VenueName        string  `json:"venueName"`
	Date             string  `json:"date"`
	MarketPercent    float64 `json:"marketPercent"`
	AvgMarketPercent float64 `json:"avgMarketPercent"`
}
