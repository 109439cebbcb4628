package iex

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/iexdata/iex-api-go/iex/stock"
)

//go:generate easyjson -all $GOFILE

// IssueType is the common issue type of a security.
type IssueType string

// List of issue types
const (
	ADR                IssueType = "ad"
	REIT               IssueType = "re"
	ClosedEndFund      IssueType = "ce"
	SecondaryIssue     IssueType = "si"
	LimitedPartnership IssueType = "lp"
	CommonStock        IssueType = "cs"
	ETF                IssueType = "et"
	NotApplicable      IssueType = "N/A"
)

// Symbol is an entry of the list of symbols IEX supports for trading.
type Symbol struct {
	// Symbol is represented in Nasdaq Integrated symbology (INET).
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	// Date is the date the reference data was generated.
	Date      civil.Date `json:"date"`
	IsEnabled bool       `json:"isEnabled"`
	Type      IssueType  `json:"type"`
	// IEXID tracks securities through symbol changes. Sent as a string,
	// empty meaning 0.
	IEXID StringUint64 `json:"iexId"`
}

// CorporateAction is a record of the IEX daily list of corporate actions.
// Field names follow the IEX Daily List File Specification.
type CorporateAction struct {
	RecordID                     string       `json:"RecordID"`
	DailyListTimestamp           string       `json:"DailyListTimestamp"`
	EffectiveDate                civil.Date   `json:"EffectiveDate"`
	IssueEvent                   string       `json:"IssueEvent"`
	CurrentSymbolInINETSymbology string       `json:"CurrentSymbolinINETSymbology"`
	CurrentSymbolInCQSSymbology  string       `json:"CurrentSymbolinCQSSymbology"`
	CurrentSymbolInCMSSymbology  string       `json:"CurrentSymbolinCMSSymbology"`
	NewSymbolInINETSymbology     string       `json:"NewSymbolinINETSymbology"`
	NewSymbolInCQSSymbology      string       `json:"NewSymbolinCQSSymbology"`
	NewSymbolInCMSSymbology      string       `json:"NewSymbolinCMSSymbology"`
	CurrentSecurityName          string       `json:"CurrentSecurityName"`
	NewSecurityName              string       `json:"NewSecurityName"`
	CurrentCompanyName           string       `json:"CurrentCompanyName"`
	NewCompanyName               string       `json:"NewCompanyName"`
	CurrentListingCenter         string       `json:"CurrentListingCenter"`
	NewListingCenter             string       `json:"NewListingCenter"`
	DelistingReason              string       `json:"DelistingReason"`
	CurrentRoundLotSize          StringUint64 `json:"CurrentRoundLotSize"`
	NewRoundLotSize              StringUint64 `json:"NewRoundLotSize"`
	CurrentLULDTierIndicator     StringUint64 `json:"CurrentLULDTierIndicator"`
	NewLULDTierIndicator         StringUint64 `json:"NewLULDTierIndicator"`
	ExpirationDate               StringUint64 `json:"ExpirationDate"`
	SeparationDate               StringUint64 `json:"SeparationDate"`
	SettlementDate               StringUint64 `json:"SettlementDate"`
	MaturityDate                 StringUint64 `json:"MaturityDate"`
	RedemptionDate               StringUint64 `json:"RedemptionDate"`
	CurrentFinancialStatus       string       `json:"CurrentFinancialStatus"`
	NewFinancialStatus           string       `json:"NewFinancialStatus"`
	WhenIssuedFlag               Flag         `json:"WhenIssuedFlag"`
	WhenDistributedFlag          Flag         `json:"WhenDistributedFlag"`
	IPOFlag                      Flag         `json:"IPOFlag"`
	NotesForEachEntry            string       `json:"NotesforEachEntry"`
	RecordUpdateTime             string       `json:"RecordUpdateTime"`
}

// DailyList selects a daily list file. The zero value selects the latest
// file.
type DailyList struct {
	// Date selects the file of a given day, if available.
	Date *civil.Date
	// Sample selects the sample file. It takes precedence over Date.
	Sample bool
}

func (d DailyList) path(name string) string {
	p := "/ref-data/daily-list/" + name
	switch {
	case d.Sample:
		return p + "/sample"
	case d.Date != nil:
		return p + "/" + stock.FormatDate(*d.Date)
	}
	return p
}

// GetSymbols returns the symbols IEX supports for trading. The list is
// updated daily as of 7:45 a.m. ET.
func (c *Client) GetSymbols(ctx context.Context, opts ...RequestOption) ([]Symbol, error) {
	return getPath[[]Symbol](ctx, c, "/ref-data/symbols", opts)
}

// GetCorporateActions returns the corporate actions of the selected daily
// list. Updates are posted hourly from 8:00 a.m. to 6:00 p.m. ET on each
// trading day.
func (c *Client) GetCorporateActions(ctx context.Context, list DailyList, opts ...RequestOption) ([]CorporateAction, error) {
	return getPath[[]CorporateAction](ctx, c, list.path("corporate-actions"), opts)
}

// GetDailyListDividends returns the dividends of the selected daily list.
// Its records are not typed yet; convert the Response as needed.
func (c *Client) GetDailyListDividends(ctx context.Context, list DailyList, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, list.path("dividends"), nil, opts...)
}

// GetNextDayExDate returns the next day ex-date records of the selected
// daily list. Its records are not typed yet.
func (c *Client) GetNextDayExDate(ctx context.Context, list DailyList, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, list.path("next-day-ex-date"), nil, opts...)
}

// GetListedSymbolDirectory returns the IEX-listed symbol directory of the
// selected daily list. Its records are not typed yet.
func (c *Client) GetListedSymbolDirectory(ctx context.Context, list DailyList, opts ...RequestOption) (*Response, error) {
	return c.Get(ctx, list.path("symbol-directory"), nil, opts...)
}

// GetSymbols returns the symbols IEX supports for trading.
func GetSymbols(ctx context.Context, opts ...RequestOption) ([]Symbol, error) {
	return DefaultClient.GetSymbols(ctx, opts...)
}

// GetCorporateActions returns the corporate actions of the selected daily list.
func GetCorporateActions(ctx context.Context, list DailyList, opts ...RequestOption) ([]CorporateAction, error) {
	return DefaultClient.GetCorporateActions(ctx, list, opts...)
}
