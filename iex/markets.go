package iex

import "context"

// Venue is the near real-time traded volume reported by a single venue.
type Venue struct {
	// MIC is the Market Identifier Code of the venue.
	MIC           string  `json:"mic"`
	TapeID        string  `json:"tapeId"`
	VenueName     string  `json:"venueName"`
	Volume        int64   `json:"volume"`
	TapeA         int64   `json:"tapeA"`
	TapeB         int64   `json:"tapeB"`
	TapeC         int64   `json:"tapeC"`
	MarketPercent float64 `json:"marketPercent"`
	// LastUpdated is in milliseconds since epoch.
	LastUpdated int64 `json:"lastUpdated"`
}

// GetMarket returns the traded volume of every venue. Market data is
// captured from approximately 7:45 a.m. to 5:15 p.m. ET.
func (c *Client) GetMarket(ctx context.Context, opts ...RequestOption) ([]Venue, error) {
	return getPath[[]Venue](ctx, c, "/market", opts)
}

// GetMarket returns the traded volume of every venue.
func GetMarket(ctx context.Context, opts ...RequestOption) ([]Venue, error) {
	return DefaultClient.GetMarket(ctx, opts...)
}
