package entity

// TokenPrice holds the current USD pricing for a token contract.
// Optional fields are nil when the upstream did not report them.
type TokenPrice struct {
	Address   string   `json:"address"`
	Chain     string   `json:"chain"`
	PriceUSD  float64  `json:"price_usd"`
	Change24h *float64 `json:"change_24h,omitempty"`
	MarketCap *float64 `json:"market_cap,omitempty"`
	Volume24h *float64 `json:"volume_24h,omitempty"`
}
