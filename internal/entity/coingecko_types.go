package entity

// CoinGeckoPrice is one priced asset from the /simple endpoints. The response
// is a map keyed by contract address (or coin ID) onto this shape.
type CoinGeckoPrice struct {
	USD          float64  `json:"usd"`
	USD24hChange *float64 `json:"usd_24h_change"`
	USDMarketCap *float64 `json:"usd_market_cap"`
	USD24hVol    *float64 `json:"usd_24h_vol"`
}

// CoinGeckoTrendingResponse is the /search/trending payload.
type CoinGeckoTrendingResponse struct {
	Coins []CoinGeckoTrendingEntry `json:"coins"`
}

// CoinGeckoTrendingEntry wraps a trending coin; the data sits under "item".
type CoinGeckoTrendingEntry struct {
	Item CoinGeckoTrendingItem `json:"item"`
}

// CoinGeckoTrendingItem is one trending coin.
type CoinGeckoTrendingItem struct {
	Name          string   `json:"name"`
	Symbol        string   `json:"symbol"`
	MarketCapRank int      `json:"market_cap_rank"`
	PriceBTC      *float64 `json:"price_btc"`
}

// CoinGeckoSearchResponse is the /search payload.
type CoinGeckoSearchResponse struct {
	Coins []CoinGeckoSearchCoin `json:"coins"`
}

// CoinGeckoSearchCoin is one search match.
type CoinGeckoSearchCoin struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	MarketCapRank int    `json:"market_cap_rank"`
}
