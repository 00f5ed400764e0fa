package entity

// LlamaPoolsResponse is the yields.llama.fi /pools payload.
type LlamaPoolsResponse struct {
	Status string      `json:"status"`
	Data   []LlamaPool `json:"data"`
}

// LlamaPool is one raw yield pool. APY fields are pointers because DefiLlama
// omits them for pools it cannot compute; a missing value is treated as zero.
type LlamaPool struct {
	Pool             string   `json:"pool"`
	Chain            string   `json:"chain"`
	Project          string   `json:"project"`
	Symbol           string   `json:"symbol"`
	TVLUsd           *float64 `json:"tvlUsd"`
	APY              *float64 `json:"apy"`
	APYBase          *float64 `json:"apyBase"`
	APYReward        *float64 `json:"apyReward"`
	RewardTokens     []string `json:"rewardTokens"`
	Stablecoin       bool     `json:"stablecoin"`
	ILRisk           string   `json:"ilRisk"`
	Exposure         string   `json:"exposure"`
	UnderlyingTokens []string `json:"underlyingTokens"`
}

// LlamaChainTVL is one entry of the api.llama.fi /v2/chains payload.
type LlamaChainTVL struct {
	Name        string  `json:"name"`
	ChainID     any     `json:"chainId"`
	TokenSymbol string  `json:"tokenSymbol"`
	TVL         float64 `json:"tvl"`
}
