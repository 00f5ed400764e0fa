package entity

// DefiPool describes a single DeFi yield pool.
type DefiPool struct {
	PoolID           string   `json:"pool_id"`
	Chain            string   `json:"chain"`
	Project          string   `json:"project"`
	Symbol           string   `json:"symbol"`
	TVLUsd           float64  `json:"tvl_usd"`
	APY              float64  `json:"apy"`
	APYBase          *float64 `json:"apy_base,omitempty"`
	APYReward        *float64 `json:"apy_reward,omitempty"`
	RewardTokens     []string `json:"reward_tokens,omitempty"`
	Stablecoin       bool     `json:"stablecoin"`
	ILRisk           string   `json:"il_risk"`
	UnderlyingTokens []string `json:"underlying_tokens,omitempty"`
}
