package entity

// BridgeQuote is an aggregator's estimate for moving value across two chains.
// Amounts are strings in the token's smallest unit, as quoted by the upstream.
type BridgeQuote struct {
	FromChain string `json:"from_chain"`
	ToChain   string `json:"to_chain"`
	FromToken string `json:"from_token"`
	ToToken   string `json:"to_token"`

	FromAmount  string   `json:"from_amount"`
	ToAmount    string   `json:"to_amount"`
	ToAmountUSD *float64 `json:"to_amount_usd,omitempty"`
	GasCostUSD  *float64 `json:"gas_cost_usd,omitempty"`

	ExecutionTimeSeconds *int   `json:"execution_time_seconds,omitempty"`
	BridgeName           string `json:"bridge_name"`

	// Steps are the route's intermediate hops, kept opaque.
	Steps []map[string]any `json:"steps,omitempty"`
}
