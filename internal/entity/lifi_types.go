package entity

// LiFiQuoteResponse is the li.quest /quote payload.
type LiFiQuoteResponse struct {
	Tool          string           `json:"tool"`
	Action        LiFiAction       `json:"action"`
	Estimate      LiFiEstimate     `json:"estimate"`
	IncludedSteps []map[string]any `json:"includedSteps"`

	// Message is set on error payloads that still arrive with a 2xx body.
	Message string `json:"message"`
}

// LiFiAction echoes the requested transfer.
type LiFiAction struct {
	FromChainID int       `json:"fromChainId"`
	ToChainID   int       `json:"toChainId"`
	FromToken   LiFiToken `json:"fromToken"`
	ToToken     LiFiToken `json:"toToken"`
	FromAmount  string    `json:"fromAmount"`
}

// LiFiToken identifies a token on a chain.
type LiFiToken struct {
	Address  string `json:"address"`
	ChainID  int    `json:"chainId"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Name     string `json:"name"`
}

// LiFiEstimate is the quoted outcome of a transfer.
type LiFiEstimate struct {
	FromAmount        string        `json:"fromAmount"`
	ToAmount          string        `json:"toAmount"`
	ToAmountUSD       string        `json:"toAmountUSD"`
	ExecutionDuration float64       `json:"executionDuration"`
	GasCosts          []LiFiGasCost `json:"gasCosts"`
	FeeCosts          []LiFiFeeCost `json:"feeCosts"`
}

// LiFiGasCost is one gas cost line item.
type LiFiGasCost struct {
	Type      string `json:"type"`
	AmountUSD string `json:"amountUSD"`
}

// LiFiFeeCost is one fee line item.
type LiFiFeeCost struct {
	Name      string `json:"name"`
	AmountUSD string `json:"amountUSD"`
}

// LiFiChainsResponse is the /chains payload.
type LiFiChainsResponse struct {
	Chains []LiFiChain `json:"chains"`
}

// LiFiChain is one supported chain.
type LiFiChain struct {
	ID   int    `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}
