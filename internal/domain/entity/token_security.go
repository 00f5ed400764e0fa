package entity

// TokenSecurity holds the security profile of a token contract as reported
// by the security scanner, together with the derived risk assessment.
// The derived fields (RiskScore, RiskLevel, RiskFactors) are filled in once,
// right after construction; rebuilding the record is the only way to refresh them.
type TokenSecurity struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`

	IsHoneypot           bool    `json:"is_honeypot"`
	BuyTax               float64 `json:"buy_tax"`
	SellTax              float64 `json:"sell_tax"`
	IsMintable           bool    `json:"is_mintable"`
	CanTakeBackOwnership bool    `json:"can_take_back_ownership"`
	OwnerChangeBalance   bool    `json:"owner_change_balance"`
	HiddenOwner          bool    `json:"hidden_owner"`
	IsBlacklisted        bool    `json:"is_blacklisted"`
	TransferPausable     bool    `json:"transfer_pausable"`
	IsProxy              bool    `json:"is_proxy"`
	IsOpenSource         bool    `json:"is_open_source"`

	TotalSupply   string `json:"total_supply,omitempty"`
	HolderCount   int    `json:"holder_count"`
	LpHolderCount int    `json:"lp_holder_count"`

	DexInfo []map[string]any `json:"dex_info,omitempty"`

	IsInCex bool     `json:"is_in_cex"`
	CexList []string `json:"cex_list,omitempty"`

	RiskScore   int       `json:"risk_score"`
	RiskLevel   RiskLevel `json:"risk_level"`
	RiskFactors []string  `json:"risk_factors"`
}
