// Package entity holds the raw JSON shapes returned by the upstream APIs.
// These mirror the wire format exactly; the domain records live in
// internal/domain/entity.
package entity

// GoPlusEnvelope wraps every GoPlus response. Code 1 means success.
type GoPlusEnvelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GoPlusSecurityResponse is the /token_security payload. The result is keyed
// by lowercased contract address.
type GoPlusSecurityResponse struct {
	GoPlusEnvelope
	Result map[string]GoPlusTokenData `json:"result"`
}

// GoPlusTokenData is one token's security report. GoPlus encodes booleans as
// the strings "0"/"1" and numbers as decimal strings.
type GoPlusTokenData struct {
	TokenName   string `json:"token_name"`
	TokenSymbol string `json:"token_symbol"`

	IsHoneypot           string `json:"is_honeypot"`
	BuyTax               string `json:"buy_tax"`
	SellTax              string `json:"sell_tax"`
	IsMintable           string `json:"is_mintable"`
	CanTakeBackOwnership string `json:"can_take_back_ownership"`
	OwnerChangeBalance   string `json:"owner_change_balance"`
	HiddenOwner          string `json:"hidden_owner"`
	IsBlacklisted        string `json:"is_blacklisted"`
	TransferPausable     string `json:"transfer_pausable"`
	IsProxy              string `json:"is_proxy"`
	IsOpenSource         string `json:"is_open_source"`

	TotalSupply   string `json:"total_supply"`
	HolderCount   string `json:"holder_count"`
	LpHolderCount string `json:"lp_holder_count"`

	Dex []map[string]any `json:"dex"`

	IsInCex GoPlusCexListing `json:"is_in_cex"`
}

// GoPlusCexListing reports centralized-exchange listings for a token.
type GoPlusCexListing struct {
	Listed  string   `json:"listed"`
	CexList []string `json:"cex_list"`
}

// GoPlusChainsResponse is the /supported_chains payload.
type GoPlusChainsResponse struct {
	GoPlusEnvelope
	Result []GoPlusChain `json:"result"`
}

// GoPlusChain is one supported chain entry.
type GoPlusChain struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GoPlusAddressResponse is the /address_security payload.
type GoPlusAddressResponse struct {
	GoPlusEnvelope
	Result map[string]any `json:"result"`
}
