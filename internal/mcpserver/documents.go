package mcpserver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mark3labs/mcp-go/mcp"

	"toolfi/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output documents. Field order matters: the structs are laid out the way the
// documents should read, identity first, then the interesting numbers.

type securityDoc struct {
	Token   securityTokenDoc   `json:"token"`
	Risk    securityRiskDoc    `json:"risk"`
	Details securityDetailsDoc `json:"details"`
	Market  securityMarketDoc  `json:"market"`
}

type securityTokenDoc struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

type securityRiskDoc struct {
	Level   entity.RiskLevel `json:"level"`
	Score   int              `json:"score"`
	Factors []string         `json:"factors"`
}

type securityDetailsDoc struct {
	IsHoneypot           bool   `json:"is_honeypot"`
	BuyTax               string `json:"buy_tax"`
	SellTax              string `json:"sell_tax"`
	IsMintable           bool   `json:"is_mintable"`
	CanTakeBackOwnership bool   `json:"can_take_back_ownership"`
	OwnerChangeBalance   bool   `json:"owner_change_balance"`
	HiddenOwner          bool   `json:"hidden_owner"`
	IsBlacklisted        bool   `json:"is_blacklisted"`
	TransferPausable     bool   `json:"transfer_pausable"`
	IsOpenSource         bool   `json:"is_open_source"`
	IsProxy              bool   `json:"is_proxy"`
}

type securityMarketDoc struct {
	HolderCount   int      `json:"holder_count"`
	LpHolderCount int      `json:"lp_holder_count"`
	IsInCex       bool     `json:"is_in_cex"`
	CexList       []string `json:"cex_list"`
	DexCount      int      `json:"dex_count"`
}

type priceDoc struct {
	Token        priceTokenDoc `json:"token"`
	Price        priceValueDoc `json:"price"`
	MarketCapUSD *float64      `json:"market_cap_usd,omitempty"`
}

type priceTokenDoc struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

type priceValueDoc struct {
	USD       float64 `json:"usd"`
	Change24h *string `json:"change_24h"`
}

type cryptoPriceDoc struct {
	Coin      string  `json:"coin"`
	PriceUSD  float64 `json:"price_usd"`
	Change24h string  `json:"change_24h"`
}

type yieldsDoc struct {
	Count int            `json:"count"`
	Pools []yieldPoolDoc `json:"pools"`
}

type yieldPoolDoc struct {
	PoolID     string  `json:"pool_id"`
	Chain      string  `json:"chain"`
	Project    string  `json:"project"`
	Symbol     string  `json:"symbol"`
	TVLUsd     string  `json:"tvl_usd"`
	APY        string  `json:"apy"`
	APYBase    *string `json:"apy_base"`
	APYReward  *string `json:"apy_reward"`
	Stablecoin bool    `json:"stablecoin"`
	ILRisk     string  `json:"il_risk"`
}

type bridgeDoc struct {
	Route     bridgeRouteDoc     `json:"route"`
	Amounts   bridgeAmountsDoc   `json:"amounts"`
	Costs     bridgeCostsDoc     `json:"costs"`
	Execution bridgeExecutionDoc `json:"execution"`
}

type bridgeRouteDoc struct {
	FromChain string `json:"from_chain"`
	ToChain   string `json:"to_chain"`
	FromToken string `json:"from_token"`
	ToToken   string `json:"to_token"`
}

type bridgeAmountsDoc struct {
	FromAmount  string  `json:"from_amount"`
	ToAmount    string  `json:"to_amount"`
	ToAmountUSD *string `json:"to_amount_usd"`
}

type bridgeCostsDoc struct {
	GasUSD *string `json:"gas_usd"`
}

type bridgeExecutionDoc struct {
	TimeSeconds *int   `json:"time_seconds"`
	Bridge      string `json:"bridge"`
}

type supportedChainsDoc struct {
	GoPlus    []string `json:"goplus"`
	CoinGecko []string `json:"coingecko"`
	DefiLlama []string `json:"defillama"`
	LiFi      []string `json:"lifi"`
}

type trendingDoc struct {
	Trending []trendingEntry `json:"trending"`
}

type trendingEntry struct {
	Name          string   `json:"name"`
	Symbol        string   `json:"symbol"`
	MarketCapRank int      `json:"market_cap_rank"`
	PriceBTC      *float64 `json:"price_btc"`
}

type errorDoc struct {
	Error string `json:"error"`
}

func securityDocument(sec *entity.TokenSecurity) securityDoc {
	cexList := sec.CexList
	if cexList == nil {
		cexList = []string{}
	}
	factors := sec.RiskFactors
	if factors == nil {
		factors = []string{}
	}
	return securityDoc{
		Token: securityTokenDoc{
			Name:    sec.Name,
			Symbol:  sec.Symbol,
			Address: sec.Address,
			Chain:   sec.Chain,
		},
		Risk: securityRiskDoc{
			Level:   sec.RiskLevel,
			Score:   sec.RiskScore,
			Factors: factors,
		},
		Details: securityDetailsDoc{
			IsHoneypot:           sec.IsHoneypot,
			BuyTax:               fmt.Sprintf("%.1f%%", sec.BuyTax*100),
			SellTax:              fmt.Sprintf("%.1f%%", sec.SellTax*100),
			IsMintable:           sec.IsMintable,
			CanTakeBackOwnership: sec.CanTakeBackOwnership,
			OwnerChangeBalance:   sec.OwnerChangeBalance,
			HiddenOwner:          sec.HiddenOwner,
			IsBlacklisted:        sec.IsBlacklisted,
			TransferPausable:     sec.TransferPausable,
			IsOpenSource:         sec.IsOpenSource,
			IsProxy:              sec.IsProxy,
		},
		Market: securityMarketDoc{
			HolderCount:   sec.HolderCount,
			LpHolderCount: sec.LpHolderCount,
			IsInCex:       sec.IsInCex,
			CexList:       cexList,
			DexCount:      len(sec.DexInfo),
		},
	}
}

func priceDocument(price *entity.TokenPrice, includeMarketCap bool) priceDoc {
	doc := priceDoc{
		Token: priceTokenDoc{Address: price.Address, Chain: price.Chain},
		Price: priceValueDoc{
			USD:       price.PriceUSD,
			Change24h: formatPercent(price.Change24h, 2),
		},
	}
	if includeMarketCap && price.MarketCap != nil && *price.MarketCap != 0 {
		doc.MarketCapUSD = price.MarketCap
	}
	return doc
}

func yieldsDocument(pools []entity.DefiPool) yieldsDoc {
	docs := make([]yieldPoolDoc, 0, len(pools))
	for _, p := range pools {
		docs = append(docs, yieldPoolDoc{
			PoolID:     p.PoolID,
			Chain:      p.Chain,
			Project:    p.Project,
			Symbol:     p.Symbol,
			TVLUsd:     formatUSD(p.TVLUsd),
			APY:        fmt.Sprintf("%.2f%%", p.APY),
			APYBase:    formatPercent(p.APYBase, 2),
			APYReward:  formatPercent(p.APYReward, 2),
			Stablecoin: p.Stablecoin,
			ILRisk:     p.ILRisk,
		})
	}
	return yieldsDoc{Count: len(docs), Pools: docs}
}

func bridgeDocument(quote *entity.BridgeQuote) bridgeDoc {
	return bridgeDoc{
		Route: bridgeRouteDoc{
			FromChain: quote.FromChain,
			ToChain:   quote.ToChain,
			FromToken: quote.FromToken,
			ToToken:   quote.ToToken,
		},
		Amounts: bridgeAmountsDoc{
			FromAmount:  quote.FromAmount,
			ToAmount:    quote.ToAmount,
			ToAmountUSD: formatDollars(quote.ToAmountUSD),
		},
		Costs: bridgeCostsDoc{
			GasUSD: formatDollars(quote.GasCostUSD),
		},
		Execution: bridgeExecutionDoc{
			TimeSeconds: quote.ExecutionTimeSeconds,
			Bridge:      quote.BridgeName,
		},
	}
}

// formatPercent renders "12.34%" or nil when the value is absent or zero.
// Zero collapses to nil so a flat 24h change reads as "no data", matching
// how the documents have always rendered.
func formatPercent(v *float64, decimals int) *string {
	if v == nil || *v == 0 {
		return nil
	}
	s := fmt.Sprintf("%.*f%%", decimals, *v)
	return &s
}

// formatDollars renders "$12.34" or nil when the value is absent or zero.
func formatDollars(v *float64) *string {
	if v == nil || *v == 0 {
		return nil
	}
	s := fmt.Sprintf("$%.2f", *v)
	return &s
}

// formatUSD renders a whole-dollar amount with thousands separators, e.g.
// 1234567.8 -> "$1,234,568".
func formatUSD(v float64) string {
	n := int64(math.Round(v))
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("API error: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func errorResult(msg string) *mcp.CallToolResult {
	data, _ := json.Marshal(errorDoc{Error: msg})
	return mcp.NewToolResultText(string(data))
}
