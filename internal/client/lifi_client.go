package client

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/chains"
	"toolfi/internal/config"
	domain "toolfi/internal/domain/entity"
	"toolfi/internal/entity"
)

// nativeTokenAddress is Li.Fi's sentinel for a chain's native asset.
const nativeTokenAddress = "0x0000000000000000000000000000000000000000"

const defaultSlippage = 0.03

// usdcAddresses maps Li.Fi numeric chain IDs to the canonical USDC contract.
var usdcAddresses = map[int]string{
	1:     "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", // Ethereum
	42161: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831", // Arbitrum
	8453:  "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913", // Base
	137:   "0x3c499c542cef5e3811e1192ce70d8cc03d5c3359", // Polygon
	10:    "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85", // Optimism
}

// QuoteRequest describes a cross-chain transfer to be quoted. Amount is in
// the source token's smallest unit. A zero Slippage falls back to 3%.
type QuoteRequest struct {
	FromChain   string
	ToChain     string
	FromToken   string
	ToToken     string
	Amount      string
	FromAddress string
	Slippage    float64
}

// LiFiClient wraps the Li.Fi bridge routing API.
type LiFiClient struct {
	base   *baseClient
	logger *zap.Logger
}

// NewLiFiClient creates a new Li.Fi client.
func NewLiFiClient(cfg config.ProviderConfig, store *cache.Cache, logger *zap.Logger) *LiFiClient {
	log := logger.Named("LiFiClient")
	return &LiFiClient{
		base: newBaseClient(
			"lifi",
			cfg.BaseURL,
			time.Duration(cfg.RequestTimeoutMillis)*time.Millisecond,
			time.Duration(cfg.CacheTTLSeconds)*time.Second,
			store,
			log,
		),
		logger: log,
	}
}

// Quote fetches a bridge quote. Quotes go stale within seconds, so they
// always bypass the cache.
func (c *LiFiClient) Quote(ctx context.Context, q QuoteRequest) (*domain.BridgeQuote, error) {
	fromID, ok := chains.LiFiChainID(q.FromChain)
	if !ok {
		return nil, &UnsupportedChainError{Provider: "lifi", Chain: q.FromChain}
	}
	toID, ok := chains.LiFiChainID(q.ToChain)
	if !ok {
		return nil, &UnsupportedChainError{Provider: "lifi", Chain: q.ToChain}
	}

	fromToken := resolveToken(q.FromToken, fromID)
	toToken := resolveToken(q.ToToken, toID)
	slippage := q.Slippage
	if slippage == 0 {
		slippage = defaultSlippage
	}

	body, err := c.base.getJSON(ctx, "/quote", map[string]string{
		"fromChain":   strconv.Itoa(fromID),
		"toChain":     strconv.Itoa(toID),
		"fromToken":   fromToken,
		"toToken":     toToken,
		"fromAmount":  q.Amount,
		"fromAddress": q.FromAddress,
		"slippage":    strconv.FormatFloat(slippage, 'f', -1, 64),
	}, false)
	if err != nil {
		return nil, err
	}

	var resp entity.LiFiQuoteResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Li.Fi quote response: %w", err)
	}
	if resp.Tool == "" && resp.Message != "" {
		return nil, fmt.Errorf("Li.Fi error: %s", resp.Message)
	}

	quote := &domain.BridgeQuote{
		FromChain:  q.FromChain,
		ToChain:    q.ToChain,
		FromToken:  fromToken,
		ToToken:    toToken,
		FromAmount: q.Amount,
		ToAmount:   "0",
		BridgeName: resp.Tool,
		Steps:      resp.IncludedSteps,
	}
	if resp.Estimate.FromAmount != "" {
		quote.FromAmount = resp.Estimate.FromAmount
	}
	if resp.Estimate.ToAmount != "" {
		quote.ToAmount = resp.Estimate.ToAmount
	}
	if usd, err := strconv.ParseFloat(resp.Estimate.ToAmountUSD, 64); err == nil && usd > 0 {
		quote.ToAmountUSD = &usd
	}
	if gas := totalGasUSD(resp.Estimate.GasCosts); gas > 0 {
		quote.GasCostUSD = &gas
	}
	if resp.Estimate.ExecutionDuration > 0 {
		seconds := int(math.Round(resp.Estimate.ExecutionDuration))
		quote.ExecutionTimeSeconds = &seconds
	}

	c.logger.Debug("Bridge quote fetched",
		zap.String("fromChain", q.FromChain),
		zap.String("toChain", q.ToChain),
		zap.String("bridge", quote.BridgeName))
	return quote, nil
}

// Chains lists the chains Li.Fi can route across.
func (c *LiFiClient) Chains(ctx context.Context) ([]entity.LiFiChain, error) {
	body, err := c.base.getJSON(ctx, "/chains", nil, true)
	if err != nil {
		return nil, err
	}
	var resp entity.LiFiChainsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Li.Fi chains response: %w", err)
	}
	return resp.Chains, nil
}

// Tokens lists the tokens Li.Fi supports, keyed by chain ID. A zero chainID
// returns every chain.
func (c *LiFiClient) Tokens(ctx context.Context, chainID int) (map[string][]entity.LiFiToken, error) {
	params := map[string]string{}
	if chainID != 0 {
		params["chains"] = strconv.Itoa(chainID)
	}
	body, err := c.base.getJSON(ctx, "/tokens", params, true)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Tokens map[string][]entity.LiFiToken `json:"tokens"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Li.Fi tokens response: %w", err)
	}
	return resp.Tokens, nil
}

// Status reports the state of an in-flight bridge transfer. Never cached.
func (c *LiFiClient) Status(ctx context.Context, txHash, bridge string) (map[string]any, error) {
	body, err := c.base.getJSON(ctx, "/status", map[string]string{
		"txHash": txHash,
		"bridge": bridge,
	}, false)
	if err != nil {
		return nil, err
	}
	var status map[string]any
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Li.Fi status response: %w", err)
	}
	return status, nil
}

// Close releases the client's connection pool.
func (c *LiFiClient) Close() {
	c.base.Close()
}

// resolveToken turns a token symbol into an address where a fixed mapping
// exists. Unknown symbols pass through unchanged; the upstream API performs
// the final validation.
func resolveToken(token string, chainID int) string {
	switch strings.ToUpper(token) {
	case "ETH", "NATIVE", "MATIC", "BNB", "AVAX":
		return nativeTokenAddress
	case "USDC":
		if addr, ok := usdcAddresses[chainID]; ok {
			return addr
		}
		return token
	}
	if strings.HasPrefix(token, "0x") && len(token) == 42 {
		return strings.ToLower(token)
	}
	return token
}

func totalGasUSD(costs []entity.LiFiGasCost) float64 {
	var total float64
	for _, g := range costs {
		if usd, err := strconv.ParseFloat(g.AmountUSD, 64); err == nil {
			total += usd
		}
	}
	return total
}
