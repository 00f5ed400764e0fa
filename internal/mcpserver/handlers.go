package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"toolfi/internal/client"
)

// Handlers implements the tool handlers. Every failure is converted into a
// text document with a single "error" field; a handler never surfaces a Go
// error to the host, so no upstream hiccup can crash a session.
type Handlers struct {
	clients *Clients
	logger  *zap.Logger
}

// NewHandlers creates the tool handlers over the given clients.
func NewHandlers(clients *Clients, logger *zap.Logger) *Handlers {
	return &Handlers{clients: clients, logger: logger.Named("Handlers")}
}

// HandleTokenSecurity serves the token_security tool.
func (h *Handlers) HandleTokenSecurity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := req.RequireString("chain")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	address, err := req.RequireString("address")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	sec, err := h.clients.GoPlus.TokenSecurity(ctx, chain, address)
	if err != nil {
		h.logger.Warn("token_security failed", zap.String("chain", chain), zap.Error(err))
		return errorResult(clientErrorMessage(err)), nil
	}
	return jsonResult(securityDocument(sec))
}

// HandleTokenPrice serves the token_price tool.
func (h *Handlers) HandleTokenPrice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chain, err := req.RequireString("chain")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	address, err := req.RequireString("address")
	if err != nil {
		return errorResult(err.Error()), nil
	}
	includeMarketCap := req.GetBool("include_market_cap", false)

	price, err := h.clients.CoinGecko.TokenPrice(ctx, chain, address, client.PriceQuery{
		IncludeChange:    true,
		IncludeMarketCap: includeMarketCap,
	})
	if err != nil {
		h.logger.Warn("token_price failed", zap.String("chain", chain), zap.Error(err))
		return errorResult(clientErrorMessage(err)), nil
	}
	return jsonResult(priceDocument(price, includeMarketCap))
}

// HandleCryptoPrice serves the crypto_price tool.
func (h *Handlers) HandleCryptoPrice(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coin, err := req.RequireString("coin")
	if err != nil {
		return errorResult(err.Error()), nil
	}

	priced, err := h.clients.CoinGecko.PriceByID(ctx, coin, client.PriceQuery{IncludeChange: true})
	if err != nil {
		h.logger.Warn("crypto_price failed", zap.String("coin", coin), zap.Error(err))
		return errorResult(err.Error()), nil
	}

	change := 0.0
	if priced.USD24hChange != nil {
		change = *priced.USD24hChange
	}
	return jsonResult(cryptoPriceDoc{
		Coin:      coin,
		PriceUSD:  priced.USD,
		Change24h: fmt.Sprintf("%.2f%%", change),
	})
}

// HandleDefiYields serves the defi_yields tool.
func (h *Handlers) HandleDefiYields(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := client.PoolFilter{
		Chain:          req.GetString("chain", ""),
		Project:        req.GetString("project", ""),
		MinTVL:         req.GetFloat("min_tvl", 100000),
		MinAPY:         req.GetFloat("min_apy", 1),
		MaxAPY:         req.GetFloat("max_apy", 100),
		StablecoinOnly: req.GetBool("stablecoin_only", false),
		Limit:          req.GetInt("limit", 20),
	}

	pools, err := h.clients.DefiLlama.Pools(ctx, filter)
	if err != nil {
		h.logger.Warn("defi_yields failed", zap.Error(err))
		return errorResult(err.Error()), nil
	}
	return jsonResult(yieldsDocument(pools))
}

// HandleBridgeQuote serves the bridge_quote tool.
func (h *Handlers) HandleBridgeQuote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var quoteReq client.QuoteRequest
	var err error
	if quoteReq.FromChain, err = req.RequireString("from_chain"); err != nil {
		return errorResult(err.Error()), nil
	}
	if quoteReq.ToChain, err = req.RequireString("to_chain"); err != nil {
		return errorResult(err.Error()), nil
	}
	if quoteReq.FromToken, err = req.RequireString("from_token"); err != nil {
		return errorResult(err.Error()), nil
	}
	if quoteReq.ToToken, err = req.RequireString("to_token"); err != nil {
		return errorResult(err.Error()), nil
	}
	if quoteReq.Amount, err = req.RequireString("amount"); err != nil {
		return errorResult(err.Error()), nil
	}
	if quoteReq.FromAddress, err = req.RequireString("from_address"); err != nil {
		return errorResult(err.Error()), nil
	}

	quote, err := h.clients.LiFi.Quote(ctx, quoteReq)
	if err != nil {
		h.logger.Warn("bridge_quote failed",
			zap.String("fromChain", quoteReq.FromChain),
			zap.String("toChain", quoteReq.ToChain),
			zap.Error(err))
		return errorResult(clientErrorMessage(err)), nil
	}
	return jsonResult(bridgeDocument(quote))
}

// HandleSupportedChains serves the supported_chains tool.
func (h *Handlers) HandleSupportedChains(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goplusChains, err := h.clients.GoPlus.SupportedChains(ctx)
	if err != nil {
		h.logger.Warn("supported_chains failed", zap.Error(err))
		return errorResult(err.Error()), nil
	}

	names := make([]string, 0, len(goplusChains))
	for _, c := range goplusChains {
		names = append(names, c.Name)
	}
	return jsonResult(supportedChainsDoc{
		GoPlus:    names,
		CoinGecko: []string{"ethereum", "bsc", "polygon", "arbitrum", "base", "optimism", "avalanche", "solana"},
		DefiLlama: []string{"Ethereum", "BSC", "Polygon", "Arbitrum", "Base", "Optimism", "Avalanche", "Solana"},
		LiFi:      []string{"ethereum", "arbitrum", "base", "polygon", "optimism", "bsc", "avalanche"},
	})
}

// HandleTrendingCoins serves the trending_coins tool.
func (h *Handlers) HandleTrendingCoins(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	trending, err := h.clients.CoinGecko.Trending(ctx)
	if err != nil {
		h.logger.Warn("trending_coins failed", zap.Error(err))
		return errorResult(err.Error()), nil
	}

	if len(trending) > 10 {
		trending = trending[:10]
	}
	entries := make([]trendingEntry, 0, len(trending))
	for _, t := range trending {
		entries = append(entries, trendingEntry{
			Name:          t.Item.Name,
			Symbol:        t.Item.Symbol,
			MarketCapRank: t.Item.MarketCapRank,
			PriceBTC:      t.Item.PriceBTC,
		})
	}
	return jsonResult(trendingDoc{Trending: entries})
}

// clientErrorMessage renders a client failure for the error document.
// User-input failures (unknown chain, missing token) are reported verbatim;
// everything else is folded into a generic API error.
func clientErrorMessage(err error) string {
	var unsupported *client.UnsupportedChainError
	var notFound *client.NotFoundError
	if errors.As(err, &unsupported) || errors.As(err, &notFound) {
		return err.Error()
	}
	return "API error: " + err.Error()
}
