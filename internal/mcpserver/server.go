// Package mcpserver exposes the provider clients as MCP tools for LLM hosts.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/client"
	"toolfi/internal/config"
)

// Clients bundles the four provider clients behind the tool surface.
type Clients struct {
	GoPlus    *client.GoPlusClient
	CoinGecko *client.CoinGeckoClient
	DefiLlama *client.DefiLlamaClient
	LiFi      *client.LiFiClient
}

// NewClients builds every provider client over one shared response cache.
func NewClients(cfg *config.Config, creds config.Credentials, store *cache.Cache, logger *zap.Logger) *Clients {
	return &Clients{
		GoPlus:    client.NewGoPlusClient(cfg.GoPlus, creds.GoPlusAPIKey, store, logger),
		CoinGecko: client.NewCoinGeckoClient(cfg.CoinGecko, creds.CoinGeckoAPIKey, store, logger),
		DefiLlama: client.NewDefiLlamaClient(cfg.DefiLlama, store, logger),
		LiFi:      client.NewLiFiClient(cfg.LiFi, store, logger),
	}
}

// Close releases every client's connection pool.
func (c *Clients) Close() {
	c.GoPlus.Close()
	c.CoinGecko.Close()
	c.DefiLlama.Close()
	c.LiFi.Close()
}

// NewServer creates a configured MCP server with all toolfi tools registered.
func NewServer(clients *Clients, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer("toolfi", "0.1.0")
	h := NewHandlers(clients, logger)

	s.AddTool(ToolTokenSecurity, h.HandleTokenSecurity)
	s.AddTool(ToolTokenPrice, h.HandleTokenPrice)
	s.AddTool(ToolCryptoPrice, h.HandleCryptoPrice)
	s.AddTool(ToolDefiYields, h.HandleDefiYields)
	s.AddTool(ToolBridgeQuote, h.HandleBridgeQuote)
	s.AddTool(ToolSupportedChains, h.HandleSupportedChains)
	s.AddTool(ToolTrendingCoins, h.HandleTrendingCoins)

	return s
}
