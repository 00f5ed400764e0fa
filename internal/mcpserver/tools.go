package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions for the toolfi MCP server.
// Descriptions are what the LLM reads to decide which tool to use.

var ToolTokenSecurity = mcp.NewTool("token_security",
	mcp.WithDescription(
		"Scan a token contract for security risks: honeypot detection, buy/sell taxes, "+
			"mintability, blacklists, ownership traps. Returns a 0-100 risk score, a "+
			"risk level (safe/low/medium/high/critical), and the list of risk factors."),
	mcp.WithString("chain",
		mcp.Required(),
		mcp.Description("Chain name (ethereum, bsc, base, arbitrum, polygon, solana, optimism, avalanche)")),
	mcp.WithString("address",
		mcp.Required(),
		mcp.Description("Token contract address")),
)

var ToolTokenPrice = mcp.NewTool("token_price",
	mcp.WithDescription(
		"Get the current USD price of a token by contract address, including the 24h change."),
	mcp.WithString("chain",
		mcp.Required(),
		mcp.Description("Chain name (ethereum, bsc, base, arbitrum, polygon, solana, optimism, avalanche)")),
	mcp.WithString("address",
		mcp.Required(),
		mcp.Description("Token contract address")),
	mcp.WithBoolean("include_market_cap",
		mcp.Description("Include the token's market cap in the response")),
)

var ToolCryptoPrice = mcp.NewTool("crypto_price",
	mcp.WithDescription(
		"Get the USD price of a major coin by its CoinGecko ID (bitcoin, ethereum, solana, ...)."),
	mcp.WithString("coin",
		mcp.Required(),
		mcp.Description("CoinGecko coin ID, e.g. 'bitcoin' or 'ethereum'")),
)

var ToolDefiYields = mcp.NewTool("defi_yields",
	mcp.WithDescription(
		"Find DeFi yield opportunities across chains and protocols, filtered by TVL, "+
			"APY range, and stablecoin-only. Results are sorted by APY."),
	mcp.WithString("chain",
		mcp.Description("Chain name filter (ethereum, base, arbitrum, ...). Omit to search all chains.")),
	mcp.WithString("project",
		mcp.Description("Protocol name filter (aave-v3, compound, uniswap-v3, ...)")),
	mcp.WithNumber("min_tvl",
		mcp.Description("Minimum TVL in USD (default 100000)")),
	mcp.WithNumber("min_apy",
		mcp.Description("Minimum APY percentage (default 1)")),
	mcp.WithNumber("max_apy",
		mcp.Description("Maximum APY percentage (default 100, filters suspicious yields)")),
	mcp.WithBoolean("stablecoin_only",
		mcp.Description("Only return stablecoin pools")),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of pools to return (default 20)")),
)

var ToolBridgeQuote = mcp.NewTool("bridge_quote",
	mcp.WithDescription(
		"Get a cross-chain bridge quote: expected output amount, gas cost, and "+
			"execution time for moving tokens between chains."),
	mcp.WithString("from_chain",
		mcp.Required(),
		mcp.Description("Source chain (ethereum, base, arbitrum, polygon, optimism, bsc, avalanche)")),
	mcp.WithString("to_chain",
		mcp.Required(),
		mcp.Description("Destination chain")),
	mcp.WithString("from_token",
		mcp.Required(),
		mcp.Description("Source token: USDC, ETH, or a contract address")),
	mcp.WithString("to_token",
		mcp.Required(),
		mcp.Description("Destination token: USDC, ETH, or a contract address")),
	mcp.WithString("amount",
		mcp.Required(),
		mcp.Description("Amount in the token's smallest unit (1000 USDC = 1000000000)")),
	mcp.WithString("from_address",
		mcp.Required(),
		mcp.Description("Sender wallet address")),
)

var ToolSupportedChains = mcp.NewTool("supported_chains",
	mcp.WithDescription("List the chains supported by each underlying data provider."),
)

var ToolTrendingCoins = mcp.NewTool("trending_coins",
	mcp.WithDescription("Get the top-10 trending coins on CoinGecko right now."),
)
