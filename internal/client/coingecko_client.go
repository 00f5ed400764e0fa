package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/chains"
	"toolfi/internal/config"
	domain "toolfi/internal/domain/entity"
	"toolfi/internal/entity"
)

// maxBatchAddresses is CoinGecko's per-request limit on contract addresses.
const maxBatchAddresses = 100

// PriceQuery selects the optional fields to request alongside the USD price.
type PriceQuery struct {
	IncludeChange    bool
	IncludeMarketCap bool
	IncludeVolume    bool
}

// CoinGeckoClient wraps the CoinGecko pricing API. With an API key it talks
// to the pro endpoint (x-cg-pro-api-key header); without one it uses the
// free tier.
type CoinGeckoClient struct {
	base   *baseClient
	logger *zap.Logger
}

// NewCoinGeckoClient creates a new CoinGecko client.
func NewCoinGeckoClient(cfg config.CoinGeckoConfig, apiKey string, store *cache.Cache, logger *zap.Logger) *CoinGeckoClient {
	log := logger.Named("CoinGeckoClient")

	baseURL := cfg.BaseURL
	if apiKey != "" {
		baseURL = cfg.ProBaseURL
	}
	base := newBaseClient(
		"coingecko",
		baseURL,
		time.Duration(cfg.RequestTimeoutMillis)*time.Millisecond,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		store,
		log,
	)
	if apiKey != "" {
		base.auth = func(h *fasthttp.RequestHeader) {
			h.Set("x-cg-pro-api-key", apiKey)
		}
	}
	return &CoinGeckoClient{base: base, logger: log}
}

// TokenPrice fetches the current USD price for a token contract.
func (c *CoinGeckoClient) TokenPrice(ctx context.Context, chain, address string, q PriceQuery) (*domain.TokenPrice, error) {
	platform, ok := chains.CoinGeckoPlatform(chain)
	if !ok {
		return nil, &UnsupportedChainError{Provider: "coingecko", Chain: chain}
	}
	addr := normalizeAddress(address)

	params := map[string]string{
		"contract_addresses": addr,
		"vs_currencies":      "usd",
	}
	addPriceParams(params, q)

	body, err := c.base.getJSON(ctx, "/simple/token_price/"+platform, params, true)
	if err != nil {
		return nil, err
	}

	var data map[string]entity.CoinGeckoPrice
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CoinGecko price response: %w", err)
	}
	priced, ok := data[addr]
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf("Token not found: %s on %s", addr, chain)}
	}

	return &domain.TokenPrice{
		Address:   addr,
		Chain:     chain,
		PriceUSD:  priced.USD,
		Change24h: priced.USD24hChange,
		MarketCap: priced.USDMarketCap,
		Volume24h: priced.USD24hVol,
	}, nil
}

// TokenPrices fetches USD prices for up to 100 token contracts in one call.
// Addresses missing from the response are simply absent from the result map.
func (c *CoinGeckoClient) TokenPrices(ctx context.Context, chain string, addresses []string) (map[string]*domain.TokenPrice, error) {
	platform, ok := chains.CoinGeckoPlatform(chain)
	if !ok {
		return nil, &UnsupportedChainError{Provider: "coingecko", Chain: chain}
	}
	if len(addresses) > maxBatchAddresses {
		addresses = addresses[:maxBatchAddresses]
	}
	normalized := make([]string, 0, len(addresses))
	for _, a := range addresses {
		normalized = append(normalized, normalizeAddress(a))
	}

	body, err := c.base.getJSON(ctx, "/simple/token_price/"+platform, map[string]string{
		"contract_addresses":  strings.Join(normalized, ","),
		"vs_currencies":       "usd",
		"include_24hr_change": "true",
	}, true)
	if err != nil {
		return nil, err
	}

	var data map[string]entity.CoinGeckoPrice
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CoinGecko batch response: %w", err)
	}

	result := make(map[string]*domain.TokenPrice, len(data))
	for _, addr := range normalized {
		priced, ok := data[addr]
		if !ok {
			continue
		}
		result[addr] = &domain.TokenPrice{
			Address:   addr,
			Chain:     chain,
			PriceUSD:  priced.USD,
			Change24h: priced.USD24hChange,
		}
	}
	return result, nil
}

// PriceByID fetches the price for a CoinGecko coin ID (bitcoin, ethereum, ...).
func (c *CoinGeckoClient) PriceByID(ctx context.Context, coinID string, q PriceQuery) (*entity.CoinGeckoPrice, error) {
	id := strings.ToLower(strings.TrimSpace(coinID))

	params := map[string]string{
		"ids":           id,
		"vs_currencies": "usd",
	}
	addPriceParams(params, q)

	body, err := c.base.getJSON(ctx, "/simple/price", params, true)
	if err != nil {
		return nil, err
	}

	var data map[string]entity.CoinGeckoPrice
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CoinGecko price response: %w", err)
	}
	priced, ok := data[id]
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf("Coin not found: %s", coinID)}
	}
	return &priced, nil
}

// Trending returns CoinGecko's currently trending coins.
func (c *CoinGeckoClient) Trending(ctx context.Context) ([]entity.CoinGeckoTrendingEntry, error) {
	body, err := c.base.getJSON(ctx, "/search/trending", nil, true)
	if err != nil {
		return nil, err
	}
	var resp entity.CoinGeckoTrendingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CoinGecko trending response: %w", err)
	}
	return resp.Coins, nil
}

// SearchCoins searches coins by name or symbol.
func (c *CoinGeckoClient) SearchCoins(ctx context.Context, query string) ([]entity.CoinGeckoSearchCoin, error) {
	body, err := c.base.getJSON(ctx, "/search", map[string]string{"query": query}, true)
	if err != nil {
		return nil, err
	}
	var resp entity.CoinGeckoSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CoinGecko search response: %w", err)
	}
	return resp.Coins, nil
}

// Close releases the client's connection pool.
func (c *CoinGeckoClient) Close() {
	c.base.Close()
}

func addPriceParams(params map[string]string, q PriceQuery) {
	if q.IncludeChange {
		params["include_24hr_change"] = "true"
	}
	if q.IncludeMarketCap {
		params["include_market_cap"] = "true"
	}
	if q.IncludeVolume {
		params["include_24hr_vol"] = "true"
	}
}
