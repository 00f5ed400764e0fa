package client

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/chains"
	"toolfi/internal/config"
	domain "toolfi/internal/domain/entity"
	"toolfi/internal/entity"
	"toolfi/internal/risk"
)

// GoPlusClient wraps the GoPlus token security API. The free tier works
// without a key; a paid key is sent as a Bearer token.
type GoPlusClient struct {
	base   *baseClient
	logger *zap.Logger
}

// NewGoPlusClient creates a new GoPlus client.
func NewGoPlusClient(cfg config.ProviderConfig, apiKey string, store *cache.Cache, logger *zap.Logger) *GoPlusClient {
	log := logger.Named("GoPlusClient")
	base := newBaseClient(
		"goplus",
		cfg.BaseURL,
		time.Duration(cfg.RequestTimeoutMillis)*time.Millisecond,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		store,
		log,
	)
	if apiKey != "" {
		base.auth = func(h *fasthttp.RequestHeader) {
			h.Set(fasthttp.HeaderAuthorization, "Bearer "+apiKey)
		}
	}
	return &GoPlusClient{base: base, logger: log}
}

// TokenSecurity scans a token contract and returns its security profile with
// the derived risk assessment attached.
func (c *GoPlusClient) TokenSecurity(ctx context.Context, chain, address string) (*domain.TokenSecurity, error) {
	chainID, ok := chains.GoPlusChainID(chain)
	if !ok {
		return nil, &UnsupportedChainError{Provider: "goplus", Chain: chain}
	}
	addr := normalizeAddress(address)

	body, err := c.base.getJSON(ctx, "/token_security/"+chainID, map[string]string{
		"contract_addresses": addr,
	}, true)
	if err != nil {
		return nil, err
	}

	var resp entity.GoPlusSecurityResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GoPlus security response: %w", err)
	}
	if resp.Code != 1 {
		return nil, fmt.Errorf("GoPlus API error: %s", resp.Message)
	}

	raw, ok := resp.Result[addr]
	if !ok {
		return nil, &NotFoundError{Message: fmt.Sprintf("Token not found: %s on %s", addr, chain)}
	}

	sec := securityFromRaw(chain, addr, raw)
	risk.Apply(sec)

	c.logger.Debug("Token security scanned",
		zap.String("chain", chain),
		zap.String("address", addr),
		zap.Int("riskScore", sec.RiskScore))
	return sec, nil
}

// SupportedChains lists the chains the security scanner covers.
func (c *GoPlusClient) SupportedChains(ctx context.Context) ([]entity.GoPlusChain, error) {
	body, err := c.base.getJSON(ctx, "/supported_chains", nil, true)
	if err != nil {
		return nil, err
	}
	var resp entity.GoPlusChainsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GoPlus chains response: %w", err)
	}
	if resp.Code != 1 {
		return nil, fmt.Errorf("GoPlus API error: %s", resp.Message)
	}
	return resp.Result, nil
}

// AddressSecurity checks a wallet address for blacklist or phishing markers.
func (c *GoPlusClient) AddressSecurity(ctx context.Context, chain, address string) (map[string]any, error) {
	chainID, ok := chains.GoPlusChainID(chain)
	if !ok {
		return nil, &UnsupportedChainError{Provider: "goplus", Chain: chain}
	}

	body, err := c.base.getJSON(ctx, "/address_security/"+chainID, map[string]string{
		"address": normalizeAddress(address),
	}, true)
	if err != nil {
		return nil, err
	}
	var resp entity.GoPlusAddressResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal GoPlus address response: %w", err)
	}
	if resp.Code != 1 {
		return nil, fmt.Errorf("GoPlus API error: %s", resp.Message)
	}
	return resp.Result, nil
}

// Close releases the client's connection pool.
func (c *GoPlusClient) Close() {
	c.base.Close()
}

// securityFromRaw maps the wire-format report onto the domain record.
// GoPlus encodes booleans as "0"/"1" strings and numbers as decimal strings;
// anything unparseable is treated as absent.
func securityFromRaw(chain, address string, raw entity.GoPlusTokenData) *domain.TokenSecurity {
	return &domain.TokenSecurity{
		Address: address,
		Chain:   chain,
		Name:    raw.TokenName,
		Symbol:  raw.TokenSymbol,

		IsHoneypot:           goplusFlag(raw.IsHoneypot),
		BuyTax:               goplusFloat(raw.BuyTax),
		SellTax:              goplusFloat(raw.SellTax),
		IsMintable:           goplusFlag(raw.IsMintable),
		CanTakeBackOwnership: goplusFlag(raw.CanTakeBackOwnership),
		OwnerChangeBalance:   goplusFlag(raw.OwnerChangeBalance),
		HiddenOwner:          goplusFlag(raw.HiddenOwner),
		IsBlacklisted:        goplusFlag(raw.IsBlacklisted),
		TransferPausable:     goplusFlag(raw.TransferPausable),
		IsProxy:              goplusFlag(raw.IsProxy),
		IsOpenSource:         goplusFlag(raw.IsOpenSource),

		TotalSupply:   raw.TotalSupply,
		HolderCount:   goplusInt(raw.HolderCount),
		LpHolderCount: goplusInt(raw.LpHolderCount),

		DexInfo: raw.Dex,

		IsInCex: goplusFlag(raw.IsInCex.Listed),
		CexList: raw.IsInCex.CexList,
	}
}

func goplusFlag(s string) bool {
	return s == "1"
}

func goplusFloat(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func goplusInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
