package client

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/chains"
	"toolfi/internal/config"
	domain "toolfi/internal/domain/entity"
	"toolfi/internal/entity"
)

const (
	defaultPoolLimit = 50
	defaultMaxAPY    = 10000
)

// PoolFilter selects pools from the full DefiLlama listing. Zero values mean
// "no constraint", except Limit and MaxAPY which fall back to their defaults.
type PoolFilter struct {
	Chain          string
	Project        string
	MinTVL         float64
	MinAPY         float64
	MaxAPY         float64
	StablecoinOnly bool
	SingleExposure bool
	Limit          int
}

// DefiLlamaClient wraps the DefiLlama yields and TVL APIs. Both are free and
// unauthenticated; the pool listing is large (~10k entries) so it is cached
// aggressively and filtered locally.
type DefiLlamaClient struct {
	yields *baseClient
	tvl    *baseClient
	logger *zap.Logger
}

// NewDefiLlamaClient creates a new DefiLlama client.
func NewDefiLlamaClient(cfg config.DefiLlamaConfig, store *cache.Cache, logger *zap.Logger) *DefiLlamaClient {
	log := logger.Named("DefiLlamaClient")
	timeout := time.Duration(cfg.RequestTimeoutMillis) * time.Millisecond
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	return &DefiLlamaClient{
		yields: newBaseClient("defillama", cfg.BaseURL, timeout, ttl, store, log),
		tvl:    newBaseClient("defillama_tvl", cfg.TVLBaseURL, timeout, ttl, store, log),
		logger: log,
	}
}

// AllPools returns the full raw pool listing.
func (c *DefiLlamaClient) AllPools(ctx context.Context) ([]entity.LlamaPool, error) {
	body, err := c.yields.getJSON(ctx, "/pools", nil, true)
	if err != nil {
		return nil, err
	}
	var resp entity.LlamaPoolsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DefiLlama pools response: %w", err)
	}
	return resp.Data, nil
}

// Pools returns the filtered pool listing, sorted descending by APY.
//
// Filtering is a single pass that stops as soon as Limit pools have been
// collected, and the APY sort runs over that truncated subset only. The
// result is therefore not necessarily the global top-N by APY; this matches
// the upstream consumer contract and is asserted by tests, so do not "fix"
// it to a full sort-then-truncate.
func (c *DefiLlamaClient) Pools(ctx context.Context, f PoolFilter) ([]domain.DefiPool, error) {
	var chainName string
	if f.Chain != "" {
		name, ok := chains.DefiLlamaChain(f.Chain)
		if !ok {
			return nil, &UnsupportedChainError{Provider: "defillama", Chain: f.Chain}
		}
		chainName = name
	}

	raw, err := c.AllPools(ctx)
	if err != nil {
		return nil, err
	}

	pools := filterPools(raw, f, chainName)
	sort.SliceStable(pools, func(i, j int) bool {
		return pools[i].APY > pools[j].APY
	})

	c.logger.Debug("Filtered yield pools",
		zap.Int("total", len(raw)),
		zap.Int("matched", len(pools)))
	return pools, nil
}

// PoolByID looks up a single pool by its DefiLlama UUID.
func (c *DefiLlamaClient) PoolByID(ctx context.Context, poolID string) (*domain.DefiPool, error) {
	raw, err := c.AllPools(ctx)
	if err != nil {
		return nil, err
	}
	for i := range raw {
		if raw[i].Pool == poolID {
			pool := poolFromRaw(raw[i])
			return &pool, nil
		}
	}
	return nil, &NotFoundError{Message: fmt.Sprintf("Pool not found: %s", poolID)}
}

// TopYields returns high-quality pools: TVL above $1M and a sane APY band
// that filters out obvious ponzi-grade numbers.
func (c *DefiLlamaClient) TopYields(ctx context.Context, chain string, limit int) ([]domain.DefiPool, error) {
	if limit <= 0 {
		limit = 20
	}
	return c.Pools(ctx, PoolFilter{
		Chain:  chain,
		MinTVL: 1_000_000,
		MinAPY: 1,
		MaxAPY: 100,
		Limit:  limit,
	})
}

// ChainsTVL returns the total value locked per chain.
func (c *DefiLlamaClient) ChainsTVL(ctx context.Context) ([]entity.LlamaChainTVL, error) {
	body, err := c.tvl.getJSON(ctx, "/v2/chains", nil, true)
	if err != nil {
		return nil, err
	}
	var chainsTVL []entity.LlamaChainTVL
	if err := json.Unmarshal(body, &chainsTVL); err != nil {
		return nil, fmt.Errorf("failed to unmarshal DefiLlama chains response: %w", err)
	}
	return chainsTVL, nil
}

// Close releases both connection pools.
func (c *DefiLlamaClient) Close() {
	c.yields.Close()
	c.tvl.Close()
}

// filterPools applies f over raw in one pass, breaking out early once the
// limit is reached. chainName is the already-resolved DefiLlama chain name,
// or empty for no chain constraint.
func filterPools(raw []entity.LlamaPool, f PoolFilter, chainName string) []domain.DefiPool {
	limit := f.Limit
	if limit <= 0 {
		limit = defaultPoolLimit
	}
	maxAPY := f.MaxAPY
	if maxAPY == 0 {
		maxAPY = defaultMaxAPY
	}

	result := make([]domain.DefiPool, 0, limit)
	for i := range raw {
		pool := &raw[i]

		if chainName != "" && pool.Chain != chainName {
			continue
		}
		if f.Project != "" && !strings.EqualFold(pool.Project, f.Project) {
			continue
		}
		if deref(pool.TVLUsd) < f.MinTVL {
			continue
		}
		apy := deref(pool.APY)
		if apy < f.MinAPY || apy > maxAPY {
			continue
		}
		if f.StablecoinOnly && !pool.Stablecoin {
			continue
		}
		if f.SingleExposure && pool.Exposure != "single" {
			continue
		}

		result = append(result, poolFromRaw(*pool))
		if len(result) >= limit {
			break
		}
	}
	return result
}

func poolFromRaw(raw entity.LlamaPool) domain.DefiPool {
	return domain.DefiPool{
		PoolID:           raw.Pool,
		Chain:            raw.Chain,
		Project:          raw.Project,
		Symbol:           raw.Symbol,
		TVLUsd:           deref(raw.TVLUsd),
		APY:              deref(raw.APY),
		APYBase:          raw.APYBase,
		APYReward:        raw.APYReward,
		RewardTokens:     raw.RewardTokens,
		Stablecoin:       raw.Stablecoin,
		ILRisk:           raw.ILRisk,
		UnderlyingTokens: raw.UnderlyingTokens,
	}
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
