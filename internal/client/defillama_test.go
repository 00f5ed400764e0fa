package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toolfi/internal/entity"
)

func f(v float64) *float64 { return &v }

func pool(chain, project string, tvl, apy float64, stable bool) entity.LlamaPool {
	return entity.LlamaPool{
		Pool:       chain + "-" + project,
		Chain:      chain,
		Project:    project,
		Symbol:     "X-Y",
		TVLUsd:     f(tvl),
		APY:        f(apy),
		Stablecoin: stable,
		ILRisk:     "no",
	}
}

func TestFilterPoolsConjunction(t *testing.T) {
	raw := []entity.LlamaPool{
		pool("Base", "aave-v3", 2_000_000, 8, true),
		pool("Base", "degen-farm", 500, 50, false),
	}

	got := filterPools(raw, PoolFilter{MinTVL: 1_000_000, StablecoinOnly: true}, "Base")
	require.Len(t, got, 1)
	assert.Equal(t, "aave-v3", got[0].Project)
}

func TestFilterPoolsProjectMatchIsCaseInsensitive(t *testing.T) {
	raw := []entity.LlamaPool{
		pool("Base", "Aave-V3", 2_000_000, 8, true),
		pool("Base", "compound", 2_000_000, 6, true),
	}

	got := filterPools(raw, PoolFilter{Project: "aave-v3"}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "Aave-V3", got[0].Project)
}

func TestFilterPoolsMissingFieldsAreZero(t *testing.T) {
	raw := []entity.LlamaPool{
		{Pool: "p1", Chain: "Base", Project: "x", TVLUsd: nil, APY: nil},
	}

	// min_tvl > 0 excludes a pool with no reported TVL.
	assert.Empty(t, filterPools(raw, PoolFilter{MinTVL: 1}, ""))

	// With no constraints the pool survives with zeroed numbers.
	got := filterPools(raw, PoolFilter{}, "")
	require.Len(t, got, 1)
	assert.Zero(t, got[0].TVLUsd)
	assert.Zero(t, got[0].APY)
}

func TestFilterPoolsAPYBand(t *testing.T) {
	raw := []entity.LlamaPool{
		pool("Base", "low", 1_000_000, 0.5, false),
		pool("Base", "mid", 1_000_000, 20, false),
		pool("Base", "scam", 1_000_000, 90000, false),
	}

	got := filterPools(raw, PoolFilter{MinAPY: 1, MaxAPY: 100}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "mid", got[0].Project)
}

func TestFilterPoolsSingleExposure(t *testing.T) {
	multi := pool("Base", "lp", 1_000_000, 5, false)
	multi.Exposure = "multi"
	single := pool("Base", "stake", 1_000_000, 4, false)
	single.Exposure = "single"

	got := filterPools([]entity.LlamaPool{multi, single}, PoolFilter{SingleExposure: true}, "")
	require.Len(t, got, 1)
	assert.Equal(t, "stake", got[0].Project)
}

// The limit truncates in source iteration order BEFORE the APY sort, so with
// more matches than the limit the result is sorted within the truncated
// subset only, not the global top-N. That behavior is load-bearing for
// downstream consumers; this test pins it down.
func TestPoolsLimitTruncatesBeforeSort(t *testing.T) {
	raw := []entity.LlamaPool{
		pool("Base", "first", 1_000_000, 5, false),
		pool("Base", "second", 1_000_000, 3, false),
		pool("Base", "best", 1_000_000, 99, false), // highest APY, but beyond the limit
	}

	got := filterPools(raw, PoolFilter{Limit: 2}, "")
	require.Len(t, got, 2)
	projects := []string{got[0].Project, got[1].Project}
	assert.ElementsMatch(t, []string{"first", "second"}, projects,
		"the best pool past the limit must be dropped")
}

func TestPoolsEndToEndSortsDescending(t *testing.T) {
	base, _ := newTestBase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pools", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","data":[
			{"pool":"a","chain":"Base","project":"p1","symbol":"A","tvlUsd":1000000,"apy":3},
			{"pool":"b","chain":"Base","project":"p2","symbol":"B","tvlUsd":1000000,"apy":9},
			{"pool":"c","chain":"Base","project":"p3","symbol":"C","tvlUsd":1000000,"apy":6}
		]}`))
	})
	c := &DefiLlamaClient{yields: base, tvl: base, logger: zap.NewNop()}

	got, err := c.Pools(context.Background(), PoolFilter{Chain: "base"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].PoolID, got[1].PoolID, got[2].PoolID})
}

func TestPoolsUnsupportedChain(t *testing.T) {
	c := &DefiLlamaClient{logger: zap.NewNop()}

	_, err := c.Pools(context.Background(), PoolFilter{Chain: "doesnotexist"})
	var unsupported *UnsupportedChainError
	require.ErrorAs(t, err, &unsupported)
}

func TestPoolByID(t *testing.T) {
	base, _ := newTestBase(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"pool":"uuid-1","chain":"Base","project":"p","symbol":"S","tvlUsd":10,"apy":1}]}`))
	})
	c := &DefiLlamaClient{yields: base, tvl: base, logger: zap.NewNop()}

	got, err := c.PoolByID(context.Background(), "uuid-1")
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", got.PoolID)

	_, err = c.PoolByID(context.Background(), "missing")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}
