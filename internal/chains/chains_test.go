package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionIsCaseInsensitive(t *testing.T) {
	for _, alias := range []string{"eth", "ETH", "Eth"} {
		id, ok := GoPlusChainID(alias)
		require.True(t, ok, "alias %q should resolve", alias)
		assert.Equal(t, "1", id)

		platform, ok := CoinGeckoPlatform(alias)
		require.True(t, ok)
		assert.Equal(t, "ethereum", platform)

		chainID, ok := LiFiChainID(alias)
		require.True(t, ok)
		assert.Equal(t, 1, chainID)

		name, ok := DefiLlamaChain(alias)
		require.True(t, ok)
		assert.Equal(t, "Ethereum", name)
	}
}

func TestResolutionIsIdempotent(t *testing.T) {
	first, ok := GoPlusChainID("base")
	require.True(t, ok)
	second, ok := GoPlusChainID("base")
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestTablesDivergePerProvider(t *testing.T) {
	// "bsc" resolves to a different native identifier for every provider.
	goplus, ok := GoPlusChainID("bsc")
	require.True(t, ok)
	assert.Equal(t, "56", goplus)

	gecko, ok := CoinGeckoPlatform("bsc")
	require.True(t, ok)
	assert.Equal(t, "binance-smart-chain", gecko)

	lifi, ok := LiFiChainID("bsc")
	require.True(t, ok)
	assert.Equal(t, 56, lifi)

	llama, ok := DefiLlamaChain("bsc")
	require.True(t, ok)
	assert.Equal(t, "BSC", llama)
}

func TestAbsenceIsProviderSpecific(t *testing.T) {
	// GoPlus supports scroll, Li.Fi does not.
	_, ok := GoPlusChainID("scroll")
	assert.True(t, ok)
	_, ok = LiFiChainID("scroll")
	assert.False(t, ok)

	// Unknown aliases resolve nowhere.
	_, ok = GoPlusChainID("doesnotexist")
	assert.False(t, ok)
	_, ok = CoinGeckoPlatform("doesnotexist")
	assert.False(t, ok)
	_, ok = LiFiChainID("doesnotexist")
	assert.False(t, ok)
	_, ok = DefiLlamaChain("doesnotexist")
	assert.False(t, ok)
}
