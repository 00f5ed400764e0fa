// Package chains maps human chain aliases onto each provider's native
// chain identifier. Every provider keeps its own table: the same alias can
// resolve to a numeric ID for one provider and a capitalized name for
// another, and the tables deliberately do not share entries.
package chains

import "strings"

// goplusChains maps aliases to GoPlus chain IDs (decimal strings, except solana).
var goplusChains = map[string]string{
	"ethereum":  "1",
	"eth":       "1",
	"bsc":       "56",
	"binance":   "56",
	"polygon":   "137",
	"matic":     "137",
	"arbitrum":  "42161",
	"arb":       "42161",
	"base":      "8453",
	"optimism":  "10",
	"op":        "10",
	"avalanche": "43114",
	"avax":      "43114",
	"solana":    "solana",
	"sol":       "solana",
	"linea":     "59144",
	"zksync":    "324",
	"scroll":    "534352",
	"blast":     "81457",
	"mantle":    "5000",
}

// coingeckoPlatforms maps aliases to CoinGecko asset platform slugs.
var coingeckoPlatforms = map[string]string{
	"ethereum":  "ethereum",
	"eth":       "ethereum",
	"bsc":       "binance-smart-chain",
	"binance":   "binance-smart-chain",
	"polygon":   "polygon-pos",
	"matic":     "polygon-pos",
	"arbitrum":  "arbitrum-one",
	"arb":       "arbitrum-one",
	"base":      "base",
	"optimism":  "optimistic-ethereum",
	"op":        "optimistic-ethereum",
	"avalanche": "avalanche",
	"avax":      "avalanche",
	"solana":    "solana",
	"sol":       "solana",
}

// lifiChains maps aliases to Li.Fi numeric chain IDs.
var lifiChains = map[string]int{
	"ethereum":  1,
	"eth":       1,
	"arbitrum":  42161,
	"arb":       42161,
	"base":      8453,
	"polygon":   137,
	"matic":     137,
	"optimism":  10,
	"op":        10,
	"bsc":       56,
	"binance":   56,
	"avalanche": 43114,
	"avax":      43114,
}

// defillamaChains maps aliases to DefiLlama chain names. DefiLlama keys its
// pool data on capitalized names, so the exact casing here matters.
var defillamaChains = map[string]string{
	"ethereum":  "Ethereum",
	"eth":       "Ethereum",
	"bsc":       "BSC",
	"binance":   "BSC",
	"polygon":   "Polygon",
	"matic":     "Polygon",
	"arbitrum":  "Arbitrum",
	"arb":       "Arbitrum",
	"base":      "Base",
	"optimism":  "Optimism",
	"op":        "Optimism",
	"avalanche": "Avalanche",
	"avax":      "Avalanche",
	"solana":    "Solana",
	"sol":       "Solana",
}

// GoPlusChainID resolves a chain alias to the GoPlus chain ID.
func GoPlusChainID(chain string) (string, bool) {
	id, ok := goplusChains[strings.ToLower(chain)]
	return id, ok
}

// CoinGeckoPlatform resolves a chain alias to the CoinGecko asset platform slug.
func CoinGeckoPlatform(chain string) (string, bool) {
	id, ok := coingeckoPlatforms[strings.ToLower(chain)]
	return id, ok
}

// LiFiChainID resolves a chain alias to the Li.Fi numeric chain ID.
func LiFiChainID(chain string) (int, bool) {
	id, ok := lifiChains[strings.ToLower(chain)]
	return id, ok
}

// DefiLlamaChain resolves a chain alias to the DefiLlama chain name.
func DefiLlamaChain(chain string) (string, bool) {
	name, ok := defillamaChains[strings.ToLower(chain)]
	return name, ok
}
