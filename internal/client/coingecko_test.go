package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/config"
)

func newCoinGeckoServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

// Without a key the client must reach the free-tier base URL and send no
// credential header at all.
func TestCoinGeckoFreeTier(t *testing.T) {
	var gotKey string
	srv := newCoinGeckoServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-cg-pro-api-key")
		_, _ = w.Write([]byte(`{"0xabc":{"usd":1.23,"usd_24h_change":4.5}}`))
	})

	cfg := config.CoinGeckoConfig{
		ProviderConfig: config.ProviderConfig{BaseURL: srv.URL, RequestTimeoutMillis: 5000, CacheTTLSeconds: 60},
		ProBaseURL:     "http://pro.invalid",
	}
	c := NewCoinGeckoClient(cfg, "", cache.New(time.Minute, 0), zap.NewNop())
	t.Cleanup(c.Close)

	price, err := c.TokenPrice(context.Background(), "base", "0xABC", PriceQuery{IncludeChange: true})
	require.NoError(t, err)
	assert.Empty(t, gotKey)
	assert.Equal(t, 1.23, price.PriceUSD)
	require.NotNil(t, price.Change24h)
	assert.InDelta(t, 4.5, *price.Change24h, 1e-9)
	assert.Equal(t, "0xabc", price.Address)
}

// With a key the client switches to the pro base URL and authenticates via
// the x-cg-pro-api-key header.
func TestCoinGeckoProTier(t *testing.T) {
	var gotKey string
	pro := newCoinGeckoServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-cg-pro-api-key")
		_, _ = w.Write([]byte(`{"bitcoin":{"usd":65000}}`))
	})

	cfg := config.CoinGeckoConfig{
		ProviderConfig: config.ProviderConfig{BaseURL: "http://free.invalid", RequestTimeoutMillis: 5000, CacheTTLSeconds: 60},
		ProBaseURL:     pro.URL,
	}
	c := NewCoinGeckoClient(cfg, "cg-test-key", cache.New(time.Minute, 0), zap.NewNop())
	t.Cleanup(c.Close)

	priced, err := c.PriceByID(context.Background(), "Bitcoin", PriceQuery{})
	require.NoError(t, err)
	assert.Equal(t, "cg-test-key", gotKey)
	assert.Equal(t, float64(65000), priced.USD)
}

func TestCoinGeckoTokenPriceParams(t *testing.T) {
	var gotQuery map[string]string
	base, _ := newTestBase(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/token_price/base", r.URL.Path)
		gotQuery = map[string]string{}
		for k, v := range r.URL.Query() {
			gotQuery[k] = v[0]
		}
		_, _ = w.Write([]byte(`{"0xabc":{"usd":1,"usd_market_cap":1000000}}`))
	})
	c := &CoinGeckoClient{base: base, logger: zap.NewNop()}

	price, err := c.TokenPrice(context.Background(), "base", "0xABC", PriceQuery{
		IncludeChange:    true,
		IncludeMarketCap: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "0xabc", gotQuery["contract_addresses"])
	assert.Equal(t, "usd", gotQuery["vs_currencies"])
	assert.Equal(t, "true", gotQuery["include_24hr_change"])
	assert.Equal(t, "true", gotQuery["include_market_cap"])
	require.NotNil(t, price.MarketCap)
	assert.Equal(t, float64(1000000), *price.MarketCap)
}

func TestCoinGeckoTokenPriceNotFound(t *testing.T) {
	base, _ := newTestBase(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	c := &CoinGeckoClient{base: base, logger: zap.NewNop()}

	_, err := c.TokenPrice(context.Background(), "base", "0xmissing", PriceQuery{})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Token not found")
}

func TestCoinGeckoTokenPriceUnsupportedChain(t *testing.T) {
	c := &CoinGeckoClient{logger: zap.NewNop()}

	_, err := c.TokenPrice(context.Background(), "doesnotexist", "0xabc", PriceQuery{})
	var unsupported *UnsupportedChainError
	require.ErrorAs(t, err, &unsupported)
}

func TestCoinGeckoTokenPricesBatchTruncates(t *testing.T) {
	var gotAddrs string
	base, _ := newTestBase(t, func(w http.ResponseWriter, r *http.Request) {
		gotAddrs = r.URL.Query().Get("contract_addresses")
		_, _ = w.Write([]byte(`{}`))
	})
	c := &CoinGeckoClient{base: base, logger: zap.NewNop()}

	addresses := make([]string, maxBatchAddresses+5)
	for i := range addresses {
		addresses[i] = "0xa"
	}
	_, err := c.TokenPrices(context.Background(), "ethereum", addresses)
	require.NoError(t, err)
	assert.Len(t, strings.Split(gotAddrs, ","), maxBatchAddresses)
}

func TestCoinGeckoTrendingAndSearch(t *testing.T) {
	base, _ := newTestBase(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search/trending":
			_, _ = w.Write([]byte(`{"coins":[{"item":{"name":"Pepe","symbol":"PEPE","market_cap_rank":40,"price_btc":0.00000002}}]}`))
		case "/search":
			assert.Equal(t, "pepe", r.URL.Query().Get("query"))
			_, _ = w.Write([]byte(`{"coins":[{"id":"pepe","name":"Pepe","symbol":"PEPE","market_cap_rank":40}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	c := &CoinGeckoClient{base: base, logger: zap.NewNop()}

	trending, err := c.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, "PEPE", trending[0].Item.Symbol)

	coins, err := c.SearchCoins(context.Background(), "pepe")
	require.NoError(t, err)
	require.Len(t, coins, 1)
	assert.Equal(t, "pepe", coins[0].ID)
}
