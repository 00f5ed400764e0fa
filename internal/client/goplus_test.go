package client

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/config"
	domain "toolfi/internal/domain/entity"
	"toolfi/internal/entity"
)

func newGoPlusForTest(t *testing.T, handler http.HandlerFunc) *GoPlusClient {
	t.Helper()
	base, _ := newTestBase(t, handler)
	c := &GoPlusClient{base: base, logger: zap.NewNop()}
	t.Cleanup(c.Close)
	return c
}

func TestSecurityFromRaw(t *testing.T) {
	raw := entity.GoPlusTokenData{
		TokenName:            "Example",
		TokenSymbol:          "EXM",
		IsHoneypot:           "0",
		BuyTax:               "0.05",
		SellTax:              "0.2",
		IsMintable:           "1",
		CanTakeBackOwnership: "0",
		OwnerChangeBalance:   "0",
		HiddenOwner:          "0",
		IsBlacklisted:        "1",
		TransferPausable:     "0",
		IsProxy:              "0",
		IsOpenSource:         "1",
		TotalSupply:          "1000000",
		HolderCount:          "4213",
		LpHolderCount:        "12",
		IsInCex: entity.GoPlusCexListing{
			Listed:  "1",
			CexList: []string{"binance"},
		},
	}

	sec := securityFromRaw("eth", "0xabc", raw)
	assert.Equal(t, "Example", sec.Name)
	assert.Equal(t, "EXM", sec.Symbol)
	assert.False(t, sec.IsHoneypot)
	assert.InDelta(t, 0.05, sec.BuyTax, 1e-9)
	assert.InDelta(t, 0.2, sec.SellTax, 1e-9)
	assert.True(t, sec.IsMintable)
	assert.True(t, sec.IsBlacklisted)
	assert.True(t, sec.IsOpenSource)
	assert.Equal(t, 4213, sec.HolderCount)
	assert.Equal(t, 12, sec.LpHolderCount)
	assert.True(t, sec.IsInCex)
	assert.Equal(t, []string{"binance"}, sec.CexList)
}

func TestGoPlusParsingToleratesGarbage(t *testing.T) {
	sec := securityFromRaw("eth", "0xabc", entity.GoPlusTokenData{
		BuyTax:      "not-a-number",
		HolderCount: "",
	})
	assert.Zero(t, sec.BuyTax)
	assert.Zero(t, sec.HolderCount)
}

func TestTokenSecurityUnsupportedChain(t *testing.T) {
	c := newGoPlusForTest(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an unsupported chain")
	})

	_, err := c.TokenSecurity(context.Background(), "doesnotexist", "0xabc")
	var unsupported *UnsupportedChainError
	require.ErrorAs(t, err, &unsupported)
	assert.Contains(t, err.Error(), "Unsupported chain")
}

func TestTokenSecurityEndToEnd(t *testing.T) {
	const addr = "0x1234567890abcdef1234567890abcdef12345678"
	c := newGoPlusForTest(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token_security/1", r.URL.Path)
		assert.Equal(t, addr, r.URL.Query().Get("contract_addresses"))
		_, _ = w.Write([]byte(`{
			"code": 1,
			"message": "OK",
			"result": {
				"` + addr + `": {
					"token_name": "Honey",
					"token_symbol": "HNY",
					"is_honeypot": "1",
					"is_open_source": "1"
				}
			}
		}`))
	})

	// Address arrives mixed-case; the client must normalize before lookup.
	sec, err := c.TokenSecurity(context.Background(), "ETH", "  0x1234567890ABCDEF1234567890abcdef12345678 ")
	require.NoError(t, err)
	assert.Equal(t, addr, sec.Address)
	assert.True(t, sec.IsHoneypot)
	assert.Equal(t, 100, sec.RiskScore)
	assert.Equal(t, domain.RiskCritical, sec.RiskLevel)
	require.Len(t, sec.RiskFactors, 1)
	assert.Contains(t, sec.RiskFactors[0], "Honeypot")
}

func TestTokenSecurityNotFound(t *testing.T) {
	c := newGoPlusForTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 1, "message": "OK", "result": {}}`))
	})

	_, err := c.TokenSecurity(context.Background(), "eth", "0xdead")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "Token not found")
}

func TestTokenSecurityAPILevelError(t *testing.T) {
	c := newGoPlusForTest(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code": 2004, "message": "contract address format error"}`))
	})

	_, err := c.TokenSecurity(context.Background(), "eth", "0xdead")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract address format error")
}

func TestNewGoPlusClientWithKeySendsBearer(t *testing.T) {
	var gotAuth string
	_, srv := newTestBase(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"code": 1, "result": []}`))
	})

	cfg := config.ProviderConfig{
		BaseURL:              srv.URL,
		RequestTimeoutMillis: 2000,
		CacheTTLSeconds:      60,
	}
	c := NewGoPlusClient(cfg, "sekrit", cache.New(time.Minute, 0), zap.NewNop())
	t.Cleanup(c.Close)

	_, err := c.SupportedChains(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer sekrit", gotAuth)
}
