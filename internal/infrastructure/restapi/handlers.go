package restapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"toolfi/internal/client"
)

// Handler serves the REST endpoints over the four provider clients.
type Handler struct {
	goplus    *client.GoPlusClient
	coingecko *client.CoinGeckoClient
	defillama *client.DefiLlamaClient
	lifi      *client.LiFiClient
	logger    *zap.Logger
}

// NewHandler creates the REST handler.
func NewHandler(
	goplus *client.GoPlusClient,
	coingecko *client.CoinGeckoClient,
	defillama *client.DefiLlamaClient,
	lifi *client.LiFiClient,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		goplus:    goplus,
		coingecko: coingecko,
		defillama: defillama,
		lifi:      lifi,
		logger:    logger.Named("RestHandler"),
	}
}

// GetTokenSecurity handles GET /api/v1/security/:chain/:address.
func (h *Handler) GetTokenSecurity(c *gin.Context) {
	sec, err := h.goplus.TokenSecurity(c.Request.Context(), c.Param("chain"), c.Param("address"))
	if err != nil {
		h.abortWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sec})
}

// GetTokenPrice handles GET /api/v1/price/:chain/:address.
func (h *Handler) GetTokenPrice(c *gin.Context) {
	q := client.PriceQuery{
		IncludeChange:    true,
		IncludeMarketCap: c.Query("include_market_cap") == "true",
		IncludeVolume:    c.Query("include_volume") == "true",
	}
	price, err := h.coingecko.TokenPrice(c.Request.Context(), c.Param("chain"), c.Param("address"), q)
	if err != nil {
		h.abortWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": price})
}

// GetCoinPrice handles GET /api/v1/price/coin/:id.
func (h *Handler) GetCoinPrice(c *gin.Context) {
	priced, err := h.coingecko.PriceByID(c.Request.Context(), c.Param("id"), client.PriceQuery{IncludeChange: true})
	if err != nil {
		h.abortWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": priced})
}

// GetYields handles GET /api/v1/yields.
func (h *Handler) GetYields(c *gin.Context) {
	filter := client.PoolFilter{
		Chain:          c.Query("chain"),
		Project:        c.Query("project"),
		MinTVL:         queryFloat(c, "min_tvl", 100000),
		MinAPY:         queryFloat(c, "min_apy", 1),
		MaxAPY:         queryFloat(c, "max_apy", 100),
		StablecoinOnly: c.Query("stablecoin_only") == "true",
		SingleExposure: c.Query("single_exposure") == "true",
		Limit:          queryInt(c, "limit", 20),
	}
	pools, err := h.defillama.Pools(c.Request.Context(), filter)
	if err != nil {
		h.abortWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(pools), "data": pools})
}

// GetBridgeQuote handles GET /api/v1/bridge/quote.
func (h *Handler) GetBridgeQuote(c *gin.Context) {
	req := client.QuoteRequest{
		FromChain:   c.Query("from_chain"),
		ToChain:     c.Query("to_chain"),
		FromToken:   c.Query("from_token"),
		ToToken:     c.Query("to_token"),
		Amount:      c.Query("amount"),
		FromAddress: c.Query("from_address"),
	}
	if req.FromChain == "" || req.ToChain == "" || req.FromToken == "" ||
		req.ToToken == "" || req.Amount == "" || req.FromAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "from_chain, to_chain, from_token, to_token, amount and from_address are required",
		})
		return
	}

	quote, err := h.lifi.Quote(c.Request.Context(), req)
	if err != nil {
		h.abortWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": quote})
}

// GetSupportedChains handles GET /api/v1/chains.
func (h *Handler) GetSupportedChains(c *gin.Context) {
	goplusChains, err := h.goplus.SupportedChains(c.Request.Context())
	if err != nil {
		h.abortWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"goplus": goplusChains}})
}

// GetTrending handles GET /api/v1/trending.
func (h *Handler) GetTrending(c *gin.Context) {
	trending, err := h.coingecko.Trending(c.Request.Context())
	if err != nil {
		h.abortWithClientError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trending})
}

// abortWithClientError maps a client error onto an HTTP status: bad input is
// the caller's fault, everything upstream is a gateway problem.
func (h *Handler) abortWithClientError(c *gin.Context, err error) {
	var unsupported *client.UnsupportedChainError
	var notFound *client.NotFoundError
	var upstream *client.UpstreamError

	status := http.StatusBadGateway
	switch {
	case errors.As(err, &unsupported):
		status = http.StatusBadRequest
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.Is(err, client.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, client.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.As(err, &upstream):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		h.logger.Warn("upstream request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func queryFloat(c *gin.Context, key string, def float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
