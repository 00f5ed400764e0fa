// Package restapi exposes the provider clients over HTTP for non-MCP
// consumers (dashboards, scripts, health checks).
package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter configures and returns the Gin router instance.
func SetupRouter(h *Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger.Named("http")))
	router.Use(cors.Default())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/security/:chain/:address", h.GetTokenSecurity)
		v1.GET("/price/coin/:id", h.GetCoinPrice)
		v1.GET("/price/:chain/:address", h.GetTokenPrice)
		v1.GET("/yields", h.GetYields)
		v1.GET("/bridge/quote", h.GetBridgeQuote)
		v1.GET("/chains", h.GetSupportedChains)
		v1.GET("/trending", h.GetTrending)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}
