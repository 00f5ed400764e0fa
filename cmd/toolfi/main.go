package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"toolfi/internal/cache"
	"toolfi/internal/config"
	"toolfi/internal/mcpserver"
	"toolfi/internal/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP protocol, so all logging goes to stderr.
	zapLogger, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	creds := config.LoadCredentials()
	if creds.GoPlusAPIKey == "" {
		zapLogger.Info("GOPLUS_API_KEY not set, using free tier")
	}
	if creds.CoinGeckoAPIKey == "" {
		zapLogger.Info("COINGECKO_API_KEY not set, using free tier")
	}

	store := cache.New(
		time.Duration(cfg.Cache.DefaultTTLSeconds)*time.Second,
		time.Duration(cfg.Cache.CleanupIntervalMinutes)*time.Minute,
	)

	clients := mcpserver.NewClients(cfg, creds, store, zapLogger)
	defer clients.Close()

	s := mcpserver.NewServer(clients, zapLogger)
	zapLogger.Info("MCP server starting on stdio")
	if err := server.ServeStdio(s); err != nil {
		zapLogger.Fatal("MCP server stopped", zap.Error(err))
	}
}
