package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the overall configuration for the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Cache     CacheConfig     `yaml:"cache"`
	GoPlus    ProviderConfig  `yaml:"goPlus"`
	CoinGecko CoinGeckoConfig `yaml:"coinGecko"`
	DefiLlama DefiLlamaConfig `yaml:"defiLlama"`
	LiFi      ProviderConfig  `yaml:"liFi"`
}

// ServerConfig holds the REST server configuration.
type ServerConfig struct {
	Port         string `yaml:"port"`
	ReadTimeout  int    `yaml:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout"`
	IdleTimeout  int    `yaml:"idleTimeout"`
}

// LoggingConfig holds the configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // e.g. "debug", "info", "warn", "error"
}

// CacheConfig holds configuration for the shared response cache.
type CacheConfig struct {
	DefaultTTLSeconds      int `yaml:"defaultTTLSeconds"`
	CleanupIntervalMinutes int `yaml:"cleanupIntervalMinutes"`
}

// ProviderConfig holds the common per-provider client configuration.
type ProviderConfig struct {
	BaseURL              string `yaml:"baseURL"`
	RequestTimeoutMillis int64  `yaml:"requestTimeoutMillis"`
	CacheTTLSeconds      int    `yaml:"cacheTTLSeconds"`
}

// CoinGeckoConfig extends ProviderConfig with the pro-tier base URL, used
// when an API key is configured.
type CoinGeckoConfig struct {
	ProviderConfig `yaml:",inline"`
	ProBaseURL     string `yaml:"proBaseURL"`
}

// DefiLlamaConfig extends ProviderConfig with the separate TVL API base URL.
type DefiLlamaConfig struct {
	ProviderConfig `yaml:",inline"`
	TVLBaseURL     string `yaml:"tvlBaseURL"`
}

// Credentials holds the upstream API keys, read once from the environment.
// An empty key means free-tier operation, never a startup failure.
type Credentials struct {
	GoPlusAPIKey    string
	CoinGeckoAPIKey string
}

// LoadCredentials reads the provider API keys from the environment.
func LoadCredentials() Credentials {
	return Credentials{
		GoPlusAPIKey:    os.Getenv("GOPLUS_API_KEY"),
		CoinGeckoAPIKey: os.Getenv("COINGECKO_API_KEY"),
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is not an
// error: the defaults are complete enough to run against the public APIs.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		logrus.Warnf("Config file %s not found, using defaults", path)
	case err != nil:
		logrus.Errorf("Failed to read config file %s: %v", path, err)
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		logrus.Infof("Loading configuration from path: %s", path)
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			logrus.Errorf("Failed to unmarshal config data from %s: %v", path, err)
			return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	logrus.Info("Configuration loaded successfully.")
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Cache.DefaultTTLSeconds == 0 {
		c.Cache.DefaultTTLSeconds = 60
	}
	if c.Cache.CleanupIntervalMinutes == 0 {
		c.Cache.CleanupIntervalMinutes = 10
	}

	applyProviderDefaults(&c.GoPlus, "https://api.gopluslabs.io/api/v1", 300)
	applyProviderDefaults(&c.CoinGecko.ProviderConfig, "https://api.coingecko.com/api/v3", 60)
	if c.CoinGecko.ProBaseURL == "" {
		c.CoinGecko.ProBaseURL = "https://pro-api.coingecko.com/api/v3"
	}
	applyProviderDefaults(&c.DefiLlama.ProviderConfig, "https://yields.llama.fi", 300)
	if c.DefiLlama.TVLBaseURL == "" {
		c.DefiLlama.TVLBaseURL = "https://api.llama.fi"
	}
	applyProviderDefaults(&c.LiFi, "https://li.quest/v1", 30)
}

func applyProviderDefaults(p *ProviderConfig, baseURL string, ttlSeconds int) {
	if p.BaseURL == "" {
		p.BaseURL = baseURL
	}
	if p.RequestTimeoutMillis == 0 {
		p.RequestTimeoutMillis = 30000
	}
	if p.CacheTTLSeconds == 0 {
		p.CacheTTLSeconds = ttlSeconds
	}
}
