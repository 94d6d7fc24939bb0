// Package config provides configuration management for the wallet wrapped
// service. It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
	Redis     RedisConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
	Chain     ChainConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ProvidersConfig holds upstream data provider configuration
type ProvidersConfig struct {
	Moralis MoralisConfig
	Neynar  NeynarConfig
	Alchemy AlchemyConfig
}

// MoralisConfig holds Moralis API configuration
type MoralisConfig struct {
	APIKey            string
	BaseURL           string
	RequestsPerSecond float64
	Timeout           time.Duration
}

// NeynarConfig holds Neynar API configuration
type NeynarConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// AlchemyConfig holds Alchemy NFT API configuration
type AlchemyConfig struct {
	APIKey          string
	BaseURL         string
	ContractAddress string
	Timeout         time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host           string
	Port           string
	Password       string
	DB             int
	MaxConnections int
}

// CacheConfig holds snapshot cache configuration
type CacheConfig struct {
	TTL time.Duration
}

// RateLimitConfig holds API rate limit configuration
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// ChainConfig holds chain defaults
type ChainConfig struct {
	Default string
}

// LoadConfig loads configuration from environment variables, reading a
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "8080"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Providers: ProvidersConfig{
			Moralis: MoralisConfig{
				APIKey:            getEnv("MORALIS_API_KEY", ""),
				BaseURL:           getEnv("MORALIS_BASE_URL", "https://deep-index.moralis.io/api/v2.2"),
				RequestsPerSecond: getEnvFloat("MORALIS_RPS", 3),
				Timeout:           getEnvDuration("MORALIS_TIMEOUT", 15*time.Second),
			},
			Neynar: NeynarConfig{
				APIKey:  getEnv("NEYNAR_API_KEY", ""),
				BaseURL: getEnv("NEYNAR_BASE_URL", "https://api.neynar.com/v2/farcaster"),
				Timeout: getEnvDuration("NEYNAR_TIMEOUT", 10*time.Second),
			},
			Alchemy: AlchemyConfig{
				APIKey:          getEnv("ALCHEMY_API_KEY", ""),
				BaseURL:         getEnv("ALCHEMY_BASE_URL", "https://base-mainnet.g.alchemy.com"),
				ContractAddress: getEnv("WARPLET_NFT_CONTRACT", ""),
				Timeout:         getEnvDuration("ALCHEMY_TIMEOUT", 10*time.Second),
			},
		},
		Redis: RedisConfig{
			Host:           getEnv("REDIS_HOST", "localhost"),
			Port:           getEnv("REDIS_PORT", "6379"),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             getEnvInt("REDIS_DB", 0),
			MaxConnections: getEnvInt("REDIS_MAX_CONNECTIONS", 10),
		},
		Cache: CacheConfig{
			TTL: getEnvDuration("CACHE_TTL", time.Hour),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvInt("RATE_LIMIT_RPS", 10),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 20),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Chain: ChainConfig{
			Default: getEnv("DEFAULT_CHAIN", "base"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Providers.Moralis.APIKey == "" {
		return fmt.Errorf("MORALIS_API_KEY is required")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %d", c.RateLimit.RequestsPerSecond)
	}
	return nil
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an int or a default
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvFloat returns the environment variable as a float64 or a default
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

// getEnvDuration returns the environment variable as a duration or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
