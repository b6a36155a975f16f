package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string   `mapstructure:"PORT"`
	Env              string   `mapstructure:"ENV"`
	StationURL       string   `mapstructure:"STATION_URL"`
	RedisURL         string   `mapstructure:"REDIS_URL"`
	AuthTokenURL     string   `mapstructure:"AUTH_TOKEN_URL"`
	AuthClientID     string   `mapstructure:"AUTH_CLIENT_ID"`
	AuthClientSecret string   `mapstructure:"AUTH_CLIENT_SECRET"`
	AuthAudience     string   `mapstructure:"AUTH_AUDIENCE"`
	AuthSigningKey   string   `mapstructure:"AUTH_SIGNING_KEY"`
	CORSOrigins      []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS     float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int      `mapstructure:"RATE_LIMIT_BURST"`
	ResponseCacheTTL int      `mapstructure:"RESPONSE_CACHE_TTL_SECONDS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("RESPONSE_CACHE_TTL_SECONDS", 300)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("STATION_URL")
	v.BindEnv("REDIS_URL")
	v.BindEnv("AUTH_TOKEN_URL")
	v.BindEnv("AUTH_CLIENT_ID")
	v.BindEnv("AUTH_CLIENT_SECRET")
	v.BindEnv("AUTH_AUDIENCE")
	v.BindEnv("AUTH_SIGNING_KEY")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("RESPONSE_CACHE_TTL_SECONDS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.StationURL == "" {
		return nil, fmt.Errorf("STATION_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ResponseCacheDuration returns the TTL for the in-memory GET response cache.
func (c *Config) ResponseCacheDuration() time.Duration {
	if c.ResponseCacheTTL <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.ResponseCacheTTL) * time.Second
}

// Validate checks that the configuration is safe to run. Outside
// development a signing key must be set so the bearer guard can verify
// inbound tokens, and the upstream token source must be configured.
func (c *Config) Validate() error {
	if c.IsDev() {
		return nil
	}
	if c.AuthSigningKey == "" {
		return fmt.Errorf("AUTH_SIGNING_KEY is required when ENV=%q", c.Env)
	}
	if c.AuthTokenURL == "" {
		return fmt.Errorf("AUTH_TOKEN_URL is required when ENV=%q", c.Env)
	}
	if c.AuthClientID == "" || c.AuthClientSecret == "" {
		return fmt.Errorf("AUTH_CLIENT_ID and AUTH_CLIENT_SECRET are required when ENV=%q", c.Env)
	}
	return nil
}
