package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string   `mapstructure:"PORT"`
	Env             string   `mapstructure:"ENV"`
	DatabaseURL     string   `mapstructure:"DATABASE_URL"`
	DBMaxConns      int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns      int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins     []string `mapstructure:"CORS_ORIGINS"`
	AuthJWTSecret   string   `mapstructure:"AUTH_JWT_SECRET"`
	ModelEndpoint   string   `mapstructure:"MODEL_ENDPOINT"`
	ModelAPIKey     string   `mapstructure:"MODEL_API_KEY"`
	ModelName       string   `mapstructure:"MODEL_NAME"`
	ModelTimeoutSec int      `mapstructure:"MODEL_TIMEOUT_SECONDS"`
	ModelMaxTokens  int      `mapstructure:"MODEL_MAX_TOKENS"`
	RateLimitRPS    float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("MODEL_ENDPOINT", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("MODEL_NAME", "gpt-4.1")
	v.SetDefault("MODEL_TIMEOUT_SECONDS", 60)
	v.SetDefault("MODEL_MAX_TOKENS", 1000)
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("AUTH_JWT_SECRET")
	v.BindEnv("MODEL_ENDPOINT")
	v.BindEnv("MODEL_API_KEY")
	v.BindEnv("MODEL_NAME")
	v.BindEnv("MODEL_TIMEOUT_SECONDS")
	v.BindEnv("MODEL_MAX_TOKENS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

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

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Missing credentials
// fail here, at startup, instead of deep inside a request.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.AuthJWTSecret == "" {
		return fmt.Errorf("AUTH_JWT_SECRET is required")
	}
	if c.ModelAPIKey == "" {
		return fmt.Errorf("MODEL_API_KEY is required")
	}
	if c.ModelEndpoint == "" {
		return fmt.Errorf("MODEL_ENDPOINT is required")
	}
	if c.ModelTimeoutSec <= 0 {
		return fmt.Errorf("MODEL_TIMEOUT_SECONDS must be positive, got %d", c.ModelTimeoutSec)
	}
	return nil
}
