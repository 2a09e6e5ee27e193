package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port                 string   `mapstructure:"PORT"`
	Env                  string   `mapstructure:"ENV"`
	CORSOrigins          []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS         float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst       int      `mapstructure:"RATE_LIMIT_BURST"`
	MatchAutoThreshold   float64  `mapstructure:"MATCH_AUTO_THRESHOLD"`
	MatchReviewThreshold float64  `mapstructure:"MATCH_REVIEW_THRESHOLD"`
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
	v.SetDefault("MATCH_AUTO_THRESHOLD", 0.90)
	v.SetDefault("MATCH_REVIEW_THRESHOLD", 0.70)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("MATCH_AUTO_THRESHOLD")
	v.BindEnv("MATCH_REVIEW_THRESHOLD")

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

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. The matcher
// thresholds must stay inside (0, 1] and keep auto at or above review,
// otherwise the tiering in the matching service is meaningless.
func (c *Config) Validate() error {
	if c.MatchAutoThreshold <= 0 || c.MatchAutoThreshold > 1 {
		return fmt.Errorf("MATCH_AUTO_THRESHOLD must be in (0, 1], got %v", c.MatchAutoThreshold)
	}
	if c.MatchReviewThreshold <= 0 || c.MatchReviewThreshold > 1 {
		return fmt.Errorf("MATCH_REVIEW_THRESHOLD must be in (0, 1], got %v", c.MatchReviewThreshold)
	}
	if c.MatchReviewThreshold > c.MatchAutoThreshold {
		return fmt.Errorf("MATCH_REVIEW_THRESHOLD (%v) must not exceed MATCH_AUTO_THRESHOLD (%v)",
			c.MatchReviewThreshold, c.MatchAutoThreshold)
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive, got %v", c.RateLimitRPS)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	return nil
}
