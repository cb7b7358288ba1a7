package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port                  string   `mapstructure:"PORT"`
	Env                   string   `mapstructure:"ENV"`
	DataDir               string   `mapstructure:"DATA_DIR"`
	OpenAIAPIKey          string   `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel           string   `mapstructure:"OPENAI_MODEL"`
	LLMTimeoutSeconds     int      `mapstructure:"LLM_TIMEOUT_SECONDS"`
	RequestTimeoutSeconds int      `mapstructure:"REQUEST_TIMEOUT_SECONDS"`
	CORSOrigins           []string `mapstructure:"CORS_ORIGINS"`
	DefaultLat            float64  `mapstructure:"DEFAULT_LAT"`
	DefaultLng            float64  `mapstructure:"DEFAULT_LNG"`
	AyushmanValidUntil    string   `mapstructure:"AYUSHMAN_VALID_UNTIL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	// Defaults. The fallback coordinate is the Delhi reference point used
	// whenever a caller supplies no location.
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_TIMEOUT_SECONDS", 30)
	v.SetDefault("REQUEST_TIMEOUT_SECONDS", 60)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("DEFAULT_LAT", 28.6139)
	v.SetDefault("DEFAULT_LNG", 77.2090)
	v.SetDefault("AYUSHMAN_VALID_UNTIL", "2026-12-31")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("OPENAI_MODEL")
	v.BindEnv("LLM_TIMEOUT_SECONDS")
	v.BindEnv("REQUEST_TIMEOUT_SECONDS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("DEFAULT_LAT")
	v.BindEnv("DEFAULT_LNG")
	v.BindEnv("AYUSHMAN_VALID_UNTIL")

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

// LLMTimeout returns the classifier call deadline.
func (c *Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

// RequestTimeout returns the per-request deadline.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Validate checks that the configuration is safe to run. The classifier
// degrades to its fallback without an API key, so the key is only required in
// production.
func (c *Config) Validate() error {
	if c.IsProduction() && c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required in production")
	}
	if c.LLMTimeoutSeconds <= 0 {
		return fmt.Errorf("LLM_TIMEOUT_SECONDS must be positive, got %d", c.LLMTimeoutSeconds)
	}
	if c.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be positive, got %d", c.RequestTimeoutSeconds)
	}
	if c.DefaultLat < -90 || c.DefaultLat > 90 || c.DefaultLng < -180 || c.DefaultLng > 180 {
		return fmt.Errorf("DEFAULT_LAT/DEFAULT_LNG out of range: %f, %f", c.DefaultLat, c.DefaultLng)
	}
	return nil
}
