package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrConfigurationMissing means the Gemini API key is not set. Nothing
// can be reviewed without it.
var ErrConfigurationMissing = errors.New("Google API Key belum diatur: set PROOFREAD_GEMINI_API_KEY (or GOOGLE_API_KEY)")

// Config holds all application configuration.
type Config struct {
	Gemini GeminiConfig
	Review ReviewConfig
	Server ServerConfig
	Log    LogConfig
}

// GeminiConfig holds model service settings.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	BaseURL     string `mapstructure:"base_url"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxRetries  int    `mapstructure:"max_retries"`
}

// Timeout returns the per-request timeout.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSecs) * time.Second
}

// ReviewConfig holds pipeline settings.
type ReviewConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxUploadMB  int64         `mapstructure:"max_upload_mb"`
	Environment  string        `mapstructure:"environment"`
}

// MaxUploadBytes returns the upload limit in bytes.
func (s ServerConfig) MaxUploadBytes() int64 {
	return s.MaxUploadMB << 20
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the PROOFREAD_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PROOFREAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.base_url", "")
	v.SetDefault("gemini.timeout_secs", 60)
	v.SetDefault("gemini.max_retries", 2)

	v.SetDefault("review.concurrency", 4)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "10m")
	v.SetDefault("server.max_upload_mb", 20)
	v.SetDefault("server.environment", "development")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"gemini.api_key":       "PROOFREAD_GEMINI_API_KEY",
		"gemini.model":         "PROOFREAD_GEMINI_MODEL",
		"gemini.base_url":      "PROOFREAD_GEMINI_BASE_URL",
		"gemini.timeout_secs":  "PROOFREAD_GEMINI_TIMEOUT_SECS",
		"gemini.max_retries":   "PROOFREAD_GEMINI_MAX_RETRIES",
		"review.concurrency":   "PROOFREAD_REVIEW_CONCURRENCY",
		"server.addr":          "PROOFREAD_SERVER_ADDR",
		"server.read_timeout":  "PROOFREAD_SERVER_READ_TIMEOUT",
		"server.write_timeout": "PROOFREAD_SERVER_WRITE_TIMEOUT",
		"server.max_upload_mb": "PROOFREAD_SERVER_MAX_UPLOAD_MB",
		"server.environment":   "PROOFREAD_SERVER_ENVIRONMENT",
		"log.level":            "PROOFREAD_LOG_LEVEL",
		"log.format":           "PROOFREAD_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// The Google SDKs read these names; accept them too.
	if cfg.Gemini.APIKey == "" {
		for _, env := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
			if key := os.Getenv(env); key != "" {
				cfg.Gemini.APIKey = key
				break
			}
		}
	}
	// Platforms like Railway and Render set PORT.
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PROOFREAD_SERVER_ADDR") == "" {
		cfg.Server.Addr = ":" + port
	}
	return cfg, nil
}

// Validate reports ErrConfigurationMissing when the API key is absent.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrConfigurationMissing
	}
	return nil
}
