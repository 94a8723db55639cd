package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	Port       string
	OTel       OTelConfig
	OpenRouter OpenRouterConfig
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// OpenRouterConfig holds the upstream completion endpoint configuration.
// SiteURL and AppName are sent as the HTTP-Referer and X-Title attribution
// headers on every upstream call.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	SiteURL string
	AppName string
	Timeout time.Duration
}

// Load loads configuration from environment variables.
// In development it first loads from a local .env file if one exists.
func Load() (Config, error) {
	if getEnv("GATEWAY_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("GATEWAY_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "switchboard"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  getEnv("OPENROUTER_API_KEY", ""),
			BaseURL: getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			SiteURL: getEnv("OPENROUTER_SITE_URL", "https://switchboard.dev"),
			AppName: getEnv("OPENROUTER_APP_NAME", "Switchboard"),
			Timeout: getEnvDuration("OPENROUTER_TIMEOUT_SECONDS", 60*time.Second),
		},
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// Enabled reports whether the upstream credential is configured. When it is
// not, the gateway runs with a degraded chat service instead of refusing to
// start.
func (c OpenRouterConfig) Enabled() bool {
	return c.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
