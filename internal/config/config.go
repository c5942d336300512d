package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all environment backed configuration for content-api.
type Config struct {
	// HTTP Server
	HTTPPort     int  `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort  int  `env:"METRICS_PORT" envDefault:"9091"`
	PprofEnabled bool `env:"PPROF_ENABLED" envDefault:"false"`
	PprofPort    int  `env:"PPROF_PORT" envDefault:"6060"`

	// Provider credentials and endpoints. A provider with no API key is
	// simply not constructed.
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel   string        `env:"OPENAI_MODEL" envDefault:"gpt-4o"`
	OpenAITimeout time.Duration `env:"OPENAI_TIMEOUT" envDefault:"60s"`

	AnthropicAPIKey  string        `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL string        `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`
	AnthropicModel   string        `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	AnthropicTimeout time.Duration `env:"ANTHROPIC_TIMEOUT" envDefault:"60s"`

	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GeminiModel   string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-pro"`
	GeminiTimeout time.Duration `env:"GEMINI_TIMEOUT" envDefault:"45s"`

	// Provider bootstrap file (overrides the env-backed provider block)
	ProviderConfigsEnabled bool                     `env:"PROVIDER_CONFIGS" envDefault:"false"`
	ProviderConfigSet      string                   `env:"PROVIDER_CONFIG_SET" envDefault:"default"`
	ProviderConfigFile     string                   `env:"PROVIDER_CONFIGS_FILE"`
	ProviderBootstrap      *ProviderBootstrapConfig `env:"-"`

	// Availability sweep
	AvailabilitySweepEnabled         bool `env:"AVAILABILITY_SWEEP_ENABLED" envDefault:"true"`
	AvailabilitySweepIntervalMinutes int  `env:"AVAILABILITY_SWEEP_INTERVAL_MINUTES" envDefault:"5"`

	// Observability / Logging
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"content-api"`
	ServiceNamespace string `env:"SERVICE_NAMESPACE" envDefault:"brandforge"`
	Environment      string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.ProviderConfigSet = strings.TrimSpace(cfg.ProviderConfigSet)
	if cfg.ProviderConfigSet == "" {
		cfg.ProviderConfigSet = "default"
	}

	if cfg.ProviderConfigsEnabled {
		configFile := strings.TrimSpace(cfg.ProviderConfigFile)
		if configFile == "" {
			configFile = DefaultProviderConfigFile
		}
		bootstrap, err := LoadProviderBootstrapConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("load provider configs: %w", err)
		}
		cfg.ProviderBootstrap = bootstrap
		if len(bootstrap.ProvidersForSet(cfg.ProviderConfigSet)) == 0 {
			return nil, fmt.Errorf("provider config set %q is missing or empty in %s", cfg.ProviderConfigSet, configFile)
		}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, nil
}

// ProviderEntry is one resolved provider definition. Entry order is the
// dispatch and tie-break order downstream.
type ProviderEntry struct {
	Kind    string
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// ProviderEntries returns the configured providers in configuration order.
// With the bootstrap file enabled the active set wins; otherwise the
// env-backed provider block is used, skipping providers without credentials.
func (c *Config) ProviderEntries() []ProviderEntry {
	if c.ProviderBootstrap != nil {
		return c.ProviderBootstrap.ProvidersForSet(c.ProviderConfigSet)
	}

	entries := make([]ProviderEntry, 0, 3)
	if strings.TrimSpace(c.OpenAIAPIKey) != "" {
		entries = append(entries, ProviderEntry{
			Kind:    "openai",
			APIKey:  c.OpenAIAPIKey,
			BaseURL: c.OpenAIBaseURL,
			Model:   c.OpenAIModel,
			Timeout: c.OpenAITimeout,
		})
	}
	if strings.TrimSpace(c.AnthropicAPIKey) != "" {
		entries = append(entries, ProviderEntry{
			Kind:    "anthropic",
			APIKey:  c.AnthropicAPIKey,
			BaseURL: c.AnthropicBaseURL,
			Model:   c.AnthropicModel,
			Timeout: c.AnthropicTimeout,
		})
	}
	if strings.TrimSpace(c.GeminiAPIKey) != "" {
		entries = append(entries, ProviderEntry{
			Kind:    "gemini",
			APIKey:  c.GeminiAPIKey,
			BaseURL: c.GeminiBaseURL,
			Model:   c.GeminiModel,
			Timeout: c.GeminiTimeout,
		})
	}
	return entries
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
