package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"brandforge/services/content-api/internal/infrastructure/logger"
)

const DefaultProviderConfigFile = "config/providers.yml"

// ProviderBootstrapConfig maintains the provider sets parsed from the yaml
// bootstrap file, keyed by set name. Entry order within a set is preserved.
type ProviderBootstrapConfig struct {
	sets map[string][]ProviderEntry
}

// ProvidersForSet returns a copy of the providers defined for the requested set.
func (c *ProviderBootstrapConfig) ProvidersForSet(name string) []ProviderEntry {
	if c == nil {
		return nil
	}
	set := strings.TrimSpace(name)
	if set == "" {
		set = "default"
	}
	list := c.sets[set]
	if len(list) == 0 {
		return nil
	}
	result := make([]ProviderEntry, len(list))
	copy(result, list)
	return result
}

// LoadProviderBootstrapConfig parses the yaml file at the provided path.
func LoadProviderBootstrapConfig(path string) (*ProviderBootstrapConfig, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("provider config path is empty")
	}

	log := logger.GetLogger()
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("read provider config %q: %w", cleanPath, err)
	}
	log.Info().Str("path", cleanPath).Msg("loading provider config file")

	var doc providerConfigDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse provider config %q: %w", cleanPath, err)
	}
	if len(doc.Providers) == 0 {
		return nil, fmt.Errorf("provider config %q has no providers defined", cleanPath)
	}

	result := &ProviderBootstrapConfig{
		sets: make(map[string][]ProviderEntry),
	}

	for rawSet, entries := range doc.Providers {
		setName := strings.TrimSpace(rawSet)
		if setName == "" || len(entries) == 0 {
			continue
		}
		for idx, entry := range entries {
			entryLogger := log.With().Str("set", setName).Int("index", idx).Str("kind", entry.Kind).Logger()
			enabled, err := parseEnabled(entry.EnableRaw)
			if err != nil {
				return nil, fmt.Errorf("providers.%s[%d]: %w", setName, idx, err)
			}
			if !enabled {
				entryLogger.Info().Msg("skipping provider (enable=false)")
				continue
			}
			normalized, err := normalizeProviderEntry(entry)
			if err != nil {
				return nil, fmt.Errorf("providers.%s[%d]: %w", setName, idx, err)
			}
			entryLogger.Info().
				Str("model", normalized.Model).
				Str("base_url", normalized.BaseURL).
				Dur("timeout", normalized.Timeout).
				Msg("including provider for bootstrap")
			result.sets[setName] = append(result.sets[setName], normalized)
		}
	}

	if len(result.sets) == 0 {
		return nil, fmt.Errorf("provider config %q has no valid provider entries", cleanPath)
	}

	return result, nil
}

type providerConfigDocument struct {
	Providers map[string][]providerConfigEntry `yaml:"providers"`
}

type providerConfigEntry struct {
	EnableRaw string `yaml:"enable"`
	Kind      string `yaml:"kind"`
	Vendor    string `yaml:"vendor"`
	URL       string `yaml:"url"`
	BaseURL   string `yaml:"base_url"`
	APIKey    string `yaml:"api_key"`
	Key       string `yaml:"key"`
	Model     string `yaml:"model"`
	Timeout   string `yaml:"timeout"`
}

func normalizeProviderEntry(entry providerConfigEntry) (ProviderEntry, error) {
	kind := strings.ToLower(strings.TrimSpace(firstNonEmpty(entry.Kind, entry.Vendor)))
	if kind == "" {
		return ProviderEntry{}, errors.New("provider kind is required")
	}

	baseURL := strings.TrimSpace(os.ExpandEnv(firstNonEmpty(entry.URL, entry.BaseURL)))
	if baseURL == "" {
		return ProviderEntry{}, errors.New("provider url is required")
	}

	model := strings.TrimSpace(os.ExpandEnv(entry.Model))
	if model == "" {
		return ProviderEntry{}, errors.New("provider model is required")
	}

	apiKey := strings.TrimSpace(firstNonEmpty(entry.APIKey, entry.Key))
	if apiKey != "" {
		apiKey = os.ExpandEnv(apiKey)
	}
	if apiKey == "" {
		return ProviderEntry{}, errors.New("provider api key is required")
	}

	timeout := 60 * time.Second
	if raw := strings.TrimSpace(expandWithDefault(entry.Timeout)); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return ProviderEntry{}, fmt.Errorf("timeout: %w", err)
		}
		if parsed <= 0 {
			return ProviderEntry{}, fmt.Errorf("timeout must be positive, got %s", parsed)
		}
		timeout = parsed
	}

	return ProviderEntry{
		Kind:    kind,
		APIKey:  apiKey,
		BaseURL: baseURL,
		Model:   model,
		Timeout: timeout,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func parseEnabled(raw string) (bool, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return true, nil
	}

	resolved := strings.TrimSpace(expandWithDefault(value))
	if resolved == "" {
		return true, nil
	}

	parsed, err := strconv.ParseBool(resolved)
	if err != nil {
		return false, fmt.Errorf("enable: %w", err)
	}
	return parsed, nil
}

// expandWithDefault expands ${VAR} and ${VAR:-default} syntax using os envs.
func expandWithDefault(raw string) string {
	if !strings.Contains(raw, "${") {
		return os.ExpandEnv(raw)
	}
	start := strings.Index(raw, "${")
	end := strings.Index(raw[start:], "}")
	if start == -1 || end == -1 {
		return os.ExpandEnv(raw)
	}
	end = start + end
	expr := raw[start+2 : end]
	defaultVal := ""
	varName := expr
	if strings.Contains(expr, ":-") {
		parts := strings.SplitN(expr, ":-", 2)
		varName = parts[0]
		defaultVal = parts[1]
	}
	val := os.Getenv(varName)
	if val == "" {
		val = defaultVal
	}
	resolved := raw[:start] + val + raw[end+1:]
	return os.ExpandEnv(resolved)
}
