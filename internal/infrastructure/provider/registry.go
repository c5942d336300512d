package provider

import (
	"fmt"

	"github.com/rs/zerolog"

	"brandforge/services/content-api/internal/config"
	"brandforge/services/content-api/internal/domain/generation"
)

// Build constructs one adapter per configured entry, preserving entry order.
// That order is the dispatch and tie-break order downstream, so it must not be
// reshuffled here. An unknown kind fails construction outright rather than
// being silently skipped.
func Build(entries []config.ProviderEntry, log zerolog.Logger) ([]generation.Provider, error) {
	providers := make([]generation.Provider, 0, len(entries))
	for i, entry := range entries {
		kind, err := generation.ParseProviderKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("provider entry %d: %w", i, err)
		}

		var p generation.Provider
		switch kind {
		case generation.KindOpenAI:
			p = NewOpenAIProvider(entry.APIKey, entry.BaseURL, entry.Model, entry.Timeout, log)
		case generation.KindAnthropic:
			p = NewAnthropicProvider(entry.APIKey, entry.BaseURL, entry.Model, entry.Timeout, log)
		case generation.KindGemini:
			p = NewGeminiProvider(entry.APIKey, entry.BaseURL, entry.Model, entry.Timeout, log)
		}

		log.Info().
			Str("provider", string(kind)).
			Str("model", entry.Model).
			Dur("timeout", entry.Timeout).
			Msg("provider adapter constructed")
		providers = append(providers, p)
	}
	return providers, nil
}
