package provider

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"brandforge/services/content-api/internal/config"
	"brandforge/services/content-api/internal/domain/generation"
)

func TestBuildPreservesEntryOrder(t *testing.T) {
	entries := []config.ProviderEntry{
		{Kind: "gemini", APIKey: "k", BaseURL: "https://generativelanguage.googleapis.com", Model: "gemini-1.5-pro", Timeout: 45 * time.Second},
		{Kind: "openai", APIKey: "k", BaseURL: "https://api.openai.com/v1", Model: "gpt-4o", Timeout: 60 * time.Second},
		{Kind: "anthropic", APIKey: "k", BaseURL: "https://api.anthropic.com", Model: "claude-3-5-sonnet-20241022", Timeout: 60 * time.Second},
	}

	providers, err := Build(entries, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, providers, 3)

	require.Equal(t, generation.KindGemini, providers[0].Kind())
	require.Equal(t, generation.KindOpenAI, providers[1].Kind())
	require.Equal(t, generation.KindAnthropic, providers[2].Kind())
	require.Equal(t, 45*time.Second, providers[0].Timeout())
	require.Equal(t, "gpt-4o", providers[1].ModelName())
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	entries := []config.ProviderEntry{
		{Kind: "mistral", APIKey: "k", BaseURL: "https://example.com", Model: "m", Timeout: time.Second},
	}

	_, err := Build(entries, zerolog.Nop())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown provider kind")
}

func TestEstimateCost(t *testing.T) {
	require.Equal(t, "0.0075", EstimateCost("gpt-4o", 1000))
	require.Equal(t, "0.00038", EstimateCost("gpt-4o-mini", 1000))
	require.Equal(t, "", EstimateCost("some-local-model", 1000))
	require.Equal(t, "", EstimateCost("gpt-4o", 0))
}
