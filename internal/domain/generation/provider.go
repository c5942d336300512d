package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brandforge/services/content-api/internal/utils/jsonx"
)

// ProviderKind is the fixed set of supported backends. Registry construction
// rejects anything outside this set.
type ProviderKind string

const (
	KindOpenAI    ProviderKind = "openai"
	KindAnthropic ProviderKind = "anthropic"
	KindGemini    ProviderKind = "gemini"
)

// ParseProviderKind validates a raw provider id.
func ParseProviderKind(raw string) (ProviderKind, error) {
	switch k := ProviderKind(strings.TrimSpace(strings.ToLower(raw))); k {
	case KindOpenAI, KindAnthropic, KindGemini:
		return k, nil
	default:
		return "", fmt.Errorf("unknown provider kind %q", raw)
	}
}

// Options carries the sampling parameters for one generation call. Built once
// per request by the orchestrator and passed unchanged to every provider.
type Options struct {
	Temperature      float32
	MaxTokens        int
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
	Stop             []string
	ResponseFormat   string
	SystemPrompt     string
}

// ProviderResponse is the outcome of a single provider call. Exactly one of
// Content or Err is set for a completed call.
type ProviderResponse struct {
	Provider   ProviderKind      `json:"provider"`
	Model      string            `json:"model"`
	Content    string            `json:"content"`
	TokensUsed int               `json:"tokens_used"`
	LatencyMS  int64             `json:"latency_ms"`
	Err        string            `json:"error,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// OK reports whether the response carries usable content.
func (r ProviderResponse) OK() bool {
	return r.Err == "" && strings.TrimSpace(r.Content) != ""
}

// Provider wraps one external text-generation backend behind a uniform
// contract. GenerateContent never returns a Go error: transport and backend
// failures are captured in the response so fan-in can treat every call
// uniformly.
type Provider interface {
	Kind() ProviderKind
	ModelName() string
	Timeout() time.Duration
	GenerateContent(ctx context.Context, prompt string, opts Options) ProviderResponse
	Available(ctx context.Context) bool
}

const jsonOnlyInstruction = "\n\nRespond with JSON only. No prose, no code fences."

// GenerateJSON runs a generation call and decodes the first JSON payload of
// the response into T. A response without a parseable payload yields a
// *jsonx.ExtractError.
func GenerateJSON[T any](ctx context.Context, p Provider, prompt string, opts Options) (T, error) {
	var out T

	resp := p.GenerateContent(ctx, prompt+jsonOnlyInstruction, opts)
	if !resp.OK() {
		reason := resp.Err
		if reason == "" {
			reason = "empty response"
		}
		return out, fmt.Errorf("provider %s: %s", p.Kind(), reason)
	}

	if err := jsonx.Decode(resp.Content, &out); err != nil {
		return out, err
	}
	return out, nil
}
