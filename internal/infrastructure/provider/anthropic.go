package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	"brandforge/services/content-api/internal/domain/generation"
	"brandforge/services/content-api/internal/infrastructure/metrics"
	"brandforge/services/content-api/internal/utils/httpclients"
)

const (
	anthropicAPIVersion       = "2023-06-01"
	anthropicDefaultMaxTokens = 1024
)

// AnthropicProvider speaks the Anthropic messages API.
type AnthropicProvider struct {
	model   string
	timeout time.Duration
	client  *resty.Client
	log     zerolog.Logger
}

func NewAnthropicProvider(apiKey, baseURL, model string, timeout time.Duration, log zerolog.Logger) *AnthropicProvider {
	client := httpclients.NewClient("AnthropicClient")
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("X-API-Key", apiKey)
	client.SetHeader("Anthropic-Version", anthropicAPIVersion)
	return &AnthropicProvider{
		model:   model,
		timeout: timeout,
		client:  client,
		log:     log.With().Str("provider", string(generation.KindAnthropic)).Logger(),
	}
}

func (p *AnthropicProvider) Kind() generation.ProviderKind { return generation.KindAnthropic }
func (p *AnthropicProvider) ModelName() string             { return p.model }
func (p *AnthropicProvider) Timeout() time.Duration        { return p.timeout }

func (p *AnthropicProvider) Available(ctx context.Context) bool {
	resp, err := p.client.R().SetContext(ctx).Get("/v1/models")
	up := err == nil && !resp.IsError()
	metrics.SetProviderUp(string(generation.KindAnthropic), up)
	return up
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model         string             `json:"model"`
	MaxTokens     int                `json:"max_tokens"`
	System        string             `json:"system,omitempty"`
	Messages      []anthropicMessage `json:"messages"`
	Temperature   float32            `json:"temperature,omitempty"`
	TopP          float32            `json:"top_p,omitempty"`
	StopSequences []string           `json:"stop_sequences,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func (p *AnthropicProvider) GenerateContent(ctx context.Context, prompt string, opts generation.Options) generation.ProviderResponse {
	start := time.Now()

	// max_tokens is mandatory on this API
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = anthropicDefaultMaxTokens
	}

	body := anthropicRequest{
		Model:         p.model,
		MaxTokens:     maxTokens,
		System:        opts.SystemPrompt,
		Messages:      []anthropicMessage{{Role: "user", Content: prompt}},
		Temperature:   opts.Temperature,
		TopP:          opts.TopP,
		StopSequences: opts.Stop,
	}

	var out anthropicResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post("/v1/messages")

	latency := time.Since(start)
	switch {
	case err != nil:
		return p.failure("transport", err.Error(), latency)
	case resp.IsError():
		return p.failure("status", fmt.Sprintf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String())), latency)
	}

	var text strings.Builder
	for _, block := range out.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return p.failure("empty", "response carried no text blocks", latency)
	}

	tokens := out.Usage.InputTokens + out.Usage.OutputTokens
	metrics.RecordProviderCall(string(generation.KindAnthropic), p.model, "success", tokens, latency.Seconds())
	return generation.ProviderResponse{
		Provider:   generation.KindAnthropic,
		Model:      p.model,
		Content:    text.String(),
		TokensUsed: tokens,
		LatencyMS:  latency.Milliseconds(),
		Metadata:   costMetadata(p.model, tokens),
	}
}

func (p *AnthropicProvider) failure(errType, msg string, latency time.Duration) generation.ProviderResponse {
	p.log.Warn().Str("error_type", errType).Str("error", msg).Msg("generation call failed")
	metrics.RecordProviderError(string(generation.KindAnthropic), errType)
	metrics.RecordProviderCall(string(generation.KindAnthropic), p.model, "error", 0, latency.Seconds())
	return generation.ProviderResponse{
		Provider:  generation.KindAnthropic,
		Model:     p.model,
		Err:       msg,
		LatencyMS: latency.Milliseconds(),
	}
}
