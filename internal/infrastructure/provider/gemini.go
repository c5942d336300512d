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

// GeminiProvider speaks the Google Generative Language API.
type GeminiProvider struct {
	model   string
	timeout time.Duration
	client  *resty.Client
	log     zerolog.Logger
}

func NewGeminiProvider(apiKey, baseURL, model string, timeout time.Duration, log zerolog.Logger) *GeminiProvider {
	client := httpclients.NewClient("GeminiClient")
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("x-goog-api-key", apiKey)
	return &GeminiProvider{
		model:   model,
		timeout: timeout,
		client:  client,
		log:     log.With().Str("provider", string(generation.KindGemini)).Logger(),
	}
}

func (p *GeminiProvider) Kind() generation.ProviderKind { return generation.KindGemini }
func (p *GeminiProvider) ModelName() string             { return p.model }
func (p *GeminiProvider) Timeout() time.Duration        { return p.timeout }

func (p *GeminiProvider) Available(ctx context.Context) bool {
	resp, err := p.client.R().SetContext(ctx).Get("/v1beta/models")
	up := err == nil && !resp.IsError()
	metrics.SetProviderUp(string(generation.KindGemini), up)
	return up
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float32  `json:"temperature,omitempty"`
	TopP            float32  `json:"topP,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	StopSequences   []string `json:"stopSequences,omitempty"`
}

type geminiRequest struct {
	Contents          []geminiContent        `json:"contents"`
	SystemInstruction *geminiContent         `json:"systemInstruction,omitempty"`
	GenerationConfig  geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		TotalTokenCount int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

func (p *GeminiProvider) GenerateContent(ctx context.Context, prompt string, opts generation.Options) generation.ProviderResponse {
	start := time.Now()

	body := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: prompt}},
		}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     opts.Temperature,
			TopP:            opts.TopP,
			MaxOutputTokens: opts.MaxTokens,
			StopSequences:   opts.Stop,
		},
	}
	if opts.SystemPrompt != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: opts.SystemPrompt}}}
	}

	var out geminiResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", p.model))

	latency := time.Since(start)
	switch {
	case err != nil:
		return p.failure("transport", err.Error(), latency)
	case resp.IsError():
		return p.failure("status", fmt.Sprintf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String())), latency)
	case len(out.Candidates) == 0:
		return p.failure("empty", "response carried no candidates", latency)
	}

	var text strings.Builder
	for _, part := range out.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return p.failure("empty", "candidate carried no text parts", latency)
	}

	tokens := out.UsageMetadata.TotalTokenCount
	metrics.RecordProviderCall(string(generation.KindGemini), p.model, "success", tokens, latency.Seconds())
	return generation.ProviderResponse{
		Provider:   generation.KindGemini,
		Model:      p.model,
		Content:    text.String(),
		TokensUsed: tokens,
		LatencyMS:  latency.Milliseconds(),
		Metadata:   costMetadata(p.model, tokens),
	}
}

func (p *GeminiProvider) failure(errType, msg string, latency time.Duration) generation.ProviderResponse {
	p.log.Warn().Str("error_type", errType).Str("error", msg).Msg("generation call failed")
	metrics.RecordProviderError(string(generation.KindGemini), errType)
	metrics.RecordProviderCall(string(generation.KindGemini), p.model, "error", 0, latency.Seconds())
	return generation.ProviderResponse{
		Provider:  generation.KindGemini,
		Model:     p.model,
		Err:       msg,
		LatencyMS: latency.Milliseconds(),
	}
}
