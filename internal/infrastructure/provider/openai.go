package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"brandforge/services/content-api/internal/domain/generation"
	"brandforge/services/content-api/internal/infrastructure/metrics"
	"brandforge/services/content-api/internal/utils/httpclients"
)

// OpenAIProvider speaks the OpenAI chat completions API.
type OpenAIProvider struct {
	model   string
	timeout time.Duration
	client  *resty.Client
	log     zerolog.Logger
}

func NewOpenAIProvider(apiKey, baseURL, model string, timeout time.Duration, log zerolog.Logger) *OpenAIProvider {
	client := httpclients.NewClient("OpenAIClient")
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	return &OpenAIProvider{
		model:   model,
		timeout: timeout,
		client:  client,
		log:     log.With().Str("provider", string(generation.KindOpenAI)).Logger(),
	}
}

func (p *OpenAIProvider) Kind() generation.ProviderKind { return generation.KindOpenAI }
func (p *OpenAIProvider) ModelName() string             { return p.model }
func (p *OpenAIProvider) Timeout() time.Duration        { return p.timeout }

// Available probes the models listing endpoint, which answers fast and
// validates the credential at the same time.
func (p *OpenAIProvider) Available(ctx context.Context) bool {
	resp, err := p.client.R().SetContext(ctx).Get("/models")
	up := err == nil && !resp.IsError()
	metrics.SetProviderUp(string(generation.KindOpenAI), up)
	return up
}

func (p *OpenAIProvider) GenerateContent(ctx context.Context, prompt string, opts generation.Options) generation.ProviderResponse {
	start := time.Now()

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if opts.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: opts.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: prompt,
	})

	body := openai.ChatCompletionRequest{
		Model:            p.model,
		Messages:         messages,
		Temperature:      opts.Temperature,
		MaxTokens:        opts.MaxTokens,
		TopP:             opts.TopP,
		FrequencyPenalty: opts.FrequencyPenalty,
		PresencePenalty:  opts.PresencePenalty,
		Stop:             opts.Stop,
	}
	if opts.ResponseFormat == "json_object" {
		body.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	var out openai.ChatCompletionResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&out).
		Post("/chat/completions")

	latency := time.Since(start)
	switch {
	case err != nil:
		return p.failure("transport", err.Error(), latency)
	case resp.IsError():
		return p.failure("status", fmt.Sprintf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String())), latency)
	case len(out.Choices) == 0:
		return p.failure("empty", "response carried no choices", latency)
	}

	tokens := out.Usage.TotalTokens
	metrics.RecordProviderCall(string(generation.KindOpenAI), p.model, "success", tokens, latency.Seconds())
	return generation.ProviderResponse{
		Provider:   generation.KindOpenAI,
		Model:      p.model,
		Content:    out.Choices[0].Message.Content,
		TokensUsed: tokens,
		LatencyMS:  latency.Milliseconds(),
		Metadata:   costMetadata(p.model, tokens),
	}
}

func (p *OpenAIProvider) failure(errType, msg string, latency time.Duration) generation.ProviderResponse {
	p.log.Warn().Str("error_type", errType).Str("error", msg).Msg("generation call failed")
	metrics.RecordProviderError(string(generation.KindOpenAI), errType)
	metrics.RecordProviderCall(string(generation.KindOpenAI), p.model, "error", 0, latency.Seconds())
	return generation.ProviderResponse{
		Provider:  generation.KindOpenAI,
		Model:     p.model,
		Err:       msg,
		LatencyMS: latency.Milliseconds(),
	}
}
