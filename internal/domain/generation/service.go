package generation

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"brandforge/services/content-api/internal/domain/content"
	"brandforge/services/content-api/internal/utils/functional"
	"brandforge/services/content-api/internal/utils/jsonx"
)

// Service orchestrates content generation across every configured provider:
// it fans one prompt out to all available backends, collects whatever
// succeeds, scores the candidates and assembles the final artifact.
//
// Providers are held in configuration order. That order is the tie-break for
// equal quality scores, so it must stay stable across calls.
type Service struct {
	providers []Provider
	log       zerolog.Logger
}

func NewService(providers []Provider, log zerolog.Logger) *Service {
	return &Service{
		providers: providers,
		log:       log.With().Str("component", "generation-service").Logger(),
	}
}

// AvailableProviders probes every configured provider concurrently and
// returns the reachable ones in configuration order. Probe failures are
// logged and excluded, never surfaced.
func (s *Service) AvailableProviders(ctx context.Context) []Provider {
	up := make([]bool, len(s.providers))

	var wg sync.WaitGroup
	for i, p := range s.providers {
		wg.Add(1)
		go func(slot int, p Provider) {
			defer wg.Done()
			up[slot] = p.Available(ctx)
		}(i, p)
	}
	wg.Wait()

	available := make([]Provider, 0, len(s.providers))
	for i, p := range s.providers {
		if !up[i] {
			s.log.Debug().Str("provider", string(p.Kind())).Msg("provider probe failed, excluding from dispatch")
			continue
		}
		available = append(available, p)
	}
	return available
}

// AvailableProviderKinds is the health-check boundary view of
// AvailableProviders.
func (s *Service) AvailableProviderKinds(ctx context.Context) []ProviderKind {
	return functional.Map(s.AvailableProviders(ctx), func(p Provider) ProviderKind {
		return p.Kind()
	})
}

// ConfiguredProviderCount reports how many adapters were constructed.
func (s *Service) ConfiguredProviderCount() int {
	return len(s.providers)
}

// GenerateContent runs one full orchestration call: prompt construction,
// fan-out dispatch, scoring, selection and assembly. The only errors it
// returns are request validation failures, ErrNoProvidersConfigured and
// ErrNoSuccessfulResponses; individual provider failures are absorbed.
func (s *Service) GenerateContent(ctx context.Context, req *content.GenerationRequest) (*content.GeneratedContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(s.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	prompt := BuildUserPrompt(req)
	opts := OptionsForRequest(req)

	responses := s.dispatch(ctx, s.AvailableProviders(ctx), prompt, opts)
	successes := functional.Filter(responses, func(r ProviderResponse) bool { return r.OK() })
	if len(successes) == 0 {
		s.log.Warn().Int("dispatched", len(responses)).Msg("every provider failed or returned empty content")
		return nil, ErrNoSuccessfulResponses
	}

	versions := s.selectBestContent(successes, req)
	selected, _ := functional.Find(versions, func(v content.Version) bool { return v.Selected })

	result := &content.GeneratedContent{
		ID:        uuid.NewString(),
		Type:      req.Type,
		Content:   selected.Content,
		Versions:  versions,
		CreatedAt: time.Now().UTC(),
	}
	if req.Type == content.TypeBlogPost {
		result.Metadata = content.BuildMetadata(selected.Content)
	}
	if req.Platform != "" && req.Platform != content.PlatformBlog {
		result.Hashtags = content.ExtractHashtags(selected.Content)
	}

	s.log.Info().
		Str("content_id", result.ID).
		Str("type", string(req.Type)).
		Str("selected_provider", selected.Provider).
		Int("quality", selected.Quality).
		Int("candidates", len(versions)).
		Msg("content generated")

	return result, nil
}

// GenerateSubtopics generates sub-topic ideas for a main topic and parses the
// winning candidate as a JSON string array.
func (s *Service) GenerateSubtopics(ctx context.Context, req *content.GenerationRequest) ([]string, error) {
	subReq := *req
	subReq.Type = content.TypeSubtopics

	generated, err := s.GenerateContent(ctx, &subReq)
	if err != nil {
		return nil, err
	}

	var topics []string
	if err := jsonx.Decode(generated.Content, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

// dispatch fans the prompt out to every given provider, each racing its own
// deadline, and settles only after every call has resolved or timed out. One
// slow or failing provider never blocks or cancels the others.
func (s *Service) dispatch(ctx context.Context, providers []Provider, prompt string, opts Options) []ProviderResponse {
	results := make([]ProviderResponse, len(providers))

	var wg sync.WaitGroup
	for i, p := range providers {
		wg.Add(1)
		go func(slot int, p Provider) {
			defer wg.Done()
			results[slot] = s.callWithDeadline(ctx, p, prompt, opts)
		}(i, p)
	}
	wg.Wait()

	return results
}

func (s *Service) callWithDeadline(ctx context.Context, p Provider, prompt string, opts Options) ProviderResponse {
	callCtx, cancel := context.WithTimeout(ctx, p.Timeout())
	defer cancel()

	done := make(chan ProviderResponse, 1)
	go func() {
		done <- p.GenerateContent(callCtx, prompt, opts)
	}()

	select {
	case resp := <-done:
		return resp
	case <-callCtx.Done():
		s.log.Warn().
			Str("provider", string(p.Kind())).
			Dur("deadline", p.Timeout()).
			Msg("provider call exceeded its deadline")
		return ProviderResponse{
			Provider:  p.Kind(),
			Model:     p.ModelName(),
			Err:       "timeout",
			LatencyMS: p.Timeout().Milliseconds(),
		}
	}
}

// selectBestContent scores every successful response and returns the versions
// sorted by quality, ties kept in dispatch order. The first version is marked
// selected.
func (s *Service) selectBestContent(responses []ProviderResponse, req *content.GenerationRequest) []content.Version {
	versions := functional.Map(responses, func(r ProviderResponse) content.Version {
		return content.Version{
			Provider:   string(r.Provider),
			Model:      r.Model,
			Content:    r.Content,
			Quality:    Score(r.Content, req),
			TokensUsed: r.TokensUsed,
			LatencyMS:  r.LatencyMS,
			Metadata:   r.Metadata,
		}
	})

	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].Quality > versions[j].Quality
	})
	versions[0].Selected = true

	return versions
}
