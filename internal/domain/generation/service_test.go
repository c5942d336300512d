package generation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"brandforge/services/content-api/internal/domain/content"
	"brandforge/services/content-api/internal/utils/jsonx"
)

type stubProvider struct {
	kind        ProviderKind
	model       string
	timeout     time.Duration
	delay       time.Duration
	content     string
	errMsg      string
	unavailable bool
}

func (p *stubProvider) Kind() ProviderKind     { return p.kind }
func (p *stubProvider) ModelName() string      { return p.model }
func (p *stubProvider) Timeout() time.Duration { return p.timeout }

func (p *stubProvider) Available(ctx context.Context) bool { return !p.unavailable }

func (p *stubProvider) GenerateContent(ctx context.Context, prompt string, opts Options) ProviderResponse {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
		}
	}
	return ProviderResponse{
		Provider:  p.kind,
		Model:     p.model,
		Content:   p.content,
		Err:       p.errMsg,
		LatencyMS: p.delay.Milliseconds(),
	}
}

func newTestService(providers ...Provider) *Service {
	return NewService(providers, zerolog.Nop())
}

func blogRequest(length content.ContentLength) *content.GenerationRequest {
	return &content.GenerationRequest{
		Type:          content.TypeBlogPost,
		MainTopic:     "ai in logistics",
		ContentLength: length,
	}
}

func TestGenerateContentSelectsExactlyOneVersion(t *testing.T) {
	svc := newTestService(
		&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: "# Post\n\nfirst candidate"},
		&stubProvider{kind: KindAnthropic, model: "claude", timeout: time.Second, content: "plain second candidate"},
	)

	result, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
	require.NoError(t, err)
	require.Len(t, result.Versions, 2)

	selectedCount := 0
	for _, v := range result.Versions {
		if v.Selected {
			selectedCount++
			require.Equal(t, result.Content, v.Content)
		}
	}
	require.Equal(t, 1, selectedCount)
}

func TestGenerateContentNoProvidersConfigured(t *testing.T) {
	svc := newTestService()

	_, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
	require.ErrorIs(t, err, ErrNoProvidersConfigured)
}

func TestGenerateContentAllProvidersFail(t *testing.T) {
	svc := newTestService(
		&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, errMsg: "quota exceeded"},
		&stubProvider{kind: KindAnthropic, model: "claude", timeout: time.Second, content: "   "},
	)

	result, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
	require.ErrorIs(t, err, ErrNoSuccessfulResponses)
	require.Nil(t, result)
}

func TestSlowProviderDoesNotBlockFastOne(t *testing.T) {
	slow := &stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: 50 * time.Millisecond, delay: 2 * time.Second, content: "never arrives in time"}
	fast := &stubProvider{kind: KindAnthropic, model: "claude", timeout: time.Second, delay: 10 * time.Millisecond, content: "fast candidate body"}
	svc := newTestService(slow, fast)

	start := time.Now()
	result, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
	elapsed := time.Since(start)

	require.NoError(t, err)
	require.Len(t, result.Versions, 1)
	require.Equal(t, string(KindAnthropic), result.Versions[0].Provider)
	require.Less(t, elapsed, time.Second, "slow provider must not delay the dispatch past its own deadline")
}

func TestTieBreakPrefersConfigurationOrder(t *testing.T) {
	// Identical content yields identical scores; the first configured
	// provider must win the tie every time.
	body := "the same candidate text"
	for i := 0; i < 5; i++ {
		svc := newTestService(
			&stubProvider{kind: KindGemini, model: "gemini-1.5-pro", timeout: time.Second, content: body},
			&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: body},
		)
		result, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
		require.NoError(t, err)
		require.True(t, result.Versions[0].Selected)
		require.Equal(t, string(KindGemini), result.Versions[0].Provider)
	}
}

func TestMediumBlogPrefersInBandWordCount(t *testing.T) {
	inBand := strings.TrimSpace(strings.Repeat("word ", 500))
	outOfBand := strings.TrimSpace(strings.Repeat("word ", 200))

	svc := newTestService(
		&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: inBand},
		&stubProvider{kind: KindAnthropic, model: "claude", timeout: time.Second, content: outOfBand},
	)

	result, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
	require.NoError(t, err)
	require.Equal(t, string(KindOpenAI), result.Versions[0].Provider)
	require.Equal(t, result.Versions[1].Quality+10, result.Versions[0].Quality)
}

func TestUnavailableProviderExcludedFromDispatch(t *testing.T) {
	svc := newTestService(
		&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, unavailable: true, content: "should never run"},
		&stubProvider{kind: KindAnthropic, model: "claude", timeout: time.Second, content: "available candidate"},
	)

	kinds := svc.AvailableProviderKinds(context.Background())
	require.Equal(t, []ProviderKind{KindAnthropic}, kinds)

	result, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
	require.NoError(t, err)
	require.Len(t, result.Versions, 1)
}

func TestGenerateContentBlogMetadataAndHashtags(t *testing.T) {
	blogBody := "# Title\n\n" + strings.TrimSpace(strings.Repeat("word ", 400))
	svc := newTestService(
		&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: blogBody},
	)

	blog, err := svc.GenerateContent(context.Background(), blogRequest(content.LengthMedium))
	require.NoError(t, err)
	require.NotNil(t, blog.Metadata)
	require.Equal(t, 401, blog.Metadata.WordCount)
	require.Nil(t, blog.Hashtags)

	social := &content.GenerationRequest{
		Type:          content.TypeSocialMedia,
		MainTopic:     "launch",
		Platform:      content.PlatformInstagram,
		ContentLength: content.LengthShort,
	}
	svc = newTestService(
		&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: "Big news! #launch #ai"},
	)
	post, err := svc.GenerateContent(context.Background(), social)
	require.NoError(t, err)
	require.Nil(t, post.Metadata)
	require.Equal(t, []string{"#launch", "#ai"}, post.Hashtags)
}

func TestGenerateSubtopicsParsesSelectedVersion(t *testing.T) {
	svc := newTestService(
		&stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: `Here you go: ["first idea", "second idea"]`},
	)

	topics, err := svc.GenerateSubtopics(context.Background(), &content.GenerationRequest{
		Type:      content.TypeSubtopics,
		MainTopic: "urban gardening",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"first idea", "second idea"}, topics)
}

func TestGenerateJSONRoundTrip(t *testing.T) {
	p := &stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: `Sure! {"a":1}`}

	out, err := GenerateJSON[map[string]int](context.Background(), p, "give me json", Options{})
	require.NoError(t, err)
	require.Equal(t, map[string]int{"a": 1}, out)
}

func TestGenerateJSONTypedFailure(t *testing.T) {
	p := &stubProvider{kind: KindOpenAI, model: "gpt-4o", timeout: time.Second, content: "I would rather write prose."}

	_, err := GenerateJSON[map[string]int](context.Background(), p, "give me json", Options{})
	var extractErr *jsonx.ExtractError
	require.True(t, errors.As(err, &extractErr), "expected jsonx.ExtractError, got %v", err)
}
