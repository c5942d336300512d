package generation

import (
	"strings"
	"testing"

	"brandforge/services/content-api/internal/domain/content"
)

func TestBuildSystemPromptClauses(t *testing.T) {
	req := &content.GenerationRequest{Type: content.TypeBlogPost, MainTopic: "coffee"}

	bare := BuildSystemPrompt(req)
	if !strings.HasPrefix(bare, persona) {
		t.Fatalf("system prompt must start with the persona sentence: %s", bare)
	}
	if bare != persona {
		t.Fatalf("expected no extra clauses without brand context: %s", bare)
	}

	req.BrandContext = &content.BrandContext{
		Industry:       "specialty coffee",
		ToneAndManner:  "warm, direct",
		TargetAudience: "home baristas",
	}
	full := BuildSystemPrompt(req)
	for _, clause := range []string{"specialty coffee industry", "warm, direct tone", "home baristas"} {
		if !strings.Contains(full, clause) {
			t.Fatalf("missing clause %q in: %s", clause, full)
		}
	}
}

func TestBuildUserPromptSubtopics(t *testing.T) {
	req := &content.GenerationRequest{
		Type:      content.TypeSubtopics,
		MainTopic: "urban gardening",
		BrandContext: &content.BrandContext{
			TargetAudience: "city renters",
		},
	}

	prompt := BuildUserPrompt(req)
	if !strings.Contains(prompt, "exactly 10 sub-topics") {
		t.Fatalf("missing count instruction: %s", prompt)
	}
	if !strings.Contains(prompt, "15-25 characters") {
		t.Fatalf("missing length constraint: %s", prompt)
	}
	if !strings.Contains(prompt, "city renters") {
		t.Fatalf("missing audience clause: %s", prompt)
	}
	if !strings.Contains(prompt, "JSON array") {
		t.Fatalf("missing output format: %s", prompt)
	}
}

func TestBuildUserPromptBlogWordTargets(t *testing.T) {
	tests := []struct {
		length content.ContentLength
		want   string
	}{
		{content.LengthShort, "300-500 words"},
		{content.LengthMedium, "800-1200 words"},
		{content.LengthLong, "1500-2000 words"},
	}

	for _, tt := range tests {
		req := &content.GenerationRequest{
			Type:          content.TypeBlogPost,
			MainTopic:     "remote work",
			ContentLength: tt.length,
		}
		prompt := BuildUserPrompt(req)
		if !strings.Contains(prompt, tt.want) {
			t.Fatalf("length %s: missing %q in %s", tt.length, tt.want, prompt)
		}
	}
}

func TestBuildUserPromptSocialMediaPlatformGuide(t *testing.T) {
	req := &content.GenerationRequest{
		Type:      content.TypeSocialMedia,
		MainTopic: "spring sale",
		Platform:  content.PlatformLinkedIn,
	}

	prompt := BuildUserPrompt(req)
	if !strings.Contains(prompt, "LinkedIn") {
		t.Fatalf("missing platform guide: %s", prompt)
	}
	if !strings.Contains(prompt, "call-to-action") {
		t.Fatalf("missing call-to-action instruction: %s", prompt)
	}
	if !strings.Contains(prompt, "hashtags") {
		t.Fatalf("missing hashtag instruction: %s", prompt)
	}
}

func TestOptionsForRequest(t *testing.T) {
	long := &content.GenerationRequest{Type: content.TypeBlogPost, MainTopic: "x", ContentLength: content.LengthLong}
	medium := &content.GenerationRequest{Type: content.TypeBlogPost, MainTopic: "x", ContentLength: content.LengthMedium}

	if opts := OptionsForRequest(long); opts.MaxTokens != 3000 || opts.Temperature != 0.8 {
		t.Fatalf("unexpected long options: %+v", opts)
	}
	if opts := OptionsForRequest(medium); opts.MaxTokens != 1500 {
		t.Fatalf("unexpected medium options: %+v", opts)
	}
	if opts := OptionsForRequest(medium); opts.SystemPrompt == "" {
		t.Fatal("system prompt must be populated")
	}
}
