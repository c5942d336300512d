package generation

import (
	"strings"
	"testing"

	"brandforge/services/content-api/internal/domain/content"
)

func mediumBlogRequest() *content.GenerationRequest {
	return &content.GenerationRequest{
		Type:          content.TypeBlogPost,
		MainTopic:     "ai in retail",
		ContentLength: content.LengthMedium,
	}
}

func TestScoreIsPure(t *testing.T) {
	req := mediumBlogRequest()
	text := "# Intro\n\nShort body with a #tag."
	first := Score(text, req)
	for i := 0; i < 10; i++ {
		if got := Score(text, req); got != first {
			t.Fatalf("score changed between runs: %d vs %d", first, got)
		}
	}
	if first < 0 || first > 100 {
		t.Fatalf("score out of range: %d", first)
	}
}

func TestScoreWordCountBand(t *testing.T) {
	req := mediumBlogRequest()

	inBand := strings.TrimSpace(strings.Repeat("word ", 500))
	outOfBand := strings.TrimSpace(strings.Repeat("word ", 200))

	// base 50, +10 in-band, +5 no long latin run
	if got := Score(inBand, req); got != 65 {
		t.Fatalf("expected 65 for 500-word medium content, got %d", got)
	}
	// base 50, +5 no long latin run
	if got := Score(outOfBand, req); got != 55 {
		t.Fatalf("expected 55 for 200-word medium content, got %d", got)
	}
}

func TestScoreKeywordCap(t *testing.T) {
	req := mediumBlogRequest()
	req.BrandContext = &content.BrandContext{
		Keywords: []string{"ai", "automation", "growth", "seo"},
	}

	three := "We use AI and automation to drive growth."
	four := three + " Our SEO strategy helps."

	// base 50, +15 keywords, +5 no long latin run
	if got := Score(three, req); got != 70 {
		t.Fatalf("expected 70 with three keyword hits, got %d", got)
	}
	// fourth hit is capped at +20 total, not +20+5
	if got := Score(four, req); got != 75 {
		t.Fatalf("expected 75 with four keyword hits, got %d", got)
	}
}

func TestScoreStructureBonus(t *testing.T) {
	req := mediumBlogRequest()

	flat := "one single paragraph of text"
	structured := "# Heading\n\ntext below"

	if got, want := Score(structured, req)-Score(flat, req), 10; got != want {
		t.Fatalf("expected +%d structure bonus, got %d", want, got)
	}
}

func TestScoreEmojiOnlyOffBlog(t *testing.T) {
	withEmoji := "Launch day \U0001F680 is here"
	plain := "Launch day now is here"

	social := &content.GenerationRequest{
		Type:          content.TypeSocialMedia,
		MainTopic:     "launch",
		Platform:      content.PlatformInstagram,
		ContentLength: content.LengthShort,
	}
	if got, want := Score(withEmoji, social)-Score(plain, social), 5; got != want {
		t.Fatalf("expected +%d emoji bonus on instagram, got %d", want, got)
	}

	blog := &content.GenerationRequest{
		Type:          content.TypeBlogPost,
		MainTopic:     "launch",
		Platform:      content.PlatformBlog,
		ContentLength: content.LengthShort,
	}
	if got := Score(withEmoji, blog) - Score(plain, blog); got != 0 {
		t.Fatalf("expected no emoji bonus on blog platform, got %+d", got)
	}
}

func TestScorePenalizesLongLatinRuns(t *testing.T) {
	req := mediumBlogRequest()

	natural := "short words in a row"
	leaked := "Loremipsumdolorsitametconsectetur adipiscing"

	if got, want := Score(natural, req)-Score(leaked, req), 5; got != want {
		t.Fatalf("expected %d point readability gap, got %d", want, got)
	}
}
