package content

import (
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readingSpeedWPM is the words-per-minute rate used for reading time metadata.
const readingSpeedWPM = 200

// Version is one provider's candidate for a generation request, with its
// computed quality score. Exactly one version per result set is selected.
type Version struct {
	Provider   string            `json:"provider"`
	Model      string            `json:"model"`
	Content    string            `json:"content"`
	Quality    int               `json:"quality"`
	Selected   bool              `json:"selected"`
	TokensUsed int               `json:"tokens_used"`
	LatencyMS  int64             `json:"latency_ms"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// Metadata is attached to blog posts only.
type Metadata struct {
	WordCount          int `json:"word_count"`
	ReadingTimeMinutes int `json:"reading_time_minutes"`
}

// GeneratedContent is the final artifact of one orchestration call. It is
// never mutated after assembly.
type GeneratedContent struct {
	ID        string      `json:"id"`
	Type      ContentType `json:"type"`
	Content   string      `json:"content"`
	Versions  []Version   `json:"versions"`
	Metadata  *Metadata   `json:"metadata,omitempty"`
	Hashtags  []string    `json:"hashtags,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

var hashtagPattern = regexp.MustCompile(`#[\p{L}\p{N}_]+`)

// ExtractHashtags returns the distinct #word tokens of text in order of first
// appearance.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, tag := range matches {
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// BuildMetadata computes word count and reading time for a markdown document.
// The count is taken on the rendered text, not the raw markup, so heading
// markers and link targets do not inflate it.
func BuildMetadata(markdown string) *Metadata {
	words := len(strings.Fields(PlainText(markdown)))
	minutes := 0
	if words > 0 {
		minutes = (words + readingSpeedWPM - 1) / readingSpeedWPM
	}
	return &Metadata{
		WordCount:          words,
		ReadingTimeMinutes: minutes,
	}
}

// PlainText strips markdown structure from src and returns its text content.
func PlainText(src string) string {
	source := []byte(src)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf strings.Builder
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			buf.WriteByte(' ')
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(buf.String())
}
