package content

import (
	"fmt"
	"strings"
)

// ContentType selects the generation flow.
type ContentType string

const (
	TypeSubtopics   ContentType = "subtopics"
	TypeBlogPost    ContentType = "blog_post"
	TypeSocialMedia ContentType = "social_media"
	TypeImagePrompt ContentType = "image_prompt"
)

// ParseContentType validates a raw content type value.
func ParseContentType(raw string) (ContentType, error) {
	switch t := ContentType(strings.TrimSpace(raw)); t {
	case TypeSubtopics, TypeBlogPost, TypeSocialMedia, TypeImagePrompt:
		return t, nil
	default:
		return "", fmt.Errorf("unknown content type %q", raw)
	}
}

// Platform identifies the publishing destination of a piece of content.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformBlog      Platform = "blog"
)

// ParsePlatform validates a raw platform value. Empty input is allowed and
// returns the zero Platform.
func ParsePlatform(raw string) (Platform, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}
	switch p := Platform(trimmed); p {
	case PlatformInstagram, PlatformFacebook, PlatformLinkedIn, PlatformBlog:
		return p, nil
	default:
		return "", fmt.Errorf("unknown platform %q", raw)
	}
}

// ContentLength is the requested length class.
type ContentLength string

const (
	LengthShort  ContentLength = "short"
	LengthMedium ContentLength = "medium"
	LengthLong   ContentLength = "long"
)

// ParseContentLength validates a raw length value, defaulting empty input to
// medium.
func ParseContentLength(raw string) (ContentLength, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return LengthMedium, nil
	}
	switch l := ContentLength(trimmed); l {
	case LengthShort, LengthMedium, LengthLong:
		return l, nil
	default:
		return "", fmt.Errorf("unknown content length %q", raw)
	}
}

// BrandContext carries optional business and voice parameters that bias both
// prompt construction and quality scoring.
type BrandContext struct {
	Name           string   `json:"name,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	ToneAndManner  string   `json:"tone_and_manner,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
	Keywords       []string `json:"keywords,omitempty"`
}

// GenerationRequest describes one logical content generation call. It is
// immutable once validated; the orchestrator never mutates it.
type GenerationRequest struct {
	Type          ContentType   `json:"type"`
	MainTopic     string        `json:"main_topic,omitempty"`
	Subtopics     []string      `json:"subtopics,omitempty"`
	BrandContext  *BrandContext `json:"brand_context,omitempty"`
	Platform      Platform      `json:"platform,omitempty"`
	ContentLength ContentLength `json:"content_length"`
}

// Validate checks cross-field requirements that enum parsing cannot express.
func (r *GenerationRequest) Validate() error {
	if _, err := ParseContentType(string(r.Type)); err != nil {
		return err
	}
	if r.Type == TypeSubtopics && strings.TrimSpace(r.MainTopic) == "" {
		return fmt.Errorf("main_topic is required for %s requests", TypeSubtopics)
	}
	if strings.TrimSpace(r.MainTopic) == "" && len(r.Subtopics) == 0 {
		return fmt.Errorf("either main_topic or subtopics must be provided")
	}
	if r.ContentLength == "" {
		r.ContentLength = LengthMedium
	}
	return nil
}

// Keywords returns the brand keyword set, or nil when no brand context is set.
func (r *GenerationRequest) Keywords() []string {
	if r.BrandContext == nil {
		return nil
	}
	return r.BrandContext.Keywords
}
