package generation

import (
	"fmt"
	"strings"

	"brandforge/services/content-api/internal/domain/content"
)

const persona = "You are a senior marketing content writer who produces polished, on-brand copy."

// promptWordTargets are the word-count ranges requested in blog prompts.
// They are deliberately distinct from the scoring bands in scorer.go: the
// prompt asks for more words than the scorer requires, which leaves room for
// models that undershoot.
var promptWordTargets = map[content.ContentLength][2]int{
	content.LengthShort:  {300, 500},
	content.LengthMedium: {800, 1200},
	content.LengthLong:   {1500, 2000},
}

var platformGuides = map[content.Platform]string{
	content.PlatformInstagram: "an engaging Instagram caption under 2,200 characters with a friendly, visual voice",
	content.PlatformFacebook:  "a conversational Facebook post of one to three short paragraphs",
	content.PlatformLinkedIn:  "a professional LinkedIn post with a strong opening line and a clear takeaway",
	content.PlatformBlog:      "a short teaser paragraph that links readers to the full blog post",
}

// BuildSystemPrompt assembles the persona sentence plus whichever brand
// clauses are present. Pure.
func BuildSystemPrompt(req *content.GenerationRequest) string {
	var b strings.Builder
	b.WriteString(persona)

	if bc := req.BrandContext; bc != nil {
		if bc.Industry != "" {
			fmt.Fprintf(&b, " The brand operates in the %s industry.", bc.Industry)
		}
		if bc.ToneAndManner != "" {
			fmt.Fprintf(&b, " Write in a %s tone.", bc.ToneAndManner)
		}
		if bc.TargetAudience != "" {
			fmt.Fprintf(&b, " The target audience is %s.", bc.TargetAudience)
		}
	}
	return b.String()
}

// BuildUserPrompt renders the instruction for the requested content type. Pure.
func BuildUserPrompt(req *content.GenerationRequest) string {
	switch req.Type {
	case content.TypeSubtopics:
		return buildSubtopicsPrompt(req)
	case content.TypeBlogPost:
		return buildBlogPostPrompt(req)
	case content.TypeSocialMedia:
		return buildSocialMediaPrompt(req)
	case content.TypeImagePrompt:
		return buildImagePromptPrompt(req)
	default:
		return buildBlogPostPrompt(req)
	}
}

// OptionsForRequest builds the sampling options the orchestrator passes to
// every provider.
func OptionsForRequest(req *content.GenerationRequest) Options {
	maxTokens := 1500
	if req.ContentLength == content.LengthLong {
		maxTokens = 3000
	}
	return Options{
		Temperature:  0.8,
		MaxTokens:    maxTokens,
		SystemPrompt: BuildSystemPrompt(req),
	}
}

func buildSubtopicsPrompt(req *content.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "List exactly 10 sub-topics for the main topic %q.\n", req.MainTopic)
	b.WriteString("Each sub-topic must be 15-25 characters long, and no two may overlap in meaning.\n")
	if bc := req.BrandContext; bc != nil && bc.TargetAudience != "" {
		fmt.Fprintf(&b, "Pick angles that resonate with %s.\n", bc.TargetAudience)
	}
	b.WriteString("Respond with a JSON array of 10 strings and nothing else.")
	return b.String()
}

func buildBlogPostPrompt(req *content.GenerationRequest) string {
	target := promptWordTargets[req.ContentLength]

	var b strings.Builder
	fmt.Fprintf(&b, "Write a blog post about %q.\n", topicOf(req))
	b.WriteString("Structure it as an introduction, two to three body sections and a conclusion.\n")
	fmt.Fprintf(&b, "Target %d-%d words.\n", target[0], target[1])
	b.WriteString("Format the post as markdown with headings.")
	if keywords := req.Keywords(); len(keywords) > 0 {
		fmt.Fprintf(&b, "\nWork these keywords in naturally: %s.", strings.Join(keywords, ", "))
	}
	return b.String()
}

func buildSocialMediaPrompt(req *content.GenerationRequest) string {
	guide, ok := platformGuides[req.Platform]
	if !ok {
		guide = "a social media post"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write %s about %q.\n", guide, topicOf(req))
	b.WriteString("End with a clear call-to-action.\n")
	b.WriteString("Add a handful of hashtags that fit the platform.")
	return b.String()
}

func buildImagePromptPrompt(req *content.GenerationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write one detailed English prompt for an image generation model that illustrates %q.\n", topicOf(req))
	b.WriteString("Describe the subject, setting, style and lighting in a single paragraph. Do not add commentary.")
	return b.String()
}

func topicOf(req *content.GenerationRequest) string {
	if strings.TrimSpace(req.MainTopic) != "" {
		return req.MainTopic
	}
	return strings.Join(req.Subtopics, ", ")
}
