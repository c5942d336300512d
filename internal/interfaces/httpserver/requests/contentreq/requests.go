package contentreq

import (
	"brandforge/services/content-api/internal/domain/content"
)

// BrandContextRequest mirrors content.BrandContext on the wire.
type BrandContextRequest struct {
	Name           string   `json:"name"`
	Industry       string   `json:"industry"`
	ToneAndManner  string   `json:"tone_and_manner"`
	TargetAudience string   `json:"target_audience"`
	Keywords       []string `json:"keywords"`
}

// GenerateContentRequest is the body of POST /v1/content/generations.
type GenerateContentRequest struct {
	Type          string               `json:"type" binding:"required"`
	MainTopic     string               `json:"main_topic"`
	Subtopics     []string             `json:"subtopics"`
	BrandContext  *BrandContextRequest `json:"brand_context"`
	Platform      string               `json:"platform"`
	ContentLength string               `json:"content_length"`
}

// ToDomain converts the wire request into a validated domain request. Enum
// parse failures surface here so the handler can answer 400 before any
// provider is touched.
func (r *GenerateContentRequest) ToDomain() (*content.GenerationRequest, error) {
	contentType, err := content.ParseContentType(r.Type)
	if err != nil {
		return nil, err
	}
	platform, err := content.ParsePlatform(r.Platform)
	if err != nil {
		return nil, err
	}
	length, err := content.ParseContentLength(r.ContentLength)
	if err != nil {
		return nil, err
	}

	req := &content.GenerationRequest{
		Type:          contentType,
		MainTopic:     r.MainTopic,
		Subtopics:     r.Subtopics,
		Platform:      platform,
		ContentLength: length,
	}
	if r.BrandContext != nil {
		req.BrandContext = &content.BrandContext{
			Name:           r.BrandContext.Name,
			Industry:       r.BrandContext.Industry,
			ToneAndManner:  r.BrandContext.ToneAndManner,
			TargetAudience: r.BrandContext.TargetAudience,
			Keywords:       r.BrandContext.Keywords,
		}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// GenerateSubtopicsRequest is the body of POST /v1/content/subtopics.
type GenerateSubtopicsRequest struct {
	MainTopic    string               `json:"main_topic" binding:"required"`
	BrandContext *BrandContextRequest `json:"brand_context"`
}

// ToDomain converts the subtopics request into a domain generation request.
func (r *GenerateSubtopicsRequest) ToDomain() (*content.GenerationRequest, error) {
	req := &content.GenerationRequest{
		Type:      content.TypeSubtopics,
		MainTopic: r.MainTopic,
	}
	if r.BrandContext != nil {
		req.BrandContext = &content.BrandContext{
			Name:           r.BrandContext.Name,
			Industry:       r.BrandContext.Industry,
			ToneAndManner:  r.BrandContext.ToneAndManner,
			TargetAudience: r.BrandContext.TargetAudience,
			Keywords:       r.BrandContext.Keywords,
		}
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
