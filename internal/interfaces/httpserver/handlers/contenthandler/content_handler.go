package contenthandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"brandforge/services/content-api/internal/domain/generation"
	"brandforge/services/content-api/internal/infrastructure/metrics"
	"brandforge/services/content-api/internal/interfaces/httpserver/dto"
	"brandforge/services/content-api/internal/interfaces/httpserver/requests/contentreq"
	"brandforge/services/content-api/internal/interfaces/httpserver/responses/contentres"
	"brandforge/services/content-api/internal/utils/functional"
	"brandforge/services/content-api/internal/utils/platformerrors"
)

// ContentHandler is the HTTP boundary of the generation service.
type ContentHandler struct {
	service *generation.Service
	log     zerolog.Logger
}

func NewContentHandler(service *generation.Service, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		log:     log.With().Str("component", "content-handler").Logger(),
	}
}

// GenerateContent handles POST /v1/content/generations.
func (h *ContentHandler) GenerateContent(c *gin.Context) {
	var body contentreq.GenerateContentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid request body", err))
		return
	}

	req, err := body.ToDomain()
	if err != nil {
		h.respondError(c, platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, err.Error(), nil))
		return
	}

	result, err := h.service.GenerateContent(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, h.classify(c, err))
		return
	}

	for _, v := range result.Versions {
		if v.Selected {
			metrics.RecordQuality(string(result.Type), v.Quality)
			break
		}
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Data: result})
}

// GenerateSubtopics handles POST /v1/content/subtopics.
func (h *ContentHandler) GenerateSubtopics(c *gin.Context) {
	var body contentreq.GenerateSubtopicsRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid request body", err))
		return
	}

	req, err := body.ToDomain()
	if err != nil {
		h.respondError(c, platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, err.Error(), nil))
		return
	}

	topics, err := h.service.GenerateSubtopics(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, h.classify(c, err))
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Data: contentres.SubtopicsResponse{
		MainTopic: req.MainTopic,
		Subtopics: topics,
	}})
}

// ListProviders handles GET /v1/content/providers.
func (h *ContentHandler) ListProviders(c *gin.Context) {
	kinds := h.service.AvailableProviderKinds(c.Request.Context())
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: contentres.ProvidersResponse{
		Configured: h.service.ConfiguredProviderCount(),
		Available: functional.Map(kinds, func(k generation.ProviderKind) string {
			return string(k)
		}),
	}})
}

// classify maps service errors onto the platform error taxonomy. Orchestration
// sentinels get their own statuses; anything unrecognised is internal.
func (h *ContentHandler) classify(c *gin.Context, err error) *platformerrors.PlatformError {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, generation.ErrNoProvidersConfigured):
		return platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeUnavailable, "no generation providers are configured", err)
	case errors.Is(err, generation.ErrNoSuccessfulResponses):
		return platformerrors.NewError(ctx, platformerrors.LayerHandler, platformerrors.ErrorTypeExternal, "every generation provider failed", err)
	default:
		return platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "content generation failed")
	}
}

func (h *ContentHandler) respondError(c *gin.Context, perr *platformerrors.PlatformError) {
	status := platformerrors.ErrorTypeToHTTPStatus(perr.Type)
	if status >= http.StatusInternalServerError {
		h.log.Error().Err(perr).Str("path", c.Request.URL.Path).Msg("request failed")
	} else {
		h.log.Warn().Err(perr).Str("path", c.Request.URL.Path).Msg("request rejected")
	}
	c.AbortWithStatusJSON(status, dto.Response{
		Success: false,
		Error: &dto.ErrorInfo{
			Code:    string(perr.Type),
			Message: perr.Message,
		},
	})
}
