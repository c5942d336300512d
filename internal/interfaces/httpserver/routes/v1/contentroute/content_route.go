package contentroute

import (
	"github.com/gin-gonic/gin"

	"brandforge/services/content-api/internal/interfaces/httpserver/handlers/contenthandler"
)

type ContentRoute struct {
	handler *contenthandler.ContentHandler
}

func NewContentRoute(handler *contenthandler.ContentHandler) *ContentRoute {
	return &ContentRoute{handler: handler}
}

func (contentRoute *ContentRoute) RegisterRouter(router gin.IRouter) {
	contentRouter := router.Group("/content")
	contentRouter.POST("/generations", contentRoute.handler.GenerateContent)
	contentRouter.POST("/subtopics", contentRoute.handler.GenerateSubtopics)
	contentRouter.GET("/providers", contentRoute.handler.ListProviders)
}
