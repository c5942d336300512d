package v1

import (
	"github.com/gin-gonic/gin"

	"brandforge/services/content-api/internal/interfaces/httpserver/routes/v1/contentroute"
)

type V1Route struct {
	content *contentroute.ContentRoute
}

func NewV1Route(content *contentroute.ContentRoute) *V1Route {
	return &V1Route{content: content}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/v1")
	v1Route.content.RegisterRouter(v1Router)
}
