package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandforge/services/content-api/internal/config"
	"brandforge/services/content-api/internal/domain/generation"
	"brandforge/services/content-api/internal/infrastructure"
	middleware "brandforge/services/content-api/internal/interfaces/httpserver/middlewares"
	v1 "brandforge/services/content-api/internal/interfaces/httpserver/routes/v1"
)

type HTTPServer struct {
	engine  *gin.Engine
	infra   *infrastructure.Infrastructure
	v1Route *v1.V1Route
	service *generation.Service
	config  *config.Config
}

func NewHTTPServer(
	v1Route *v1.V1Route,
	service *generation.Service,
	infra *infrastructure.Infrastructure,
	cfg *config.Config,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)
	server := &HTTPServer{
		engine:  gin.New(),
		infra:   infra,
		v1Route: v1Route,
		service: service,
		config:  cfg,
	}
	server.engine.Use(middleware.RequestID())
	server.engine.Use(middleware.TracingMiddleware(cfg.ServiceName))
	server.engine.Use(middleware.LoggingMiddleware(infra.Logger))
	server.engine.Use(middleware.MetricsMiddleware())
	server.engine.Use(middleware.CORSMiddleware())

	server.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Ready means at least one provider adapter was constructed; with zero
	// providers every generation call would answer 503 anyway.
	server.engine.GET("/readyz", func(c *gin.Context) {
		if server.service.ConfiguredProviderCount() == 0 {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "no providers configured"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	return server
}

// Engine exposes the underlying router for tests.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

func (s *HTTPServer) Run() error {
	root := s.engine.Group("/")
	s.v1Route.RegisterRouter(root)

	return s.engine.Run(fmt.Sprintf(":%d", s.config.HTTPPort))
}
