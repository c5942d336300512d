package routes

import (
	"github.com/google/wire"

	"brandforge/services/content-api/internal/interfaces/httpserver/handlers/contenthandler"
	v1 "brandforge/services/content-api/internal/interfaces/httpserver/routes/v1"
	"brandforge/services/content-api/internal/interfaces/httpserver/routes/v1/contentroute"
)

var RouteProvider = wire.NewSet(
	// Handlers
	contenthandler.NewContentHandler,

	// Routes
	v1.NewV1Route,
	contentroute.NewContentRoute,
)
