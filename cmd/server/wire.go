//go:build wireinject

package main

import (
	"github.com/google/wire"

	"brandforge/services/content-api/internal/domain"
	"brandforge/services/content-api/internal/infrastructure"
	"brandforge/services/content-api/internal/interfaces"
	"brandforge/services/content-api/internal/interfaces/httpserver/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
