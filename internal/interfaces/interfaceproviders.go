package interfaces

import (
	"github.com/google/wire"

	"brandforge/services/content-api/internal/interfaces/httpserver"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHTTPServer,
)
