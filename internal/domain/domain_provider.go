package domain

import (
	"github.com/google/wire"

	"brandforge/services/content-api/internal/domain/generation"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	generation.NewService,
)
