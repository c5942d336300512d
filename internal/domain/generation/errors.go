package generation

import "errors"

var (
	// ErrNoProvidersConfigured is raised before dispatch when no adapter was
	// constructed (no credentials supplied anywhere).
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrNoSuccessfulResponses is raised after fan-in when every provider
	// response was error-tagged or empty. It is the only error that escapes
	// a dispatched generation.
	ErrNoSuccessfulResponses = errors.New("no successful provider responses")
)
