package observability

import (
	"context"

	"recipebox/internal/infrastructure/observability"
)

// Setup initialises logging and tracing and returns the tracer shutdown.
func Setup(serviceName string) func(context.Context) error {
	observability.InitLogger()
	return observability.InitTracing(serviceName)
}
