package server

import "context"

// Server defines the lifecycle contract of the upload server.
type Server interface {
	// RunServer serves requests until ctx is done or a termination signal
	// arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops serving and waits for in-flight requests
	// until ctx is done.
	Shutdown(ctx context.Context) error
}
