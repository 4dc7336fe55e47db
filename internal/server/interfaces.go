package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled or
	// a server fails, then shuts every server down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server, giving in-flight requests until
	// ctx is done.
	Shutdown(ctx context.Context) error
}
