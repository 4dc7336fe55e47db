// Package server runs the books API transports: the HTTP server serving the
// chi router and, when a gRPC address is configured, the gRPC health server.
// Servers start together and stop together once the context is cancelled or
// any of them fails.
package server
