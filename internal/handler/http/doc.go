// Package http implements the HTTP transport layer of the webapp server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging,
// response compression and HTTP Basic authentication are handled in this
// package before requests are delegated to the service layer.
package http
