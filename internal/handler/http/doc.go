// Package http implements the HTTP transport layer of the relay.
//
// It exposes route wiring, the upload and health handlers, and the middleware
// chain (panic recovery, request tracing, access logging, CORS) that runs
// before requests reach the service layer.
package http
