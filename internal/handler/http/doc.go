// Package http implements the HTTP transport layer of the upload server.
//
// It exposes route wiring, the upload handler and the middleware used by the
// REST API. Request tracing, access logging, API version checks and the
// access guards of the public and internal upload routes are handled here
// before requests are delegated to the service layer.
package http
