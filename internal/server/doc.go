// Package server wires and runs the upload server.
//
// It owns the HTTP server and the background workers, starts both, and
// shuts them down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
