// Package server runs the development conversion server.
//
// It owns the HTTP listener and the background workers, starts them together
// and shuts them down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
