// Package server runs the fixture sync server.
//
// It owns the HTTP listener lifecycle: startup, signal handling, and graceful
// shutdown once SIGINT, SIGTERM or SIGQUIT arrives.
package server
