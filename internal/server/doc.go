// Package server runs the HTTP API, the gRPC health endpoint and the
// background workers together, and stops them gracefully on SIGTERM, SIGINT
// or SIGQUIT.
package server
