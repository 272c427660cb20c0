// Package http implements the REST transport of the job tracker.
//
// It wires the chi router, the middleware chain (trace id, access log,
// recovery, compression, per-client throttling and bearer authentication)
// and the handlers that translate requests into service calls. Every
// response body is a [models.Response] envelope.
package http
