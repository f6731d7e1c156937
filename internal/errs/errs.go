// Package errs defines the error types the HTTP layer understands.
//
// Every failure a client can observe is an *HTTPError: a status, a
// machine-readable code for logs, and either a single message or a batch of
// validation messages. The global error handler in the middleware package is
// the only place that turns these into response bodies.
package errs
