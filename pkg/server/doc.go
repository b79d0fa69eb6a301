// Package server implements the HTML form frontend.
//
// The frontend serves a single page with a text field named "text". Posting
// (or passing as a query parameter) a modulus N renders the reduction trace
// and G mod N; anything else renders a short prompt.
//
// # Routes
//
//   - GET, POST /: the form page
//   - GET /healthz: liveness probe
//   - GET /metrics: Prometheus metrics, when a registry handler is supplied
//
// Every request is logged with a fresh request id, which is also returned in
// the X-Request-Id response header.
package server
