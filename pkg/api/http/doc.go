// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Service status (GET /)
//   - Liveness checks (GET /health)
//   - Prometheus metrics (GET /metrics, when enabled)
//
// Unknown paths answer 404 and known paths with an unsupported method
// answer 405, both produced by the router.
package http
