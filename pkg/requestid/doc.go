// Package requestid attaches correlation identifiers to HTTP requests.
//
// Middleware reuses a valid "X-Request-ID" header or generates a UUIDv4,
// stores the ID in the request context and echoes it in the response.
// LoggerExtractor plugs the ID into every log record written with the
// request context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// Invalid client IDs are replaced silently; the package returns no errors.
package requestid
