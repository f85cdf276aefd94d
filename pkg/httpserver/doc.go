// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run blocks until the context is cancelled or the process receives SIGINT or
// SIGTERM, then shuts the server down within the shutdown timeout. Lifecycle
// events are logged through the configured slog.Logger; hooks registered with
// WithStartHook and WithStopHook run around the server lifetime.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" or
// "NOT_READY") probes.
//
// # Error Handling
//
// Run returns errors joined with ErrStart and Shutdown with ErrShutdown; test
// them with errors.Is.
package httpserver
