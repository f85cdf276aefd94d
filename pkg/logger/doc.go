// Package logger provides a context-aware wrapper around Go's slog package
// with functional options, attribute helpers for number field events and
// injection of values stored in context.Context.
//
// New builds a slog.Handler (text or JSON, see Format) and applies static
// attributes. When ContextExtractors are registered, every record first
// receives the attributes they find in the record's context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "numberfield-demo"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "commit ignored",
//	    logger.FieldName("price"),
//	    logger.Input("12,,5"),
//	    logger.Error(err),
//	)
//
// # Error Handling
//
// Error produces an attribute only for a non-nil error, so it can be passed
// without a nil check.
package logger
