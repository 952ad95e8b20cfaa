// Package logger builds *slog.Logger instances through functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record so request-scoped values reach the output without
// being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "forecast"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	log.DebugContext(ctx, "validation completed",
//	    logger.Component("validator"),
//	    logger.FailureCount(2),
//	    logger.Fields("date", "temperature_c"),
//	)
//
// Fields returns an empty slog.Attr for an empty list, which slog drops, so
// call sites need no length checks.
package logger
