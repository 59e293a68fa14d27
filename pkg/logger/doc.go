// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers with consistent key names.
//
// New picks a text or JSON handler, applies the level and static attributes,
// and wraps the handler in LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record so request- or session-scoped
// values (a submission id, the active language) show up without threading
// them through every call.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "signup"),
//	    logger.WithContextValue("submission_id", submissionKey{}),
//	)
//	log.DebugContext(ctx, "field evaluated",
//	    logger.Field("email"),
//	    logger.Status("invalid"),
//	)
//
// Discard returns a logger that writes nothing; packages use it as the
// default when the caller does not inject one.
package logger
