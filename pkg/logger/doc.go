// Package logger builds structured *slog.Logger values for MiniRegex
// components.
//
// New assembles a text or JSON slog handler from functional options and wraps
// it with LogHandlerDecorator, which pulls extra attributes out of the
// context on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment("development"),
//	    logger.WithAttr(logger.Component("validator")),
//	)
//	log.Debug("pattern matched",
//	    logger.Validator("email"),
//	    logger.Matched(true),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error so callers can pass it unconditionally.
package logger
