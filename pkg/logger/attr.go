package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Validator records a validator name under the key "validator".
func Validator(name string) slog.Attr {
	return slog.String("validator", name)
}

// Pattern records a regular expression under the key "pattern".
func Pattern(expr string) slog.Attr {
	return slog.String("pattern", expr)
}

// Symbol records a fragment name under the key "symbol".
func Symbol(name string) slog.Attr {
	return slog.String("symbol", name)
}

// Matched records a match outcome under the key "matched".
func Matched(ok bool) slog.Attr {
	return slog.Bool("matched", ok)
}

// SubjectLen records the byte length of a subject under the key "subject_len".
func SubjectLen(subject string) slog.Attr {
	return slog.Int("subject_len", len(subject))
}
