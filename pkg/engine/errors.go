package engine

import "errors"

var (
	// ErrPatternCompile is returned when the engine rejects a pattern.
	ErrPatternCompile = errors.New("pattern failed to compile")

	// ErrMatchTimeout is returned when a match exceeds the configured timeout.
	ErrMatchTimeout = errors.New("pattern match timed out")
)
