package validator

import "errors"

var (
	// ErrInvalidArgument is returned when a subject is not a string.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownValidator is returned when a name is not in the catalog.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrEvaluation is returned by Apply when a rule could not be evaluated,
	// as opposed to evaluated and not matched.
	ErrEvaluation = errors.New("validation could not be evaluated")
)
