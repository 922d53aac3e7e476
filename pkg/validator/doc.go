// Package validator provides canned pattern validators for common string
// formats: alphabetic, numeric, alphanumeric, hex colors, URLs, email
// addresses and three date layouts.
//
// Each validator is a catalog entry pairing a Name with a fully anchored
// pattern. Matching is delegated to the engine package and every call compiles
// a fresh pattern, so nothing is shared between calls.
//
// # Architecture
//
// The catalog (catalog.go) is fixed at build time. A Set evaluates catalog
// entries with a per-match timeout and a logger; it holds no mutable state and
// is safe for concurrent use. Package-level functions use a lazily created
// default Set.
//
// Results distinguish "did not match" from "could not evaluate":
//
//	ok, err := validator.MatchURL("https://192.168.1.5:8080/")
//	// ok == false, err == nil: private address rejected
//
//	ok, err = validator.Match(validator.Email, 42)
//	// errors.Is(err, validator.ErrInvalidArgument)
//
// MatchContext takes a context whose values the logger's context extractors
// add to each evaluation record.
//
// # Rules
//
// For form-style validation, the Valid* constructors return Rule values which
// Apply evaluates together, aggregating failed matches into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.ValidEmail("email", form.Email),
//	    validator.ValidHexColor("color", form.Color),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // field-level messages and translation keys
//	}
//
// When a rule cannot be evaluated, for instance because a match timed out,
// Apply stops and returns an error wrapping ErrEvaluation instead.
package validator
