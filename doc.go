// Package miniregex builds regular expressions from readable fragment names
// and ships a small catalog of ready-made string validators.
//
// The module is split into focused packages:
//
//   - symbol: registry of named fragments such as "start" (^) or "digit-range" (0-9)
//   - builder: accumulates fragments into a delimited pattern and matches it
//   - validator: canned validators (alphabetic, numeric, alphanumeric, hex
//     color, URL, email, three date layouts) and form-style Rule helpers
//   - engine: the regexp2-backed matcher shared by builder and validator
//   - config, logger: environment configuration and structured logging
//
// This package wires them together.
//
// Building a pattern:
//
//	b := miniregex.NewBuilder()
//	b.Begin()
//	b.StartsWith(symbol.Start)
//	b.Then(symbol.AnyDigit)
//	b.Then(symbol.OneOrMore)
//	b.Then(symbol.End)
//	b.End()
//	ok, err := b.Match("2024") // true, nil
//
// Validating with settings from the environment:
//
//	set, err := miniregex.FromEnv()
//	if err != nil {
//		return err
//	}
//	ok, err := set.MatchEmail("user@example.com")
//
// A false result with a nil error means the subject did not match; a non-nil
// error means it could not be evaluated (invalid argument, unknown name,
// pattern compile failure or match timeout).
package miniregex
