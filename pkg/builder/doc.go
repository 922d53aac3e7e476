// Package builder assembles regular-expression patterns from named fragments.
//
// A Builder keeps an ordered list of tokens. Begin and End append the "/"
// delimiter, StartsWith and Then append tokens resolved through a
// symbol.Registry, and Literal appends escaped text:
//
//	b := builder.New()
//	b.Begin()
//	b.StartsWith(symbol.Start)
//	b.Then(symbol.OpenBracket)
//	b.Then(symbol.DigitRange)
//	b.Then(symbol.CloseBracket)
//	b.Then(symbol.OneOrMore)
//	b.Then(symbol.End)
//	b.End()
//
//	b.String()              // "/^[0-9]+$/"
//	ok, err := b.Match("42") // true, nil
//
// Begin and End do not check the shape of the sequence. Expression, Compile
// and Match refuse a sequence that is not both opened and closed, returning
// ErrNotDelimited.
//
// Lookups of unknown fragment names are logged at warn level with the symbol
// name; set the logger with WithLogger.
package builder
