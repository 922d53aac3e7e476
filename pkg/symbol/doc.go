// Package symbol holds the registry of named regular-expression fragments.
//
// Every fragment is a short literal token such as "^", "0-9" or `\d`, keyed
// by a readable Name. The default registry covers anchors, quantifiers,
// delimiters, Perl meta classes and POSIX bracket expressions:
//
//	tok, err := symbol.Lookup(symbol.DigitRange) // "0-9"
//	if errors.Is(err, symbol.ErrUnknownSymbol) {
//	    // name was not registered
//	}
//
// Registries never change after construction, so lookups need no locking.
package symbol
