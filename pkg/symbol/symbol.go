package symbol

import (
	"fmt"
	"maps"
	"slices"
)

// Name is the human-readable key of a pattern fragment.
type Name string

// Quantifiers, anchors and delimiters.
const (
	Start          Name = "start"
	End            Name = "end"
	At             Name = "at"
	Or             Name = "or"
	Optional       Name = "optional"
	NonCapture     Name = "non-capture"
	Underscore     Name = "underscore"
	Hyphen         Name = "hyphen"
	OneOrMore      Name = "one-or-more"
	LowercaseRange Name = "lowercase-range"
	UppercaseRange Name = "uppercase-range"
	DigitRange     Name = "digit-range"
	OpenBrace      Name = "open-brace"
	CloseBrace     Name = "close-brace"
	OpenBracket    Name = "open-bracket"
	CloseBracket   Name = "close-bracket"
	Slash          Name = "slash"
	EscapedSlash   Name = "escaped-slash"
	Comma          Name = "comma"
	Colon          Name = "colon"
	Any            Name = "any"
	ZeroOrMore     Name = "zero-or-more"
)

// Perl-style meta characters.
const (
	SingleCharacter  Name = "single-character"
	AnyDigit         Name = "any-digit"
	NonDigit         Name = "non-digit"
	AnyWordCharacter Name = "any-word-character"
	NonWordCharacter Name = "non-word-character"
	Whitespace       Name = "whitespace"
	NonWhitespace    Name = "non-whitespace"
)

// POSIX character ranges.
const (
	Alpha Name = "alpha"
	Digit Name = "digit"
	Alnum Name = "alnum"
	Space Name = "space"
)

// Registry maps fragment names to literal syntax tokens.
// A Registry is read-only once built and safe for concurrent use.
type Registry struct {
	tokens map[Name]string
}

var defaultRegistry = NewRegistry(map[Name]string{
	Start:          "^",
	End:            "$",
	At:             "@",
	Or:             "|",
	Optional:       "?",
	NonCapture:     "?:",
	Underscore:     "_",
	Hyphen:         "-",
	OneOrMore:      "+",
	LowercaseRange: "a-z",
	UppercaseRange: "A-Z",
	DigitRange:     "0-9",
	OpenBrace:      "{",
	CloseBrace:     "}",
	OpenBracket:    "[",
	CloseBracket:   "]",
	Slash:          "/",
	EscapedSlash:   `\/`,
	Comma:          ",",
	Colon:          ":",
	Any:            ".",
	ZeroOrMore:     "*",

	SingleCharacter:  ".",
	AnyDigit:         `\d`,
	NonDigit:         `\D`,
	AnyWordCharacter: `\w`,
	NonWordCharacter: `\W`,
	Whitespace:       `\s`,
	NonWhitespace:    `\S`,

	Alpha: "[[:alpha:]]",
	Digit: "[[:digit:]]",
	Alnum: "[[:alnum:]]",
	Space: "[[:space:]]",
})

// Default returns the built-in registry.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry builds a registry from a copy of tokens.
func NewRegistry(tokens map[Name]string) *Registry {
	return &Registry{tokens: maps.Clone(tokens)}
}

// Lookup returns the token registered under name.
func (r *Registry) Lookup(name Name) (string, error) {
	token, ok := r.tokens[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
	}
	return token, nil
}

// MustLookup is like Lookup but panics on unknown names.
// Intended for package-level initialisation with constant names.
func (r *Registry) MustLookup(name Name) string {
	token, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return token
}

func (r *Registry) Has(name Name) bool {
	_, ok := r.tokens[name]
	return ok
}

// Names returns all registered names in lexical order.
func (r *Registry) Names() []Name {
	return slices.Sorted(maps.Keys(r.tokens))
}

// Lookup resolves name against the default registry.
func Lookup(name Name) (string, error) {
	return defaultRegistry.Lookup(name)
}
