package engine

import (
	"errors"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Options controls how a pattern is compiled and executed.
type Options struct {
	// IgnoreCase enables case-insensitive matching.
	IgnoreCase bool

	// Timeout bounds a single match. Zero means no limit.
	Timeout time.Duration
}

// Pattern is a compiled expression ready for matching.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// posixClasses maps POSIX bracket expressions to equivalent ASCII ranges.
// The engine follows .NET syntax, which has no [:name:] classes.
var posixClasses = strings.NewReplacer(
	"[:alpha:]", `a-zA-Z`,
	"[:digit:]", `0-9`,
	"[:alnum:]", `a-zA-Z0-9`,
	"[:space:]", ` \t\n\v\f\r`,
	"[:upper:]", `A-Z`,
	"[:lower:]", `a-z`,
	"[:xdigit:]", `0-9A-Fa-f`,
)

// TranslatePOSIX rewrites POSIX bracket expressions in expr into plain ranges.
func TranslatePOSIX(expr string) string {
	if !strings.Contains(expr, "[:") {
		return expr
	}
	return posixClasses.Replace(expr)
}

// Compile translates and compiles expr.
// Any engine error is joined with ErrPatternCompile.
func Compile(expr string, opts Options) (*Pattern, error) {
	flags := regexp2.None
	if opts.IgnoreCase {
		flags |= regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(TranslatePOSIX(expr), flags)
	if err != nil {
		return nil, errors.Join(ErrPatternCompile, err)
	}
	if opts.Timeout > 0 {
		re.MatchTimeout = opts.Timeout
	}

	return &Pattern{source: expr, re: re}, nil
}

// MatchString reports whether subject contains a match of the pattern.
// Anchoring is the caller's concern and must be part of the expression.
func (p *Pattern) MatchString(subject string) (bool, error) {
	ok, err := p.re.MatchString(subject)
	if err != nil {
		// regexp2 only fails a match when the timeout is exceeded.
		return false, errors.Join(ErrMatchTimeout, err)
	}
	return ok, nil
}

// String returns the expression as given to Compile, before translation.
func (p *Pattern) String() string {
	return p.source
}

// Match compiles expr and matches it against subject in one step.
// Nothing is cached between calls.
func Match(expr, subject string, opts Options) (bool, error) {
	p, err := Compile(expr, opts)
	if err != nil {
		return false, err
	}
	return p.MatchString(subject)
}
