package builder

import (
	"log/slog"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/DavidNgugi/MiniRegex/pkg/engine"
	"github.com/DavidNgugi/MiniRegex/pkg/logger"
	"github.com/DavidNgugi/MiniRegex/pkg/symbol"
)

// delimiter opens and closes an expression.
const delimiter = "/"

// Builder accumulates pattern fragments in insertion order.
//
// A Builder is owned by a single caller. It performs no locking; sharing one
// instance between goroutines requires external synchronisation.
type Builder struct {
	registry   *symbol.Registry
	engineOpts engine.Options
	log        *slog.Logger
	tokens     []string

	// joined caches String; valid only while fresh is true.
	joined string
	fresh  bool
}

// New returns an empty Builder backed by the default symbol registry and the
// default slog logger.
func New(opts ...Option) *Builder {
	b := &Builder{
		registry: symbol.Default(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.With(logger.Component("builder"))
	return b
}

// Begin appends the opening delimiter and returns the new sequence length.
// Calling Begin twice appends a second delimiter.
func (b *Builder) Begin() int {
	return b.push(delimiter)
}

// StartsWith resolves anchor through the registry and appends its token.
// An empty anchor resolves to symbol.Start.
func (b *Builder) StartsWith(anchor symbol.Name) (int, error) {
	if anchor == "" {
		anchor = symbol.Start
	}
	return b.Then(anchor)
}

// Then resolves name through the registry and appends its token.
func (b *Builder) Then(name symbol.Name) (int, error) {
	tok, err := b.registry.Lookup(name)
	if err != nil {
		b.log.Warn("unknown symbol", logger.Symbol(string(name)), logger.Error(err))
		return len(b.tokens), err
	}
	return b.push(tok), nil
}

// Literal appends text with every metacharacter and the delimiter escaped.
func (b *Builder) Literal(text string) int {
	escaped := strings.ReplaceAll(regexp2.Escape(text), delimiter, `\`+delimiter)
	return b.push(escaped)
}

// End appends the closing delimiter and returns the new sequence length.
func (b *Builder) End() int {
	return b.push(delimiter)
}

// Clear discards every accumulated token and the cached joined string.
func (b *Builder) Clear() {
	b.tokens = nil
	b.joined = ""
	b.fresh = false
}

// Raw hands a hand-written pattern to op and returns its error.
// The builder's own sequence is left untouched.
func (b *Builder) Raw(pattern string, op func(pattern string) error) error {
	if op == nil {
		return ErrNilOperation
	}
	return op(pattern)
}

// Len returns the number of accumulated tokens.
func (b *Builder) Len() int {
	return len(b.tokens)
}

// Tokens returns a copy of the accumulated sequence.
func (b *Builder) Tokens() []string {
	out := make([]string, len(b.tokens))
	copy(out, b.tokens)
	return out
}

// String joins the sequence, delimiters included.
func (b *Builder) String() string {
	if !b.fresh {
		b.joined = strings.Join(b.tokens, "")
		b.fresh = true
	}
	return b.joined
}

// Expression returns the pattern between the delimiters.
// It fails with ErrNotDelimited unless the sequence starts with Begin and ends with End.
func (b *Builder) Expression() (string, error) {
	n := len(b.tokens)
	if n < 2 || b.tokens[0] != delimiter || b.tokens[n-1] != delimiter {
		return "", ErrNotDelimited
	}
	return strings.Join(b.tokens[1:n-1], ""), nil
}

// Compile compiles the delimited expression with the builder's engine options.
func (b *Builder) Compile() (*engine.Pattern, error) {
	expr, err := b.Expression()
	if err != nil {
		return nil, err
	}
	return engine.Compile(expr, b.engineOpts)
}

// Match compiles the expression and matches it against subject.
func (b *Builder) Match(subject string) (bool, error) {
	p, err := b.Compile()
	if err != nil {
		return false, err
	}
	return p.MatchString(subject)
}

func (b *Builder) push(tok string) int {
	b.tokens = append(b.tokens, tok)
	b.fresh = false
	return len(b.tokens)
}
