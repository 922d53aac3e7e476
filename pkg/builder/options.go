package builder

import (
	"log/slog"

	"github.com/DavidNgugi/MiniRegex/pkg/engine"
	"github.com/DavidNgugi/MiniRegex/pkg/symbol"
)

// Option configures a Builder.
type Option func(*Builder)

// WithRegistry resolves fragment names against r instead of the default registry.
// A nil registry is ignored.
func WithRegistry(r *symbol.Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithEngineOptions sets the options used by Compile and Match.
func WithEngineOptions(opts engine.Options) Option {
	return func(b *Builder) {
		b.engineOpts = opts
	}
}

// WithLogger sets the logger that reports failed symbol lookups. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}
