package miniregex

import (
	"log/slog"

	"github.com/DavidNgugi/MiniRegex/pkg/builder"
	"github.com/DavidNgugi/MiniRegex/pkg/config"
	"github.com/DavidNgugi/MiniRegex/pkg/logger"
	"github.com/DavidNgugi/MiniRegex/pkg/validator"
)

// NewLogger validates cfg and builds the logger it describes.
// Environment presets apply first; an explicit level and the format override them.
func NewLogger(cfg config.Config, opts ...logger.Option) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base := []logger.Option{logger.WithEnvironment(cfg.Environment)}
	if cfg.LogLevel != "" {
		base = append(base, logger.WithLevelName(cfg.LogLevel))
	}
	base = append(base, logger.WithFormat(logger.Format(cfg.LogFormat)))
	return logger.New(append(base, opts...)...), nil
}

// NewValidatorSet returns a validator set using cfg's match timeout and a
// logger built by NewLogger.
func NewValidatorSet(cfg config.Config, opts ...logger.Option) (*validator.Set, error) {
	log, err := NewLogger(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return validator.New(
		validator.WithMatchTimeout(cfg.MatchTimeout),
		validator.WithLogger(log),
	), nil
}

// FromEnv loads configuration from the environment and returns a ready validator set.
func FromEnv() (*validator.Set, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return NewValidatorSet(cfg)
}

// NewBuilder returns an empty pattern builder over the default symbol registry.
func NewBuilder(opts ...builder.Option) *builder.Builder {
	return builder.New(opts...)
}
