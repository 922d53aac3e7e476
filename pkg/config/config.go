package config

import (
	"fmt"
	"time"

	"github.com/DavidNgugi/MiniRegex/pkg/logger"
)

// Config holds the runtime settings of the validator set and its logger.
type Config struct {
	// MatchTimeout bounds a single validator match. Zero disables the limit.
	MatchTimeout time.Duration `env:"MINIREGEX_MATCH_TIMEOUT" envDefault:"250ms"`

	LogLevel    string `env:"MINIREGEX_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"MINIREGEX_LOG_FORMAT" envDefault:"json"`
	Environment string `env:"MINIREGEX_ENV" envDefault:"production"`
}

// Validate reports out-of-range values.
func (c Config) Validate() error {
	if c.MatchTimeout < 0 {
		return fmt.Errorf("%w: negative match timeout %s", ErrInvalidConfig, c.MatchTimeout)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log format %q must be json or text", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// FromEnv loads and validates a Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := Load(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
