package miniregex_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	miniregex "github.com/DavidNgugi/MiniRegex"
	"github.com/DavidNgugi/MiniRegex/pkg/config"
	"github.com/DavidNgugi/MiniRegex/pkg/logger"
	"github.com/DavidNgugi/MiniRegex/pkg/symbol"
)

func TestNewValidatorSet(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.Config{
		MatchTimeout: time.Second,
		LogLevel:     "debug",
		LogFormat:    "json",
		Environment:  "staging",
	}

	set, err := miniregex.NewValidatorSet(cfg, logger.WithOutput(buf))
	require.NoError(t, err)
	ok, err := set.MatchHexColor("#abc")
	require.NoError(t, err)
	assert.True(t, ok)

	out := buf.String()
	assert.Contains(t, out, `"env":"staging"`)
	assert.Contains(t, out, `"validator":"hex-color"`)
}

func TestNewLogger(t *testing.T) {
	t.Run("explicit settings override environment presets", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log, err := miniregex.NewLogger(config.Config{
			LogLevel:    "warn",
			LogFormat:   "text",
			Environment: "production",
		}, logger.WithOutput(buf))
		require.NoError(t, err)

		log.Info("hidden")
		assert.Empty(t, buf.String())

		log.Warn("shown")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("invalid config is an error", func(t *testing.T) {
		testCases := []config.Config{
			{LogFormat: "yaml"},
			{LogFormat: "json", LogLevel: "verbose"},
			{LogFormat: "json", MatchTimeout: -time.Second},
		}
		for _, cfg := range testCases {
			assert.NotPanics(t, func() {
				log, err := miniregex.NewLogger(cfg)
				assert.Nil(t, log)
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
			})

			set, err := miniregex.NewValidatorSet(cfg)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		}
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("builds a set", func(t *testing.T) {
		t.Setenv("MINIREGEX_LOG_FORMAT", "text")
		t.Setenv("MINIREGEX_LOG_LEVEL", "error")

		set, err := miniregex.FromEnv()
		require.NoError(t, err)

		ok, err := set.MatchDateYMD("2024-01-31")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		t.Setenv("MINIREGEX_LOG_FORMAT", "yaml")

		set, err := miniregex.FromEnv()
		assert.Nil(t, set)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestNewBuilder(t *testing.T) {
	b := miniregex.NewBuilder()
	b.Begin()
	for _, name := range []symbol.Name{symbol.Start, symbol.AnyDigit, symbol.OneOrMore, symbol.End} {
		_, err := b.Then(name)
		require.NoError(t, err)
	}
	b.End()

	assert.Equal(t, `/^\d+$/`, b.String())
	ok, err := b.Match("2024")
	require.NoError(t, err)
	assert.True(t, ok)
}
