package engine_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidNgugi/MiniRegex/pkg/engine"
)

func TestTranslatePOSIX(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{`^[[:alpha:]]+$`, `^[a-zA-Z]+$`},
		{`^[[:digit:]]{4}$`, `^[0-9]{4}$`},
		{`[[:alnum:]_]`, `[a-zA-Z0-9_]`},
		{`[^[:space:]]`, `[^ \t\n\v\f\r]`},
		{`[[:xdigit:]]`, `[0-9A-Fa-f]`},
		{`^[a-z]+$`, `^[a-z]+$`},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, engine.TranslatePOSIX(tc.in), "input %q", tc.in)
	}
}

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("compiles and matches", func(t *testing.T) {
		p, err := engine.Compile(`^[[:alpha:]]+$`, engine.Options{})
		require.NoError(t, err)
		assert.Equal(t, `^[[:alpha:]]+$`, p.String())

		ok, err := p.MatchString("abcXYZ")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = p.MatchString("abc1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("supports lookahead", func(t *testing.T) {
		ok, err := engine.Match(`^(?!10\.)\d+\.\d+$`, "11.5", engine.Options{})
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = engine.Match(`^(?!10\.)\d+\.\d+$`, "10.5", engine.Options{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ignore case", func(t *testing.T) {
		ok, err := engine.Match(`^abc$`, "ABC", engine.Options{})
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = engine.Match(`^abc$`, "ABC", engine.Options{IgnoreCase: true})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("malformed pattern wraps ErrPatternCompile", func(t *testing.T) {
		p, err := engine.Compile(`^(abc$`, engine.Options{})
		require.Error(t, err)
		assert.Nil(t, p)
		assert.True(t, errors.Is(err, engine.ErrPatternCompile))

		ok, err := engine.Match(`[z-a]`, "a", engine.Options{})
		assert.False(t, ok)
		assert.ErrorIs(t, err, engine.ErrPatternCompile)
	})
}

func TestMatchTimeout(t *testing.T) {
	t.Parallel()

	subject := strings.Repeat("a", 40) + "!"
	ok, err := engine.Match(`^(a+)+$`, subject, engine.Options{Timeout: time.Millisecond})
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, engine.ErrMatchTimeout)
}
