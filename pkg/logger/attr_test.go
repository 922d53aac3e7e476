package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidNgugi/MiniRegex/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestStringAttrs(t *testing.T) {
	testCases := []struct {
		attr slog.Attr
		key  string
		want string
	}{
		{logger.Component("builder"), "component", "builder"},
		{logger.Validator("email"), "validator", "email"},
		{logger.Pattern(`^\d+$`), "pattern", `^\d+$`},
		{logger.Symbol("start"), "symbol", "start"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.key, tc.attr.Key)
		assert.Equal(t, tc.want, tc.attr.Value.String())
	}
}

func TestMatched(t *testing.T) {
	attr := logger.Matched(true)
	require.Equal(t, "matched", attr.Key)
	assert.True(t, attr.Value.Bool())
}

func TestSubjectLen(t *testing.T) {
	attr := logger.SubjectLen("abcd")
	require.Equal(t, "subject_len", attr.Key)
	assert.Equal(t, int64(4), attr.Value.Int64())
}
