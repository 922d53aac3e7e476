package validator

import (
	"context"
	"sync"
)

var (
	defaultSetOnce sync.Once
	defaultSet     *Set
)

// Default returns the Set used by the package-level functions.
// It is created on first use with the default slog logger.
func Default() *Set {
	defaultSetOnce.Do(func() {
		defaultSet = New()
	})
	return defaultSet
}

// Match runs the named validator on the default Set.
func Match(name Name, subject any) (bool, error) {
	return Default().Match(name, subject)
}

// MatchContext runs the named validator on the default Set with ctx.
func MatchContext(ctx context.Context, name Name, subject any) (bool, error) {
	return Default().MatchContext(ctx, name, subject)
}

func MatchAlphabetic(subject string) (bool, error) {
	return Default().MatchAlphabetic(subject)
}

func MatchNumeric(subject string) (bool, error) {
	return Default().MatchNumeric(subject)
}

func MatchAlphanumeric(subject string) (bool, error) {
	return Default().MatchAlphanumeric(subject)
}

func MatchHexColor(subject string) (bool, error) {
	return Default().MatchHexColor(subject)
}

func MatchURL(subject string) (bool, error) {
	return Default().MatchURL(subject)
}

func MatchEmail(subject string) (bool, error) {
	return Default().MatchEmail(subject)
}

func MatchDateDMY(subject string) (bool, error) {
	return Default().MatchDateDMY(subject)
}

func MatchDateYMD(subject string) (bool, error) {
	return Default().MatchDateYMD(subject)
}

func MatchDateMDY(subject string) (bool, error) {
	return Default().MatchDateMDY(subject)
}
