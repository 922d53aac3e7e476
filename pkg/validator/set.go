package validator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/DavidNgugi/MiniRegex/pkg/engine"
	"github.com/DavidNgugi/MiniRegex/pkg/logger"
)

// DefaultMatchTimeout bounds a single match for sets built without WithMatchTimeout.
const DefaultMatchTimeout = 250 * time.Millisecond

// Set evaluates catalog validators with shared settings.
// A Set is immutable after New and safe for concurrent use.
type Set struct {
	timeout time.Duration
	log     *slog.Logger
}

// Option configures a Set.
type Option func(*Set)

// WithMatchTimeout bounds each match. Zero disables the limit; negative values are ignored.
func WithMatchTimeout(d time.Duration) Option {
	return func(s *Set) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used to report evaluations. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Set) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a Set with DefaultMatchTimeout and the default slog logger.
func New(opts ...Option) *Set {
	s := &Set{
		timeout: DefaultMatchTimeout,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("validator"))
	return s
}

// Match runs the named validator against subject.
//
// subject must be a string or a non-nil *string; anything else fails with
// ErrInvalidArgument. A false result with a nil error means the subject was
// evaluated and did not match.
func (s *Set) Match(name Name, subject any) (bool, error) {
	return s.MatchContext(context.Background(), name, subject)
}

// MatchContext is Match with a context whose values reach the logger's
// context extractors. A context that is already done is not evaluated.
func (s *Set) MatchContext(ctx context.Context, name Name, subject any) (bool, error) {
	var str string
	switch v := subject.(type) {
	case string:
		str = v
	case *string:
		if v == nil {
			return false, fmt.Errorf("%w: nil *string subject", ErrInvalidArgument)
		}
		str = *v
	default:
		return false, fmt.Errorf("%w: subject must be a string, got %T", ErrInvalidArgument, subject)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return s.match(ctx, name, str)
}

func (s *Set) match(ctx context.Context, name Name, subject string) (bool, error) {
	e, ok := catalog[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}

	if e.normalize {
		subject = norm.NFC.String(subject)
	}

	matched, err := engine.Match(e.pattern, subject, e.options(s.timeout))
	if err != nil {
		s.log.WarnContext(ctx, "validator evaluation failed",
			logger.Validator(string(name)),
			logger.Pattern(e.pattern),
			logger.Error(err),
		)
		return false, err
	}
	if !matched && e.fallback != nil {
		matched = e.fallback(subject)
	}

	s.log.DebugContext(ctx, "validator evaluated",
		logger.Validator(string(name)),
		logger.Matched(matched),
		logger.SubjectLen(subject),
	)
	return matched, nil
}

// MatchAlphabetic reports whether subject consists only of ASCII letters.
// The empty string matches.
func (s *Set) MatchAlphabetic(subject string) (bool, error) {
	return s.match(context.Background(), Alphabetic, subject)
}

// MatchNumeric reports whether subject consists only of ASCII digits.
// The empty string matches.
func (s *Set) MatchNumeric(subject string) (bool, error) {
	return s.match(context.Background(), Numeric, subject)
}

// MatchAlphanumeric reports whether subject consists only of ASCII letters and digits.
// The empty string matches.
func (s *Set) MatchAlphanumeric(subject string) (bool, error) {
	return s.match(context.Background(), Alphanumeric, subject)
}

// MatchHexColor reports whether subject is 3 or 6 hex digits with an optional leading '#'.
func (s *Set) MatchHexColor(subject string) (bool, error) {
	return s.match(context.Background(), HexColor, subject)
}

// MatchURL reports whether subject is a URL with an optional http, https or
// ftp scheme. Numeric hosts in private, loopback and link-local ranges are
// rejected; host names are not checked against those ranges.
func (s *Set) MatchURL(subject string) (bool, error) {
	return s.match(context.Background(), URL, subject)
}

// MatchEmail reports whether subject is an email address, either by the
// catalog pattern or by net/mail accepting it as a bare address.
func (s *Set) MatchEmail(subject string) (bool, error) {
	return s.match(context.Background(), Email, subject)
}

// MatchDateDMY reports whether subject is a day, month, year date separated by
// one of "-", " ", "/" or ".". The year may have two or four digits and the
// empty string matches.
func (s *Set) MatchDateDMY(subject string) (bool, error) {
	return s.match(context.Background(), DateDMY, subject)
}

// MatchDateYMD is MatchDateDMY with year, month, day ordering.
func (s *Set) MatchDateYMD(subject string) (bool, error) {
	return s.match(context.Background(), DateYMD, subject)
}

// MatchDateMDY is MatchDateDMY with month, day, year ordering.
func (s *Set) MatchDateMDY(subject string) (bool, error) {
	return s.match(context.Background(), DateMDY, subject)
}
