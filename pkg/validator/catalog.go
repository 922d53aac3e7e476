package validator

import (
	"fmt"
	"maps"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/DavidNgugi/MiniRegex/pkg/engine"
)

// Name identifies a canned validator.
type Name string

const (
	Alphabetic   Name = "alphabetic"
	Numeric      Name = "numeric"
	Alphanumeric Name = "alphanumeric"
	HexColor     Name = "hex-color"
	URL          Name = "url"
	Email        Name = "email"
	DateDMY      Name = "date-dmy"
	DateYMD      Name = "date-ymd"
	DateMDY      Name = "date-mdy"
)

// Every pattern is anchored with ^ and \z so the whole subject must match;
// $ would also accept a trailing newline.
const (
	alphabeticPattern   = `^[a-zA-Z]*\z`
	numericPattern      = `^[0-9]*\z`
	alphanumericPattern = `^[a-zA-Z0-9]*\z`
	hexColorPattern     = `^#?([a-fA-F0-9]{6}|[a-fA-F0-9]{3})\z`

	urlPattern = `^` +
		// protocol identifier
		`(?:(?:https?|ftp)://)?` +
		// user:pass authentication
		`(?:\S+(?::\S*)?@)?` +
		`(?:` +
		// private and local networks are excluded from the IP branch only
		`(?!(?:10|127)(?:\.\d{1,3}){3})` +
		`(?!(?:169\.254|192\.168)(?:\.\d{1,3}){2})` +
		`(?!172\.(?:1[6-9]|2\d|3[0-1])(?:\.\d{1,3}){2})` +
		// dotted octets, excluding 0.0.0.0, >= 224.0.0.0 and network/broadcast addresses
		`(?:[1-9]\d?|1\d\d|2[01]\d|22[0-3])` +
		`(?:\.(?:1?\d{1,2}|2[0-4]\d|25[0-5])){2}` +
		`(?:\.(?:[1-9]\d?|1\d\d|2[0-4]\d|25[0-4]))` +
		`|` +
		// host name
		`(?:(?:[a-z\u00a1-\uffff0-9]-*)*[a-z\u00a1-\uffff0-9]+)` +
		// domain name
		`(?:\.(?:[a-z\u00a1-\uffff0-9]-*)*[a-z\u00a1-\uffff0-9]+)*` +
		// TLD
		`(?:\.(?:[a-z\u00a1-\uffff]{2,}))` +
		`)` +
		// port
		`(?::\d{2,5})?` +
		// path
		`(?:/\S*)?` +
		`\z`

	emailPattern = `^[-0-9a-zA-Z.+_]+@[-0-9a-zA-Z.+_]+\.[a-zA-Z]{2,4}\z`

	dayPart   = `(0?[1-9]|[12][0-9]|3[01])`
	monthPart = `(0?[1-9]|1[012])`
	yearPart  = `(19|20)?[0-9]{2}`
	datePart  = `[- /.]`

	dateDMYPattern = `^(` + dayPart + datePart + monthPart + datePart + yearPart + `)?\z`
	dateYMDPattern = `^(` + yearPart + datePart + monthPart + datePart + dayPart + `)?\z`
	dateMDYPattern = `^(` + monthPart + datePart + dayPart + datePart + yearPart + `)?\z`
)

// entry is one catalog row.
type entry struct {
	pattern    string
	ignoreCase bool
	// normalize rewrites the subject to Unicode NFC before matching.
	normalize bool
	// fallback is an independent acceptance check OR-ed with the pattern.
	fallback func(subject string) bool
	message  string
}

var catalog = map[Name]entry{
	Alphabetic: {
		pattern: alphabeticPattern,
		message: "must contain only letters",
	},
	Numeric: {
		pattern: numericPattern,
		message: "must contain only digits",
	},
	Alphanumeric: {
		pattern: alphanumericPattern,
		message: "must contain only letters and digits",
	},
	HexColor: {
		pattern: hexColorPattern,
		message: "must be a hex color",
	},
	URL: {
		pattern:    urlPattern,
		ignoreCase: true,
		normalize:  true,
		message:    "must be a valid URL",
	},
	Email: {
		pattern:   emailPattern,
		normalize: true,
		fallback:  isBareAddress,
		message:   "must be a valid email address",
	},
	DateDMY: {
		pattern: dateDMYPattern,
		message: "must be a date in DD/MM/YYYY form",
	},
	DateYMD: {
		pattern: dateYMDPattern,
		message: "must be a date in YYYY/MM/DD form",
	},
	DateMDY: {
		pattern: dateMDYPattern,
		message: "must be a date in MM/DD/YYYY form",
	},
}

// isBareAddress accepts RFC 5322 addr-specs without a display name or angle
// brackets. The domain must be dotted with no empty labels, so intranet names
// such as "localhost" are rejected.
func isBareAddress(subject string) bool {
	addr, err := mail.ParseAddress(subject)
	if err != nil || addr.Name != "" || addr.Address != subject {
		return false
	}

	at := strings.LastIndexByte(addr.Address, '@')
	if at <= 0 {
		return false
	}
	domain := addr.Address[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	for label := range strings.SplitSeq(domain, ".") {
		if label == "" {
			return false
		}
	}
	return true
}

func (e entry) options(timeout time.Duration) engine.Options {
	return engine.Options{IgnoreCase: e.ignoreCase, Timeout: timeout}
}

// Names returns every catalog name in lexical order.
func Names() []Name {
	return slices.Sorted(maps.Keys(catalog))
}

// Pattern returns the literal pattern behind a validator.
func Pattern(name Name) (string, error) {
	e, ok := catalog[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownValidator, name)
	}
	return e.pattern, nil
}
