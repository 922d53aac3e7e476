package validator

import "context"

// Rule returns a Rule that checks value with the named validator.
// An unknown name produces a Rule whose Check fails with ErrUnknownValidator.
func (s *Set) Rule(name Name, field, value string) Rule {
	return Rule{
		Check: func() (bool, error) {
			return s.match(context.Background(), name, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        catalog[name].message,
			TranslationKey: "validation." + string(name),
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidAlphabetic(field, value string) Rule {
	return Default().Rule(Alphabetic, field, value)
}

func ValidNumeric(field, value string) Rule {
	return Default().Rule(Numeric, field, value)
}

func ValidAlphanumeric(field, value string) Rule {
	return Default().Rule(Alphanumeric, field, value)
}

func ValidHexColor(field, value string) Rule {
	return Default().Rule(HexColor, field, value)
}

// ValidURL validates that a string is a URL. Numeric hosts in private ranges fail.
func ValidURL(field, value string) Rule {
	return Default().Rule(URL, field, value)
}

// ValidEmail validates that a string is an email address.
func ValidEmail(field, value string) Rule {
	return Default().Rule(Email, field, value)
}

// ValidDateDMY validates a DD/MM/YYYY date. Empty values pass; combine with a
// required check where a date must be present.
func ValidDateDMY(field, value string) Rule {
	return Default().Rule(DateDMY, field, value)
}

func ValidDateYMD(field, value string) Rule {
	return Default().Rule(DateYMD, field, value)
}

func ValidDateMDY(field, value string) Rule {
	return Default().Rule(DateMDY, field, value)
}
