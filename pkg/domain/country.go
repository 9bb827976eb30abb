package domain

import (
	dErrors "cerb/pkg/domain-errors"
	pstrings "cerb/pkg/platform/strings"
)

// CountryCanada is the canonical form of the only country that qualifies for CERB.
const CountryCanada Country = "Canada"

// Country is a country of residence in canonical title case. It is free text:
// the value is not checked against a list of real countries.
type Country string

// ParseCountry trims and title-cases s. Normalization is idempotent.
//
// Errors: returns CodeInvalidInput when s is blank.
func ParseCountry(s string) (Country, error) {
	normalized := NormalizeCountry(s)
	if normalized == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "country cannot be blank")
	}
	return normalized, nil
}

// NormalizeCountry returns the canonical form of s without validating it.
func NormalizeCountry(s string) Country {
	return Country(pstrings.TitleTrim(s))
}

func (c Country) String() string {
	return string(c)
}
