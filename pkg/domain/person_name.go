package domain

import (
	"regexp"

	dErrors "cerb/pkg/domain-errors"
)

// personNamePattern accepts exactly two letter-only tokens separated by one
// space, each starting with an uppercase ASCII letter.
var personNamePattern = regexp.MustCompile(`^[A-Z][a-zA-Z]* [A-Z][a-zA-Z]*$`)

// PersonName is an applicant's first and last name.
// Invariant: the value matches personNamePattern.
//
// Usage: construct via ParsePersonName; direct casting bypasses validation.
type PersonName string

// ParsePersonName validates a first and last name such as "Chris Thompson".
// The input is matched as given; callers trim line input before parsing.
//
// Errors: returns CodeInvalidInput when the value does not match.
func ParsePersonName(s string) (PersonName, error) {
	if !personNamePattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "name must be a capitalized first and last name")
	}
	return PersonName(s), nil
}

// IsValidPersonName reports whether s would be accepted by ParsePersonName.
func IsValidPersonName(s string) bool {
	return personNamePattern.MatchString(s)
}

func (n PersonName) String() string {
	return string(n)
}
