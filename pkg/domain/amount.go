package domain

import (
	"strconv"
	"strings"

	dErrors "cerb/pkg/domain-errors"
)

// ParseAge parses a whole-number age. Surrounding whitespace is ignored.
//
// Errors: returns CodeInvalidInput when s is not an integer or is not positive.
func ParseAge(s string) (int, error) {
	return parsePositiveInt(s, "age")
}

// ParseIncome parses a whole-number annual income. Surrounding whitespace is ignored.
//
// Errors: returns CodeInvalidInput when s is not an integer or is not positive.
func ParseIncome(s string) (int, error) {
	return parsePositiveInt(s, "income")
}

func parsePositiveInt(s, field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, field+" must be an integer")
	}
	if n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, field+" must be positive")
	}
	return n, nil
}
