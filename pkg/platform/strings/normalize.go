// Package strings provides string normalization for free-text answers.
package strings

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleTrim trims surrounding whitespace and title-cases every word, lowering
// the remaining letters of each word.
//
// Example:
//
//	TitleTrim("  united STATES ")
//	// Returns: "United States"
func TitleTrim(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	// cases.Caser is stateful and not safe for concurrent use; build per call.
	return cases.Title(language.Und).String(trimmed)
}

// UpperTrim trims surrounding whitespace and upper-cases the result.
//
// Example:
//
//	UpperTrim(" bc ")
//	// Returns: "BC"
func UpperTrim(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}
