package domain

import (
	dErrors "cerb/pkg/domain-errors"
	pstrings "cerb/pkg/platform/strings"
)

// Province is a free-text province or territory answer, upper-cased and
// trimmed. It is not matched against ProvincesAndTerritories.
type Province string

// Answers that identify British Columbia.
const (
	ProvinceBritishColumbia     Province = "BRITISH COLUMBIA"
	ProvinceBritishColumbiaAbbr Province = "BC"
)

// RegionBritishColumbia is the display name of the region that offers
// supplementary student aid.
const RegionBritishColumbia = "British Columbia"

// ProvincesAndTerritories is the reference list shown before asking for a province.
var ProvincesAndTerritories = []string{
	"Alberta",
	"British Columbia",
	"Saskatchewan",
	"Manitoba",
	"Ontario",
	"Quebec",
	"New Brunswick",
	"Nova Scotia",
	"Prince Edward Island",
	"Newfoundland",
	"Nunavut",
	"Northwest Territories",
	"Yukon",
}

// ErrBlankProvince is returned when the province answer is empty after trimming.
var ErrBlankProvince = dErrors.New(dErrors.CodeInvalidInput, "a province or territory name cannot be blank")

// ParseProvince upper-cases and trims s.
//
// Errors: returns ErrBlankProvince when nothing remains.
func ParseProvince(s string) (Province, error) {
	p := Province(pstrings.UpperTrim(s))
	if p == "" {
		return "", ErrBlankProvince
	}
	return p, nil
}

// IsBritishColumbia reports whether the answer names British Columbia by its
// full name or abbreviation.
func (p Province) IsBritishColumbia() bool {
	return p == ProvinceBritishColumbia || p == ProvinceBritishColumbiaAbbr
}

func (p Province) String() string {
	return string(p)
}
