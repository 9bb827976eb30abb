package applicant

import (
	"cerb/pkg/domain"
	dErrors "cerb/pkg/domain-errors"
)

// Profile is one applicant's validated answers. Fields are unexported so a
// Profile cannot change after NewProfile returns.
type Profile struct {
	name      domain.PersonName
	age       int
	income    int
	country   domain.Country
	isStudent bool
}

// NewProfile validates every field and builds a Profile. The country is
// normalized, so callers may pass raw text.
func NewProfile(name domain.PersonName, age, income int, country domain.Country, isStudent bool) (Profile, error) {
	if !domain.IsValidPersonName(name.String()) {
		return Profile{}, dErrors.New(dErrors.CodeInvalidInput, "name must be a capitalized first and last name")
	}
	if age <= 0 {
		return Profile{}, dErrors.New(dErrors.CodeInvalidInput, "age must be positive")
	}
	if income <= 0 {
		return Profile{}, dErrors.New(dErrors.CodeInvalidInput, "income must be positive")
	}
	normalized, err := domain.ParseCountry(country.String())
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		name:      name,
		age:       age,
		income:    income,
		country:   normalized,
		isStudent: isStudent,
	}, nil
}

func (p Profile) Name() domain.PersonName { return p.name }
func (p Profile) Age() int                { return p.age }
func (p Profile) Income() int             { return p.income }
func (p Profile) Country() domain.Country { return p.country }
func (p Profile) IsStudent() bool         { return p.isStudent }
