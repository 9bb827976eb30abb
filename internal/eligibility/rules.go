package eligibility

import (
	"time"

	"cerb/internal/applicant"
	"cerb/pkg/domain"
)

// Thresholds for the primary program.
const (
	MinimumAge    = 15
	MinimumIncome = 5000
)

// CountryOK reports whether the applicant resides in Canada. The comparison
// is exact on the canonical form produced by domain.ParseCountry.
func CountryOK(country domain.Country) bool {
	return country == domain.CountryCanada
}

// AgeOK reports whether age meets the minimum.
func AgeOK(age int) bool {
	return age >= MinimumAge
}

// IncomeOK reports whether annual income meets the minimum.
func IncomeOK(income int) bool {
	return income >= MinimumIncome
}

// IsSecondaryRegion reports whether the province offers supplementary student aid.
func IsSecondaryRegion(p domain.Province) bool {
	return p.IsBritishColumbia()
}

// EvaluateChecks applies the three primary criteria.
// This is pure domain logic - no I/O, no side effects.
func EvaluateChecks(p applicant.Profile) Checks {
	return Checks{
		CountryOK: CountryOK(p.Country()),
		AgeOK:     AgeOK(p.Age()),
		IncomeOK:  IncomeOK(p.Income()),
	}
}

// NeedsSecondaryCheck reports whether the provincial student check applies:
// income failed and the applicant is a student. Country and age play no part.
func NeedsSecondaryCheck(p applicant.Profile) bool {
	return !IncomeOK(p.Income()) && p.IsStudent()
}

// PrimaryVerdict maps the checks to the primary outcome.
func PrimaryVerdict(c Checks) Verdict {
	if c.AllPassed() {
		return Verdict{Outcome: PrimaryEligible, Reason: ReasonAllCriteriaMet}
	}
	return Verdict{Outcome: PrimaryIneligible, Reason: ReasonCriteriaNotMet}
}

// SecondaryVerdict maps a province answer to the secondary outcome.
func SecondaryVerdict(p domain.Province) Verdict {
	if IsSecondaryRegion(p) {
		return Verdict{
			Outcome: SecondaryEligible,
			Reason:  ReasonQualifyingRegion,
			Region:  domain.RegionBritishColumbia,
		}
	}
	return Verdict{Outcome: SecondaryIneligible, Reason: ReasonOtherRegion}
}

// BlankProvinceVerdict is the secondary outcome when no province was given.
func BlankProvinceVerdict() Verdict {
	return Verdict{Outcome: SecondaryIneligible, Reason: ReasonProvinceBlank}
}

// BuildResult assembles a Result. secondary may be nil.
func BuildResult(checks Checks, secondary *Verdict, evalTime time.Time) *Result {
	return &Result{
		Primary:     PrimaryVerdict(checks),
		Secondary:   secondary,
		Checks:      checks,
		EvaluatedAt: evalTime,
	}
}
