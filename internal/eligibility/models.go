package eligibility

import "time"

// Outcome is the tagged result of one eligibility track.
type Outcome string

const (
	PrimaryEligible     Outcome = "primary_eligible"
	PrimaryIneligible   Outcome = "primary_ineligible"
	SecondaryEligible   Outcome = "secondary_eligible"
	SecondaryIneligible Outcome = "secondary_ineligible"
)

// Track names the program an Outcome belongs to.
type Track string

const (
	TrackPrimary   Track = "primary"
	TrackSecondary Track = "secondary"
)

// Track returns the program the outcome belongs to.
func (o Outcome) Track() Track {
	switch o {
	case SecondaryEligible, SecondaryIneligible:
		return TrackSecondary
	default:
		return TrackPrimary
	}
}

// IsEligible reports whether the outcome grants support on its track.
func (o Outcome) IsEligible() bool {
	return o == PrimaryEligible || o == SecondaryEligible
}

// Reason explains an Outcome.
type Reason string

const (
	ReasonAllCriteriaMet   Reason = "all_criteria_met"
	ReasonCriteriaNotMet   Reason = "criteria_not_met"
	ReasonQualifyingRegion Reason = "qualifying_region"
	ReasonOtherRegion      Reason = "other_region"
	ReasonProvinceBlank    Reason = "province_blank"
)

// Verdict is one track's outcome. Region is set only for SecondaryEligible.
type Verdict struct {
	Outcome Outcome
	Reason  Reason
	Region  string
}

// Checks records the three primary criteria.
type Checks struct {
	CountryOK bool
	AgeOK     bool
	IncomeOK  bool
}

// AllPassed reports whether every primary criterion holds.
func (c Checks) AllPassed() bool {
	return c.CountryOK && c.AgeOK && c.IncomeOK
}

// Result is the output of one evaluation. Secondary is nil when the student
// branch was not reached; it never influences Primary.
type Result struct {
	Primary     Verdict
	Secondary   *Verdict
	Checks      Checks
	EvaluatedAt time.Time
}
