package ports

import (
	"context"

	"cerb/internal/applicant"
	"cerb/internal/eligibility"
)

// ProfileCollector gathers a complete, validated Profile.
type ProfileCollector interface {
	CollectProfile(ctx context.Context) (applicant.Profile, error)
}

// Evaluator decides eligibility for a Profile.
type Evaluator interface {
	Evaluate(ctx context.Context, profile applicant.Profile) (*eligibility.Result, error)
}

// Notifier presents verdicts to the applicant.
type Notifier interface {
	Message(text string)
	Warn(text string)
	Success(text string)
	OpenLink(ctx context.Context, url string) error
}
