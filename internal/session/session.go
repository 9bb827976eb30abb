// Package session runs one questionnaire: welcome, collect, evaluate, notify.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cerb/internal/eligibility"
	"cerb/internal/session/ports"
	dErrors "cerb/pkg/domain-errors"
)

const (
	CERBApplicationURL  = "https://www.canada.ca/en/revenue-agency/services/benefits/apply-for-cerb-with-cra.html"
	BCStudentSupportURL = "https://news.gov.bc.ca/releases/2020AEST0018-000615"
)

const (
	msgWelcome       = "Welcome!"
	msgEligible      = "You are verified for funding! Please follow the instructions in the link that will open in your browser."
	msgIneligible    = "Unfortunately, you do not appear to qualify for the CERB funding. You must be of at least 15 years of age, have made at least $5000 in the past year, and be a Canadian resident."
	msgStudentRegion = "Because you are a post-secondary student, BC's government is offering you emergency support. A link has been opened in your browser for your educational viewing."
	msgBlankProvince = "A province or territory name cannot be blank, please try again"
)

// Runner drives a single applicant through the questionnaire.
type Runner struct {
	collector ports.ProfileCollector
	evaluator ports.Evaluator
	notifier  ports.Notifier
	logger    *zap.Logger
	newID     func() uuid.UUID
}

// Option configures a Runner.
type Option func(*Runner)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithIDGenerator overrides session ID generation.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(r *Runner) { r.newID = newID }
}

// New constructs a Runner. All three collaborators are required.
func New(collector ports.ProfileCollector, evaluator ports.Evaluator, notifier ports.Notifier, opts ...Option) (*Runner, error) {
	if collector == nil {
		return nil, errors.New("profile collector is required")
	}
	if evaluator == nil {
		return nil, errors.New("evaluator is required")
	}
	if notifier == nil {
		return nil, errors.New("notifier is required")
	}
	r := &Runner{
		collector: collector,
		evaluator: evaluator,
		notifier:  notifier,
		logger:    zap.NewNop(),
		newID:     uuid.New,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run performs one session and returns the evaluation it presented.
// The secondary verdict is presented before the primary one. A failed
// browser launch is logged and does not end the session.
func (r *Runner) Run(ctx context.Context) (*eligibility.Result, error) {
	logger := r.logger.With(zap.String("session_id", r.newID().String()))
	logger.Info("session started")

	r.notifier.Message(msgWelcome)

	profile, err := r.collector.CollectProfile(ctx)
	if err != nil {
		logger.Info("session ended before profile was complete", zap.Error(err))
		return nil, fmt.Errorf("collect profile: %w", err)
	}

	result, err := r.evaluator.Evaluate(ctx, profile)
	if err != nil {
		logger.Warn("evaluation failed", zap.Error(err))
		return nil, fmt.Errorf("evaluate: %w", err)
	}

	if result.Secondary != nil {
		if err := r.presentSecondary(ctx, logger, *result.Secondary); err != nil {
			return nil, err
		}
	}
	if err := r.presentPrimary(ctx, logger, result.Primary); err != nil {
		return nil, err
	}

	logger.Info("session finished",
		zap.String("primary", string(result.Primary.Outcome)),
		zap.Bool("secondary_checked", result.Secondary != nil),
	)
	return result, nil
}

func (r *Runner) presentSecondary(ctx context.Context, logger *zap.Logger, v eligibility.Verdict) error {
	switch {
	case v.Outcome == eligibility.SecondaryEligible:
		r.notifier.Success(msgStudentRegion)
		return r.openLink(ctx, logger, BCStudentSupportURL)
	case v.Reason == eligibility.ReasonProvinceBlank:
		r.notifier.Warn(msgBlankProvince)
	}
	return nil
}

func (r *Runner) presentPrimary(ctx context.Context, logger *zap.Logger, v eligibility.Verdict) error {
	if !v.Outcome.IsEligible() {
		r.notifier.Warn(msgIneligible)
		return nil
	}
	r.notifier.Success(msgEligible)
	return r.openLink(ctx, logger, CERBApplicationURL)
}

// openLink tolerates an unavailable browser, which the notifier has already
// reported to the applicant. Any other error, cancellation included, ends
// the session.
func (r *Runner) openLink(ctx context.Context, logger *zap.Logger, url string) error {
	err := r.notifier.OpenLink(ctx, url)
	if err == nil {
		return nil
	}
	if !dErrors.HasCode(err, dErrors.CodeUnavailable) {
		return fmt.Errorf("open link: %w", err)
	}
	logger.Warn("could not open link", zap.String("url", url), zap.Error(err))
	return nil
}
