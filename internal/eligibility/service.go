package eligibility

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"cerb/internal/applicant"
	"cerb/internal/eligibility/metrics"
	"cerb/internal/eligibility/ports"
	"cerb/pkg/domain"
)

// Service evaluates a Profile against the primary program and, for students
// below the income threshold, the provincial student-aid program.
type Service struct {
	province ports.ProvinceSource
	logger   *zap.Logger
	metrics  *metrics.Metrics
	tracer   trace.Tracer
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) { s.tracer = tracer }
}

// WithClock overrides the evaluation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New constructs a Service. province is required.
func New(province ports.ProvinceSource, opts ...Option) (*Service, error) {
	if province == nil {
		return nil, errors.New("province source is required")
	}
	s := &Service{
		province: province,
		logger:   zap.NewNop(),
		tracer:   otel.Tracer("cerb/eligibility"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Evaluate produces the primary verdict and, when the student branch applies,
// the secondary verdict. The only I/O is the province question; a blank
// province yields SecondaryIneligible, any other source error aborts.
func (s *Service) Evaluate(ctx context.Context, profile applicant.Profile) (*Result, error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "eligibility.Evaluate")
	defer span.End()

	checks := EvaluateChecks(profile)

	var secondary *Verdict
	if NeedsSecondaryCheck(profile) {
		v, err := s.evaluateSecondary(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "secondary check failed")
			return nil, err
		}
		secondary = &v
	}

	result := BuildResult(checks, secondary, s.now())

	span.SetAttributes(
		attribute.Bool("eligibility.country_ok", checks.CountryOK),
		attribute.Bool("eligibility.age_ok", checks.AgeOK),
		attribute.Bool("eligibility.income_ok", checks.IncomeOK),
		attribute.String("eligibility.primary", string(result.Primary.Outcome)),
	)

	s.recordOutcome(result.Primary.Outcome)
	if secondary != nil {
		s.recordOutcome(secondary.Outcome)
	}
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	fields := []zap.Field{
		zap.Bool("country_ok", checks.CountryOK),
		zap.Bool("age_ok", checks.AgeOK),
		zap.Bool("income_ok", checks.IncomeOK),
		zap.String("primary", string(result.Primary.Outcome)),
	}
	if secondary != nil {
		fields = append(fields,
			zap.String("secondary", string(secondary.Outcome)),
			zap.String("secondary_reason", string(secondary.Reason)),
		)
	}
	s.logger.Info("eligibility evaluated", fields...)

	return result, nil
}

func (s *Service) evaluateSecondary(ctx context.Context) (Verdict, error) {
	province, err := s.province.CollectProvince(ctx)
	if errors.Is(err, domain.ErrBlankProvince) {
		s.logger.Debug("province left blank")
		return BlankProvinceVerdict(), nil
	}
	if err != nil {
		return Verdict{}, fmt.Errorf("collect province: %w", err)
	}
	return SecondaryVerdict(province), nil
}

func (s *Service) recordOutcome(o Outcome) {
	s.metrics.IncrementOutcome(string(o.Track()), string(o))
}
