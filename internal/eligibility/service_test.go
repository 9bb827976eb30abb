package eligibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"cerb/internal/applicant"
	"cerb/internal/eligibility/metrics"
	"cerb/internal/eligibility/ports/mocks"
	"cerb/pkg/domain"
	"cerb/pkg/platform/sentinel"
)

//go:generate mockgen -source=ports/province.go -destination=ports/mocks/mocks.go -package=mocks ProvinceSource

// =============================================================================
// Eligibility Service Test Suite
// =============================================================================

var evalTime = time.Date(2020, 4, 15, 9, 0, 0, 0, time.UTC)

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	province *mocks.MockProvinceSource
	metrics  *metrics.Metrics
	service  *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	ctrl := gomock.NewController(s.T())
	s.province = mocks.NewMockProvinceSource(ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())

	var err error
	s.service, err = New(s.province,
		WithLogger(zaptest.NewLogger(s.T())),
		WithMetrics(s.metrics),
		WithTracer(noop.NewTracerProvider().Tracer("test")),
		WithClock(func() time.Time { return evalTime }),
	)
	s.Require().NoError(err)
}

func (s *ServiceSuite) profile(age, income int, country domain.Country, student bool) applicant.Profile {
	p, err := applicant.NewProfile("Jessica Hong", age, income, country, student)
	s.Require().NoError(err)
	return p
}

func (s *ServiceSuite) TestNew() {
	_, err := New(nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "province source is required")
}

func (s *ServiceSuite) TestEligibleApplicant() {
	result, err := s.service.Evaluate(s.ctx, s.profile(23, 35000, "Canada", true))
	s.Require().NoError(err)

	want := &Result{
		Primary:     Verdict{Outcome: PrimaryEligible, Reason: ReasonAllCriteriaMet},
		Checks:      Checks{CountryOK: true, AgeOK: true, IncomeOK: true},
		EvaluatedAt: evalTime,
	}
	s.Empty(cmp.Diff(want, result))
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.Outcomes.WithLabelValues("primary", "primary_eligible")))
}

func (s *ServiceSuite) TestUnderageApplicant() {
	for _, student := range []bool{true, false} {
		result, err := s.service.Evaluate(s.ctx, s.profile(14, 35000, "Canada", student))
		s.Require().NoError(err)
		s.Equal(PrimaryIneligible, result.Primary.Outcome)
		s.False(result.Checks.AgeOK)
		s.Nil(result.Secondary)
	}
}

func (s *ServiceSuite) TestForeignResident() {
	result, err := s.service.Evaluate(s.ctx, s.profile(30, 50000, "united states", false))
	s.Require().NoError(err)
	s.Equal(PrimaryIneligible, result.Primary.Outcome)
	s.False(result.Checks.CountryOK)
}

func (s *ServiceSuite) TestLowIncomeStudent() {
	s.Run("in British Columbia", func() {
		s.province.EXPECT().CollectProvince(gomock.Any()).Return(domain.Province("BC"), nil)

		result, err := s.service.Evaluate(s.ctx, s.profile(20, 3000, "Canada", true))
		s.Require().NoError(err)
		s.Equal(PrimaryIneligible, result.Primary.Outcome)
		s.Require().NotNil(result.Secondary)
		s.Equal(Verdict{Outcome: SecondaryEligible, Reason: ReasonQualifyingRegion, Region: "British Columbia"}, *result.Secondary)
	})

	s.Run("in Ontario", func() {
		s.province.EXPECT().CollectProvince(gomock.Any()).Return(domain.Province("ONTARIO"), nil)

		result, err := s.service.Evaluate(s.ctx, s.profile(20, 3000, "Canada", true))
		s.Require().NoError(err)
		s.Equal(PrimaryIneligible, result.Primary.Outcome)
		s.Require().NotNil(result.Secondary)
		s.Equal(SecondaryIneligible, result.Secondary.Outcome)
		s.Equal(ReasonOtherRegion, result.Secondary.Reason)
	})

	s.Run("province left blank", func() {
		s.province.EXPECT().CollectProvince(gomock.Any()).Return(domain.Province(""), domain.ErrBlankProvince)

		result, err := s.service.Evaluate(s.ctx, s.profile(20, 3000, "Canada", true))
		s.Require().NoError(err)
		s.Require().NotNil(result.Secondary)
		s.Equal(SecondaryIneligible, result.Secondary.Outcome)
		s.Equal(ReasonProvinceBlank, result.Secondary.Reason)
	})

	s.Run("secondary check ignores country and age", func() {
		s.province.EXPECT().CollectProvince(gomock.Any()).Return(domain.Province("BRITISH COLUMBIA"), nil)

		result, err := s.service.Evaluate(s.ctx, s.profile(10, 4999, "France", true))
		s.Require().NoError(err)
		s.Equal(PrimaryIneligible, result.Primary.Outcome)
		s.Equal(SecondaryEligible, result.Secondary.Outcome)
	})

	s.Run("input closed aborts evaluation", func() {
		s.province.EXPECT().CollectProvince(gomock.Any()).Return(domain.Province(""), sentinel.ErrInputClosed)

		result, err := s.service.Evaluate(s.ctx, s.profile(20, 3000, "Canada", true))
		s.Require().Error(err)
		s.True(errors.Is(err, sentinel.ErrInputClosed))
		s.Nil(result)
	})
}

func (s *ServiceSuite) TestLowIncomeNonStudent() {
	// No CollectProvince expectation: gomock fails the test on any call.
	result, err := s.service.Evaluate(s.ctx, s.profile(20, 3000, "Canada", false))
	s.Require().NoError(err)
	s.Equal(PrimaryIneligible, result.Primary.Outcome)
	s.Nil(result.Secondary)
}

func (s *ServiceSuite) TestIncomeBoundary() {
	result, err := s.service.Evaluate(s.ctx, s.profile(15, 5000, "Canada", true))
	s.Require().NoError(err)
	s.Equal(PrimaryEligible, result.Primary.Outcome)
	s.Nil(result.Secondary)

	s.province.EXPECT().CollectProvince(gomock.Any()).Return(domain.Province("YUKON"), nil)
	result, err = s.service.Evaluate(s.ctx, s.profile(15, 4999, "Canada", true))
	s.Require().NoError(err)
	s.Equal(PrimaryIneligible, result.Primary.Outcome)
	s.NotNil(result.Secondary)
}

func (s *ServiceSuite) TestMetrics() {
	s.province.EXPECT().CollectProvince(gomock.Any()).Return(domain.Province("BC"), nil)

	_, err := s.service.Evaluate(s.ctx, s.profile(20, 3000, "Canada", true))
	s.Require().NoError(err)

	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.Outcomes.WithLabelValues("primary", "primary_ineligible")))
	s.Equal(1.0, promtestutil.ToFloat64(s.metrics.Outcomes.WithLabelValues("secondary", "secondary_eligible")))
	s.Equal(1, promtestutil.CollectAndCount(s.metrics.EvaluateLatency))
}

func TestServiceWithoutMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, err := New(mocks.NewMockProvinceSource(ctrl))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	p, err := applicant.NewProfile("Chris Thompson", 40, 80000, "Canada", false)
	if err != nil {
		t.Fatalf("new profile: %v", err)
	}

	result, err := svc.Evaluate(context.Background(), p)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result.Primary.Outcome != PrimaryEligible {
		t.Fatalf("expected %s, got %s", PrimaryEligible, result.Primary.Outcome)
	}
}
