package ports

import (
	"context"

	"cerb/pkg/domain"
)

// ProvinceSource asks the applicant for their province or territory.
// This port lets the evaluator solicit the extra answer in the student branch
// without depending on the console collector.
type ProvinceSource interface {
	// CollectProvince returns the normalized answer.
	// Returns domain.ErrBlankProvince when the applicant left it blank; the
	// source does not ask again.
	CollectProvince(ctx context.Context) (domain.Province, error)
}
