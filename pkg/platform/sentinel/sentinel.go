package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Caches and remote clients return
// these (optionally wrapped) so services can translate them into domain errors.
//
//   - ErrNotFound: key or record does not exist
//   - ErrUnavailable: backend temporarily unreachable
//   - ErrInputClosed: the interactive input source has no more lines
//
// For validation errors (bad answers, malformed values), use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
	ErrInputClosed = errors.New("input closed")
)
