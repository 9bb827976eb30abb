package stats

import (
	"errors"
	"fmt"
)

// ErrorCategory defines the normalized failure taxonomy
type ErrorCategory string

const (
	// ErrorTimeout indicates the API took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData indicates the API returned invalid/malformed data
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication indicates credential or permission issues
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorProviderOutage indicates the API is unavailable
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorNotFound indicates the requested record doesn't exist
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited indicates too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal indicates an unexpected internal error
	ErrorInternal ErrorCategory = "internal"
)

// FetchError wraps API failures with normalized categorization. Nothing in
// this package retries; Retryable only tells the caller whether trying again
// later could help.
type FetchError struct {
	Category   ErrorCategory
	Query      string
	StatusCode int
	Message    string
	Underlying error
	Retryable  bool
}

func (e *FetchError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("stats %s [%s]: %s: %v", e.Query, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("stats %s [%s]: %s", e.Query, e.Category, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Underlying
}

// NewFetchError creates a new normalized fetch error.
func NewFetchError(category ErrorCategory, query, message string, underlying error) *FetchError {
	retryable := category == ErrorTimeout ||
		category == ErrorProviderOutage ||
		category == ErrorRateLimited

	return &FetchError{
		Category:   category,
		Query:      query,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying later.
func IsRetryable(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Retryable
	}
	return false
}

// GetCategory extracts the error category from an error.
func GetCategory(err error) ErrorCategory {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Category
	}
	return ErrorInternal
}

// categoryForStatus maps a non-2xx HTTP status to the taxonomy.
func categoryForStatus(status int) ErrorCategory {
	switch {
	case status == 404:
		return ErrorNotFound
	case status == 401 || status == 403:
		return ErrorAuthentication
	case status == 429:
		return ErrorRateLimited
	case status >= 500:
		return ErrorProviderOutage
	default:
		return ErrorInternal
	}
}
