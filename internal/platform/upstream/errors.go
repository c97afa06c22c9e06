package upstream

import (
	"errors"
	"fmt"
)

// ErrorCategory is the normalised failure taxonomy for upstream calls.
type ErrorCategory string

const (
	// ErrorTimeout: the provider took too long to respond
	ErrorTimeout ErrorCategory = "timeout"

	// ErrorBadData: the body could not be decoded
	ErrorBadData ErrorCategory = "bad_data"

	// ErrorAuthentication: missing or rejected API key
	ErrorAuthentication ErrorCategory = "authentication"

	// ErrorProviderOutage: transport failure or 5xx
	ErrorProviderOutage ErrorCategory = "provider_outage"

	// ErrorCircuitOpen: the call was skipped by the breaker
	ErrorCircuitOpen ErrorCategory = "circuit_open"

	// ErrorNotFound: the provider answered without data
	ErrorNotFound ErrorCategory = "not_found"

	// ErrorRateLimited: too many requests
	ErrorRateLimited ErrorCategory = "rate_limited"

	// ErrorInternal: anything unexpected, including unclassified statuses
	ErrorInternal ErrorCategory = "internal"
)

// ProviderError wraps upstream failures with a normalised category.
type ProviderError struct {
	Category   ErrorCategory
	ProviderID string
	Message    string
	StatusCode int
	Underlying error
	Retryable  bool
}

func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("provider %s [%s]: %s: %v", e.ProviderID, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("provider %s [%s]: %s", e.ProviderID, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

// NewProviderError creates a categorised provider error.
func NewProviderError(category ErrorCategory, providerID, message string, underlying error) *ProviderError {
	retryable := category == ErrorTimeout ||
		category == ErrorProviderOutage ||
		category == ErrorRateLimited

	return &ProviderError{
		Category:   category,
		ProviderID: providerID,
		Message:    message,
		Underlying: underlying,
		Retryable:  retryable,
	}
}

// IsRetryable checks if an error is worth retrying.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}

// GetCategory extracts the error category, defaulting to internal.
func GetCategory(err error) ErrorCategory {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	return ErrorInternal
}

// categoryForStatus maps a non-2xx HTTP status to a category.
func categoryForStatus(status int) ErrorCategory {
	switch {
	case status == 401 || status == 403:
		return ErrorAuthentication
	case status == 404:
		return ErrorNotFound
	case status == 408 || status == 504:
		return ErrorTimeout
	case status == 429:
		return ErrorRateLimited
	case status >= 500:
		return ErrorProviderOutage
	default:
		return ErrorInternal
	}
}
