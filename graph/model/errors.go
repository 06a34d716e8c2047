package model

import (
	"context"
	"errors"
	"strings"
)

// ConfigError reports a provider construction failure, such as a
// missing API key. It is raised before any graph is built and is never
// retried.
type ConfigError struct {
	// Provider names the provider being constructed.
	Provider string

	// Message describes what is missing or invalid.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Provider + ": " + e.Message
}

// ProviderError reports a failed upstream LLM call. The engine
// propagates it unmodified to the caller of Run; Retryable is
// informational only, nothing at this layer retries.
type ProviderError struct {
	// Provider names the provider that failed.
	Provider string

	// Code is a machine-readable cause: invalid_api_key, rate_limited,
	// timeout, or api_error.
	Code string

	// Message is the human-readable description.
	Message string

	// Retryable indicates whether a caller could reasonably retry.
	Retryable bool

	// Cause is the underlying SDK error.
	Cause error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return e.Provider + ": " + e.Code + ": " + e.Message
}

// Unwrap returns the underlying SDK error.
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// WrapProviderError classifies an SDK error into a ProviderError.
//
// Classification is by status code and message text, the same way each
// vendor SDK surfaces failures:
//   - context cancellation / deadline -> timeout (retryable)
//   - 401/403/authentication          -> invalid_api_key (permanent)
//   - 429/rate limit                  -> rate_limited (retryable)
//   - everything else                 -> api_error (permanent)
func WrapProviderError(provider string, err error) *ProviderError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &ProviderError{
			Provider:  provider,
			Code:      "timeout",
			Message:   "request cancelled or timed out",
			Retryable: true,
			Cause:     err,
		}
	}

	msg := strings.ToLower(err.Error())

	if strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "authentication") || strings.Contains(msg, "api key") ||
		strings.Contains(msg, "api_key") {
		return &ProviderError{
			Provider:  provider,
			Code:      "invalid_api_key",
			Message:   "API key is invalid or expired",
			Retryable: false,
			Cause:     err,
		}
	}

	if strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "rate_limit") || strings.Contains(msg, "too many requests") {
		return &ProviderError{
			Provider:  provider,
			Code:      "rate_limited",
			Message:   "API rate limit exceeded",
			Retryable: true,
			Cause:     err,
		}
	}

	return &ProviderError{
		Provider:  provider,
		Code:      "api_error",
		Message:   err.Error(),
		Retryable: false,
		Cause:     err,
	}
}
