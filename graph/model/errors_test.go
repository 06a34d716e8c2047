package model

import (
	"context"
	"errors"
	"testing"
)

func TestWrapProviderError_Classification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantCode      string
		wantRetryable bool
	}{
		{"context cancelled", context.Canceled, "timeout", true},
		{"deadline exceeded", context.DeadlineExceeded, "timeout", true},
		{"http 401", errors.New("unexpected status 401"), "invalid_api_key", false},
		{"http 403", errors.New("403 Forbidden"), "invalid_api_key", false},
		{"authentication text", errors.New("authentication failed"), "invalid_api_key", false},
		{"http 429", errors.New("got 429"), "rate_limited", true},
		{"rate limit text", errors.New("rate limit exceeded, slow down"), "rate_limited", true},
		{"other", errors.New("model overloaded"), "api_error", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perr := WrapProviderError("groq", tt.err)
			if perr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, perr.Code)
			}
			if perr.Retryable != tt.wantRetryable {
				t.Errorf("expected retryable=%v, got %v", tt.wantRetryable, perr.Retryable)
			}
			if perr.Provider != "groq" {
				t.Errorf("expected provider groq, got %s", perr.Provider)
			}
			if !errors.Is(perr, tt.err) {
				t.Errorf("wrapped error lost its cause")
			}
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Provider: "groq", Message: "GROQ_API_KEY is required"}
	want := "groq: GROQ_API_KEY is required"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}
