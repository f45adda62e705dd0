package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeConfigMissing, "test"),
			code:     ErrCodeConfigMissing,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeConfigMissing, "test"),
			code:     ErrCodeNetwork,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeNetwork, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeNetwork,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTemplateMissing, "no template")); got != ErrCodeTemplateMissing {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeTemplateMissing)
	}

	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %v, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeConfigMissing, "GITHUB_USERNAME is not set")
	if got := UserMessage(err); got != "GITHUB_USERNAME is not set" {
		t.Errorf("UserMessage() = %v, want message without code prefix", got)
	}

	plain := errors.New("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() = %v, want %v", got, "plain error")
	}
}

func TestRateLimitedError(t *testing.T) {
	err := &RateLimitedError{RetryAfter: 30}
	if got := err.Error(); got != "rate limited: retry after 30 seconds" {
		t.Errorf("Error() = %v", got)
	}

	noRetry := &RateLimitedError{}
	if got := noRetry.Error(); got != "rate limited" {
		t.Errorf("Error() = %v, want %v", got, "rate limited")
	}

	if err.Code() != ErrCodeRateLimited {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeRateLimited)
	}
}
