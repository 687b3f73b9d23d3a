package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidEnum, "unknown token: %s", "sideways")

	if err.Code != ErrCodeInvalidEnum {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidEnum)
	}

	if err.Message != "unknown token: sideways" {
		t.Errorf("Message = %v, want %v", err.Message, "unknown token: sideways")
	}

	expected := "INVALID_ENUM: unknown token: sideways"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeSerialization, cause, "encode manifest")

	if err.Code != ErrCodeSerialization {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSerialization)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "SERIALIZATION: encode manifest: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
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
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeFileNotFound,
			expected: false,
		},
		{
			name:     "wrapped error outer code",
			err:      Wrap(ErrCodeSerialization, New(ErrCodeInvalidEnum, "inner"), "outer"),
			code:     ErrCodeSerialization,
			expected: true,
		},
		{
			name:     "wrapped error inner code",
			err:      Wrap(ErrCodeSerialization, New(ErrCodeInvalidEnum, "inner"), "outer"),
			code:     ErrCodeInvalidEnum,
			expected: true,
		},
		{
			name:     "inner code behind a plain wrapper",
			err:      Wrap(ErrCodeSerialization, errors.Join(New(ErrCodeInvalidEnum, "inner")), "outer"),
			code:     ErrCodeInvalidEnum,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidConfig, "test"),
			expected: ErrCodeInvalidConfig,
		},
		{
			name:     "outermost code wins",
			err:      Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidEnum, "inner"), "outer"),
			expected: ErrCodeInvalidConfig,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "wrapped Error",
			err:      Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidEnum, "unknown display mode"), "app.toml"),
			expected: "app.toml: unknown display mode",
		},
		{
			name:     "wrapped plain error",
			err:      Wrap(ErrCodeFileNotFound, errors.New("no such file"), "read app.toml"),
			expected: "read app.toml: no such file",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
