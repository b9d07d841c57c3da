package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown"},
		{KindInvalidInput, "invalid_input"},
		{KindParse, "parse"},
		{KindNotFound, "not_found"},
		{KindTimeout, "timeout"},
		{KindExec, "exec"},
		{KindStorage, "storage"},
		{KindInternal, "internal"},
		{Kind(99), "unknown"}, // Invalid kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "op and message and err",
			err:      &Error{Op: "ort.Load", Message: "load failed", Err: fmt.Errorf("no such file")},
			expected: "ort.Load: load failed: no such file",
		},
		{
			name:     "op and message",
			err:      &Error{Op: "ort.Load", Message: "load failed"},
			expected: "ort.Load: load failed",
		},
		{
			name:     "message and err",
			err:      &Error{Message: "load failed", Err: fmt.Errorf("no such file")},
			expected: "load failed: no such file",
		},
		{
			name:     "message only",
			err:      &Error{Message: "load failed"},
			expected: "load failed",
		},
		{
			name:     "empty error",
			err:      &Error{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &Error{Message: "wrapper", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}

	err2 := &Error{Message: "no underlying"}
	if err2.Unwrap() != nil {
		t.Errorf("Unwrap() should return nil for error without underlying")
	}
}

func TestError_Is(t *testing.T) {
	err1 := &Error{Kind: KindParse, Message: "bad json"}
	err2 := &Error{Kind: KindParse, Message: "different message"}
	err3 := &Error{Kind: KindNotFound, Message: "bad json"}

	if !errors.Is(err1, err2) {
		t.Errorf("errors with the same kind should match")
	}
	if errors.Is(err1, err3) {
		t.Errorf("errors with different kinds should not match")
	}
	if errors.Is(err1, fmt.Errorf("plain")) {
		t.Errorf("plain errors should not match")
	}
}

func TestE(t *testing.T) {
	underlying := fmt.Errorf("boom")
	err := E("ort.Load", KindParse, "invalid document", underlying)

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("E() did not return *Error")
	}
	if e.Op != "ort.Load" {
		t.Errorf("Op = %q, want %q", e.Op, "ort.Load")
	}
	if e.Kind != KindParse {
		t.Errorf("Kind = %v, want %v", e.Kind, KindParse)
	}
	if e.Message != "invalid document" {
		t.Errorf("Message = %q, want %q", e.Message, "invalid document")
	}
	if e.Err != underlying {
		t.Errorf("Err = %v, want %v", e.Err, underlying)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "op") != nil {
		t.Errorf("Wrap(nil) should return nil")
	}

	underlying := fmt.Errorf("boom")
	err := Wrap(underlying, "tree.Build")
	if !errors.Is(err, underlying) {
		t.Errorf("wrapped error should match underlying")
	}
}

func TestKindCheckers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"parse error", E("op", KindParse, "bad"), IsParseError, true},
		{"not a parse error", E("op", KindExec, "bad"), IsParseError, false},
		{"not found", E("op", KindNotFound, "missing"), IsNotFoundError, true},
		{"timeout", ErrTimeout, IsTimeoutError, true},
		{"exec", E("op", KindExec, "exit 1"), IsExecError, true},
		{"plain error", fmt.Errorf("plain"), IsParseError, false},
		{"wrapped parse error", fmt.Errorf("outer: %w", E("op", KindParse, "bad")), IsParseError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("checker = %v, want %v", got, tt.want)
			}
		})
	}
}
