package output

import (
	"errors"
	"testing"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
		{"ExitBlocked", ExitBlocked, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{
			name:     "user error",
			err:      NewUserError("unknown pattern variant \"hexagonal\""),
			wantCode: ExitUserError,
			wantMsg:  "unknown pattern variant \"hexagonal\"",
		},
		{
			name:     "system error",
			err:      NewSystemError("output root not writable"),
			wantCode: ExitSystemError,
			wantMsg:  "output root not writable",
		},
		{
			name:     "blocked verdict",
			err:      NewBlockedError("2 forbidden patterns found"),
			wantCode: ExitBlocked,
			wantMsg:  "2 forbidden patterns found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewSystemErrorWithCause("writing file", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"user error", NewUserError("bad name"), ExitUserError},
		{"system error", NewSystemError("io"), ExitSystemError},
		{"blocked", NewBlockedError("gate"), ExitBlocked},
		{"untyped error", errors.New("plain"), ExitUserError},
		{"wrapped exit error", errors.Join(errors.New("ctx"), NewSystemError("io")), ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
