package casc

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorText(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeSuccess, "SUCCESS"},
		{CodeFileCorrupt, "FILE_CORRUPT"},
		{CodeCanNotComplete, "CAN_NOT_COMPLETE"},
		{CodeHandleEOF, "HANDLE_EOF"},
		{CodeNoMoreFiles, "NO_MORE_FILES"},
		{CodeBadFormat, "BAD_FORMAT"},
		{CodeInsufficientBuffer, "INSUFFICIENT_BUFFER"},
		{CodeAlreadyExists, "ALREADY_EXISTS"},
		{CodeDiskFull, "DISK_FULL"},
		{CodeInvalidParameter, "INVALID_PARAMETER"},
		{CodeNotSupported, "NOT_SUPPORTED"},
		{CodeNotEnoughMemory, "NOT_ENOUGH_MEMORY"},
		{CodeInvalidHandle, "INVALID_HANDLE"},
		{CodeAccessDenied, "ACCESS_DENIED"},
		{CodeFileNotFound, "FILE_NOT_FOUND"},
		{CodeFileEncrypted, "FILE_ENCRYPTED"},
	}

	for _, tt := range tests {
		if got := ErrorText(tt.code); got != tt.want {
			t.Errorf("ErrorText(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorTextUnknown(t *testing.T) {
	for _, code := range []Code{1, 3, 99, 4096, 0xFFFFFFFF} {
		if got := ErrorText(code); got != "UNKNOWN" {
			t.Errorf("ErrorText(%d) = %q, want UNKNOWN", code, got)
		}
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeSuccess},
		{"casc error", &Error{Op: "open file", Code: CodeFileNotFound}, CodeFileNotFound},
		{"wrapped casc error", fmt.Errorf("outer: %w", &Error{Op: "read", Code: CodeFileEncrypted}), CodeFileEncrypted},
		{"untyped error", errors.New("boom"), CodeCanNotComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("context: %w", &Error{Op: "open file", Target: "'a.blp'", Code: CodeFileNotFound})
	if !errors.Is(err, &Error{Code: CodeFileNotFound}) {
		t.Error("errors.Is should match on code")
	}
	if errors.Is(err, &Error{Code: CodeFileEncrypted}) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestErrorString(t *testing.T) {
	e := &Error{Op: "open file", Target: "'war3.mpq'", Code: CodeFileNotFound}
	want := "casc: open file 'war3.mpq': FILE_NOT_FOUND"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
