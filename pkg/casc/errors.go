package casc

import (
	"errors"
	"fmt"
)

// Code is a CASC status code. The values are the Windows error numbers
// CascLib reports, so diagnostics line up with its documentation.
type Code uint32

const (
	CodeSuccess            Code = 0
	CodeFileNotFound       Code = 2
	CodeAccessDenied       Code = 5
	CodeInvalidHandle      Code = 6
	CodeNotEnoughMemory    Code = 8
	CodeBadFormat          Code = 11
	CodeNoMoreFiles        Code = 18
	CodeHandleEOF          Code = 38
	CodeNotSupported       Code = 50
	CodeInvalidParameter   Code = 87
	CodeDiskFull           Code = 112
	CodeInsufficientBuffer Code = 122
	CodeAlreadyExists      Code = 183
	CodeCanNotComplete     Code = 1003
	CodeFileCorrupt        Code = 1392
	CodeFileEncrypted      Code = 6002
)

// ErrorText maps a status code to its fixed label. Codes outside the known
// set map to "UNKNOWN".
func ErrorText(code Code) string {
	switch code {
	case CodeSuccess:
		return "SUCCESS"
	case CodeFileCorrupt:
		return "FILE_CORRUPT"
	case CodeCanNotComplete:
		return "CAN_NOT_COMPLETE"
	case CodeHandleEOF:
		return "HANDLE_EOF"
	case CodeNoMoreFiles:
		return "NO_MORE_FILES"
	case CodeBadFormat:
		return "BAD_FORMAT"
	case CodeInsufficientBuffer:
		return "INSUFFICIENT_BUFFER"
	case CodeAlreadyExists:
		return "ALREADY_EXISTS"
	case CodeDiskFull:
		return "DISK_FULL"
	case CodeInvalidParameter:
		return "INVALID_PARAMETER"
	case CodeNotSupported:
		return "NOT_SUPPORTED"
	case CodeNotEnoughMemory:
		return "NOT_ENOUGH_MEMORY"
	case CodeInvalidHandle:
		return "INVALID_HANDLE"
	case CodeAccessDenied:
		return "ACCESS_DENIED"
	case CodeFileNotFound:
		return "FILE_NOT_FOUND"
	case CodeFileEncrypted:
		return "FILE_ENCRYPTED"
	default:
		return "UNKNOWN"
	}
}

// Error is a failed CASC operation. Op names the operation, Target the
// storage path or file reference it applied to.
type Error struct {
	Op     string
	Target string
	Code   Code
	Err    error
}

func (e *Error) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("casc: %s %s: %s", e.Op, e.Target, ErrorText(e.Code))
	}
	return fmt.Sprintf("casc: %s: %s", e.Op, ErrorText(e.Code))
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same code, so callers can
// match with errors.Is(err, &casc.Error{Code: casc.CodeFileNotFound}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf extracts the status code from an error chain. Errors that do not
// carry a code report CAN_NOT_COMPLETE; a nil error reports SUCCESS.
func CodeOf(err error) Code {
	if err == nil {
		return CodeSuccess
	}
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeCanNotComplete
}

// coded wraps an error from a library implementation, preserving the code it
// carries or falling back to CAN_NOT_COMPLETE for untyped failures.
func coded(op, target string, err error) *Error {
	return &Error{Op: op, Target: target, Code: CodeOf(err), Err: err}
}
