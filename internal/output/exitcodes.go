// Package output provides structured output and error handling for the dayone2jekyll CLI.
package output

import "errors"

// Exit codes:
// 0 = Success
// 1 = User error (bad args, malformed journal entries)
// 2 = System error (archive unreadable, journal absent, write failed)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1).
// Use for: bad arguments, conflicting flags.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewUserErrorWithCause creates a user error wrapping an underlying cause.
// Use for: malformed export records.
func NewUserErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
		Cause:   cause,
	}
}

// NewSystemError creates an error for system failures (exit code 2).
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
// Use for: archive and filesystem failures.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitUserError
}
