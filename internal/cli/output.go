package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/roach88/labelset/internal/labels"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Validation failure (a merged label is invalid)
	ExitCommandError = 2 // Command error (unreadable source, unwritable output, bad config)
)

// Error code constants.
const (
	ErrCodeGeneric    = "E001" // Generic/unknown error
	ErrCodeConfig     = "E005" // Configuration could not be resolved
	ErrCodeParse      = "E201" // Source missing, unreadable or not a JSON array
	ErrCodeValidation = "E202" // Merged label lacks name or color
	ErrCodeWrite      = "E203" // Output file write error
)

// ExitError represents an error with a specific exit code.
// Message carries the error code shown to the user.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error code or short message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classifyError maps a builder error to its error code and exit code.
func classifyError(err error) *ExitError {
	var (
		parseErr      *labels.ParseError
		validationErr *labels.ValidationError
		writeErr      *labels.WriteError
	)
	switch {
	case errors.As(err, &validationErr):
		return WrapExitError(ExitFailure, ErrCodeValidation, err)
	case errors.As(err, &parseErr):
		return WrapExitError(ExitCommandError, ErrCodeParse, err)
	case errors.As(err, &writeErr):
		return WrapExitError(ExitCommandError, ErrCodeWrite, err)
	default:
		return WrapExitError(ExitCommandError, ErrCodeGeneric, err)
	}
}

// OutputFormatter separates results (Writer) from diagnostics (ErrWriter).
type OutputFormatter struct {
	Writer    io.Writer
	ErrWriter io.Writer // defaults to Writer
}

// Success prints a result line.
func (f *OutputFormatter) Success(message string) error {
	_, err := fmt.Fprintln(f.Writer, message)
	return err
}

// Error prints an error line to the diagnostic writer.
func (f *OutputFormatter) Error(code, message string) error {
	_, err := fmt.Fprintf(f.GetErrWriter(), "Error [%s]: %s\n", code, message)
	return err
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
