package labels

import (
	"errors"
	"fmt"
)

// errNotArray is the cause of a ParseError when a source is valid JSON but
// its top-level value is not an array.
var errNotArray = errors.New("expected array JSON")

// errNoParentDir is the cause of a WriteError when the output's directory
// does not exist.
var errNoParentDir = errors.New("no such directory")

// ParseError reports a source file that is missing, unreadable, not valid
// JSON, or not a JSON array.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed parsing JSON at %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a merged label lacking a non-empty name or color.
// Label holds the offending record as read from its source.
type ValidationError struct {
	Label Label
	Err   error // schema violation detail, optional
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid label (missing name/color): %s", e.Label)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// WriteError reports an output file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
