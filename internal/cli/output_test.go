package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/labelset/internal/labels"
)

func TestOutputFormatter_Success(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{Writer: out, ErrWriter: errOut}

	assert.NoError(t, formatter.Success("Wrote 2 labels to labels.json"))
	assert.Equal(t, "Wrote 2 labels to labels.json\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{Writer: out, ErrWriter: errOut}

	assert.NoError(t, formatter.Error("E201", "failed parsing JSON at core.json"))
	assert.Empty(t, out.String())
	assert.Equal(t, "Error [E201]: failed parsing JSON at core.json\n", errOut.String())
}

func TestOutputFormatter_ErrWriterFallback(t *testing.T) {
	out := &bytes.Buffer{}
	formatter := &OutputFormatter{Writer: out}

	assert.Equal(t, out, formatter.GetErrWriter())
	assert.NoError(t, formatter.Error("E001", "boom"))
	assert.Contains(t, out.String(), "Error [E001]: boom")
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitFailure},
		{"exit error", WrapExitError(ExitCommandError, ErrCodeParse, errors.New("x")), ExitCommandError},
		{"wrapped exit error", fmt.Errorf("outer: %w", WrapExitError(ExitFailure, ErrCodeValidation, nil)), ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"parse", &labels.ParseError{Path: "core.json", Err: errors.New("not found")}, ErrCodeParse, ExitCommandError},
		{"validation", &labels.ValidationError{Label: labels.NewLabel(json.RawMessage(`{"name":"bug"}`))}, ErrCodeValidation, ExitFailure},
		{"write", &labels.WriteError{Path: "labels.json", Err: errors.New("read-only")}, ErrCodeWrite, ExitCommandError},
		{"other", errors.New("boom"), ErrCodeGeneric, ExitCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitErr := classifyError(tt.err)
			assert.Equal(t, tt.wantCode, exitErr.Message)
			assert.Equal(t, tt.wantExit, exitErr.Code)
			assert.ErrorIs(t, exitErr, tt.err)
		})
	}
}

func TestExitError_Message(t *testing.T) {
	err := WrapExitError(ExitCommandError, ErrCodeWrite, errors.New("disk full"))
	assert.Equal(t, "E203: disk full", err.Error())

	bare := &ExitError{Code: ExitFailure, Message: "E202"}
	assert.Equal(t, "E202", bare.Error())
}
