package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/benchmocker/internal/harness"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(unitList{"A", "B"})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, []any{"A", "B"}, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(CodeUnitFailed, "unit failed", nil)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E001", resp.Error.Code)
	assert.Equal(t, "unit failed", resp.Error.Message)
	assert.Nil(t, resp.Error.Details)
}

func TestOutputFormatter_TextSuccessUsesWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	report := &harness.Report{Cycles: 2, Entries: []harness.Entry{{Name: "A", Total: 4}}}
	require.NoError(t, formatter.Success(report))
	assert.Equal(t, "2 cycles per test:\nA = 4ns\n", buf.String())
}

func TestOutputFormatter_TextSuccessPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, formatter.Success("done"))
	assert.Equal(t, "done\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "text",
		Writer:    out,
		ErrWriter: errOut,
	}

	report := &harness.Report{Cycles: 1, Entries: []harness.Entry{{Name: "A"}}}
	require.NoError(t, formatter.Error(CodeUnitFailed, "unit B failed", report))

	assert.Equal(t, "1 cycles per test:\nA = 0s\n", out.String(), "partial report goes to stdout")
	assert.Equal(t, "Error [E001]: unit B failed\n", errOut.String())
}

func TestOutputFormatter_TextErrorVerboseDetails(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	require.NoError(t, formatter.Error(CodeStorage, "db locked", map[string]string{"path": "x.db"}))
	assert.Contains(t, buf.String(), "Details: map[path:x.db]")
	assert.Contains(t, buf.String(), "Error [E004]: db locked")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:  "text",
				Writer:  buf,
				Verbose: tt.verbose,
			}

			formatter.VerboseLog("Saved %s", "run-1")

			if tt.wantLog {
				assert.Contains(t, buf.String(), "Saved run-1")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestGetErrWriter(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	assert.Same(t, out, (&OutputFormatter{Writer: out}).GetErrWriter())
	assert.Same(t, errOut, (&OutputFormatter{Writer: out, ErrWriter: errOut}).GetErrWriter())
}

func TestExitError(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"plain error", cause, ExitFailure, "disk full"},
		{"exit error", NewExitError(ExitCommandError, "bad flag"), ExitCommandError, "bad flag"},
		{"wrapped", WrapExitError(ExitFailure, "benchmark failed", cause), ExitFailure, "benchmark failed: disk full"},
		{"nested", fmt.Errorf("outer: %w", NewExitError(ExitCommandError, "inner")), ExitCommandError, "outer: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, GetExitCode(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.wantMsg, tt.err.Error())
			}
		})
	}

	wrapped := WrapExitError(ExitFailure, "benchmark failed", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.False(t, wrapped.Silent)
	assert.True(t, reported(wrapped).Silent)
}
