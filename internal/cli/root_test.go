package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "benchmocker", cmd.Use)
	assert.Contains(t, cmd.Long, "interleaved")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"run", "units", "history"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestRunCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	runCmd, _, err := cmd.Find([]string{"run"})
	require.NoError(t, err)

	for _, name := range []string{"seed", "mode", "config", "units", "db", "metrics-out"} {
		assert.NotNil(t, runCmd.Flags().Lookup(name), "flag %s", name)
	}
	assert.Equal(t, "c", runCmd.Flags().Lookup("config").Shorthand)
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	dbFlag := historyCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)

	limitFlag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "20", limitFlag.DefValue)
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("yaml"))
	assert.False(t, isValidFormat(""))
}

func TestExecute_InvalidFormat(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := Execute(context.Background(), []string{"--format", "xml", "units"}, stdout, stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), `invalid format "xml"`)
	assert.Empty(t, stdout.String())
}

func TestExecute_UnknownCommand(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := Execute(context.Background(), []string{"bogus"}, stdout, stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "unknown command")
}

func TestExecute_Units(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := Execute(context.Background(), []string{"units"}, stdout, stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "FakeTest\nGoMockTest\nTestifyMockTest\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecute_RunSelectedUnit(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := Execute(context.Background(),
		[]string{"run", "2", "--seed", "7", "--units", "FakeTest"}, stdout, stderr)

	require.Equal(t, ExitSuccess, code, stderr.String())
	assert.Contains(t, stdout.String(), "2 cycles per test:\nFakeTest = ")
	assert.NotContains(t, stdout.String(), "GoMockTest")
	assert.Contains(t, stderr.String(), "benchmark finished")
}

func TestExecute_ReportedErrorNotRepeated(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	code := Execute(context.Background(), []string{"run", "--mode", "random"}, stdout, stderr)

	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr.String(), "Error [E003]")
	assert.NotContains(t, stderr.String(), "Error: invalid mode")
}
