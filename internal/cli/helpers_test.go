package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"

	"github.com/roach88/benchmocker/internal/harness"
	"github.com/roach88/benchmocker/internal/testutil"
)

var errBoom = errors.New("boom")

// okUnits returns a registry of units that always succeed.
func okUnits(names ...string) func() []harness.WorkUnit {
	return func() []harness.WorkUnit {
		units := make([]harness.WorkUnit, len(names))
		for i, name := range names {
			units[i] = harness.WorkUnit{Name: name, Run: func(context.Context) error { return nil }}
		}
		return units
	}
}

// failingOnCall returns a registry with A always passing and B failing on
// its nth invocation.
func failingOnCall(n int) func() []harness.WorkUnit {
	return func() []harness.WorkUnit {
		calls := 0
		return []harness.WorkUnit{
			{Name: "A", Run: func(context.Context) error { return nil }},
			{Name: "B", Run: func(context.Context) error {
				calls++
				if calls == n {
					return errBoom
				}
				return nil
			}},
		}
	}
}

// testRunOptions returns run options with a deterministic clock.
func testRunOptions(format string) *RunOptions {
	return &RunOptions{
		RootOptions: &RootOptions{Format: format},
		Clock:       testutil.NewStepClock(time.Millisecond),
		IDGenerator: testutil.NewFixedIDGenerator("run-1", "run-2", "run-3"),
	}
}

// execute runs cmd with args and returns stdout, stderr and the error.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}
