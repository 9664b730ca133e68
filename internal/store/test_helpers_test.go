package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/roach88/benchmocker/internal/harness"
	"github.com/roach88/benchmocker/internal/schedule"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestRun creates a run with two units and fixed timings.
func createTestRun(id string, started time.Time, seed uint64) Run {
	return Run{
		ID:        id,
		StartedAt: started,
		Report: &harness.Report{
			Cycles: 3,
			Seed:   seed,
			Mode:   schedule.ModeFactorial,
			Entries: []harness.Entry{
				{Name: "FakeTest", Total: 30 * time.Millisecond, Invocations: 3, Mean: 10 * time.Millisecond},
				{Name: "GoMockTest", Total: 90 * time.Millisecond, Invocations: 3, Mean: 30 * time.Millisecond},
			},
		},
	}
}
