package harness

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares the text rendering of report against the golden file
// testdata/golden/{name}.golden relative to the calling test's package.
//
// To regenerate golden files, run:
//
//	go test ./internal/... -update
//
// Reports are only byte-stable when the run used a fixed seed and a
// deterministic clock.
func AssertGolden(t *testing.T, name string, report *Report) {
	t.Helper()

	var buf bytes.Buffer
	if err := report.WriteText(&buf); err != nil {
		t.Fatalf("render report: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, buf.Bytes())
}
