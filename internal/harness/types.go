package harness

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/roach88/benchmocker/internal/schedule"
)

// Runnable executes one full benchmark scenario.
type Runnable func(ctx context.Context) error

// WorkUnit is one benchmark candidate.
type WorkUnit struct {
	// Name is the display name used in reports. Must be unique.
	Name string

	// Run executes the scenario once.
	Run Runnable
}

// Clock supplies the timestamps measured around each invocation.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now. Its values carry a monotonic reading.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Observer is notified after every successful invocation.
type Observer interface {
	Observe(unit string, elapsed time.Duration)
}

// Table accumulates elapsed time per unit. Totals only ever grow.
type Table struct {
	names  []string
	totals map[string]time.Duration
	counts map[string]int
}

func newTable(names []string) *Table {
	t := &Table{
		names:  names,
		totals: make(map[string]time.Duration, len(names)),
		counts: make(map[string]int, len(names)),
	}
	for _, name := range names {
		t.totals[name] = 0
		t.counts[name] = 0
	}
	return t
}

// add records one invocation. Negative durations are clamped to zero.
func (t *Table) add(name string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.totals[name] += d
	t.counts[name]++
}

// Total returns the accumulated duration for a unit.
func (t *Table) Total(name string) (time.Duration, bool) {
	d, ok := t.totals[name]
	return d, ok
}

// Invocations returns how many invocations of a unit completed.
func (t *Table) Invocations(name string) int {
	return t.counts[name]
}

// Report builds the name-sorted report for the table. Names compare byte-wise
// (UTF-8 order), which differs from UTF-16 code-unit order only for names
// containing characters outside the Basic Multilingual Plane.
func (t *Table) Report(cycles int) *Report {
	entries := make([]Entry, 0, len(t.names))
	for _, name := range t.names {
		e := Entry{
			Name:        name,
			Total:       t.totals[name],
			Invocations: t.counts[name],
		}
		if e.Invocations > 0 {
			e.Mean = e.Total / time.Duration(e.Invocations)
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return &Report{Cycles: cycles, Entries: entries}
}

// Entry is one report line.
type Entry struct {
	Name        string        `json:"name"`
	Total       time.Duration `json:"total_ns"`
	Invocations int           `json:"invocations"`
	Mean        time.Duration `json:"mean_ns"`
}

// Report is the final result of a run. Entries are sorted by name.
type Report struct {
	Cycles  int           `json:"cycles"`
	Seed    uint64        `json:"seed"`
	Mode    schedule.Mode `json:"mode"`
	Entries []Entry       `json:"entries"`
}

// WriteText renders the report as "<cycles> cycles per test:" followed by
// one "<name> = <total>" line per unit.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d cycles per test:\n", r.Cycles); err != nil {
		return err
	}
	for _, e := range r.Entries {
		if _, err := fmt.Fprintf(w, "%s = %s\n", e.Name, e.Total); err != nil {
			return err
		}
	}
	return nil
}
