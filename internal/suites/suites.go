// Package suites provides the work units benchmarked by default: the same
// set of rot13.Decorator scenarios written against three different test
// double styles.
//
// Every unit runs the full scenario list once per invocation and fails with
// an error wrapping ErrExpectationFailed when a scenario's expectations are
// not met. The suites are interchangeable by construction, which is what
// makes comparing their run times meaningful.
package suites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/benchmocker/internal/harness"
)

// ErrExpectationFailed is wrapped by every scenario failure.
var ErrExpectationFailed = errors.New("expectation failed")

// Unit names, in registry order.
const (
	FakeUnit        = "FakeTest"
	GoMockUnit      = "GoMockTest"
	TestifyMockUnit = "TestifyMockTest"
)

// Units returns a fresh registry of the built-in work units.
func Units() []harness.WorkUnit {
	return []harness.WorkUnit{
		{Name: FakeUnit, Run: RunFake},
		{Name: GoMockUnit, Run: RunGoMock},
		{Name: TestifyMockUnit, Run: RunTestifyMock},
	}
}

// Select returns the units named in names, keeping registry order. An empty
// names list selects every unit.
func Select(units []harness.WorkUnit, names []string) ([]harness.WorkUnit, error) {
	if len(names) == 0 {
		return units, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}

	selected := make([]harness.WorkUnit, 0, len(names))
	for _, u := range units {
		if want[u.Name] {
			selected = append(selected, u)
			delete(want, u.Name)
		}
	}
	if len(want) > 0 {
		var unknown []string
		for _, n := range names {
			if want[n] {
				unknown = append(unknown, n)
			}
		}
		return nil, fmt.Errorf("unknown unit(s): %s", strings.Join(unknown, ", "))
	}
	return selected, nil
}

// scenario is one named check against the decorator.
type scenario struct {
	name string
	run  func(r *reporter)
}

func runScenarios(ctx context.Context, suite string, scenarios []scenario) error {
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := runScenario(sc); err != nil {
			return fmt.Errorf("%s.%s: %w", suite, sc.name, err)
		}
	}
	return nil
}

func runScenario(sc scenario) (err error) {
	r := &reporter{}
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(failNow); !ok {
				err = fmt.Errorf("%w: panic: %v", ErrExpectationFailed, p)
				return
			}
			if len(r.failures) == 0 {
				r.Errorf("scenario aborted")
			}
		}
		err = r.err()
	}()
	sc.run(r)
	return nil
}

// failNow is the panic value used to abort a scenario from FailNow/Fatalf.
type failNow struct{}

// reporter collects failures from assertions and mocks. It satisfies
// assert.TestingT, mock.TestingT and gomock.TestHelper.
type reporter struct {
	failures []string
}

func (r *reporter) Errorf(format string, args ...any) {
	r.failures = append(r.failures, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (r *reporter) Fatalf(format string, args ...any) {
	r.Errorf(format, args...)
	r.FailNow()
}

func (r *reporter) FailNow() {
	panic(failNow{})
}

func (r *reporter) Logf(string, ...any) {}

func (r *reporter) Helper() {}

func (r *reporter) err() error {
	if len(r.failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrExpectationFailed, strings.Join(r.failures, "; "))
}
