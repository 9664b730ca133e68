package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/benchmocker/internal/schedule"
)

type options struct {
	clock    Clock
	logger   *slog.Logger
	observer Observer
	mode     schedule.Mode
	seed     uint64
	seeded   bool
}

// Option configures a Harness.
type Option func(*options)

// WithClock sets the clock read around each invocation. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers an observer for successful invocations.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithSeed fixes the seed of the shuffle source, making running orders
// reproducible. Without it a time-derived seed is used.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMode selects the permutation pool mode. Defaults to schedule.ModeFactorial.
func WithMode(m schedule.Mode) Option {
	return func(o *options) {
		o.mode = m
	}
}

// Harness schedules and executes a fixed set of work units.
//
// Thread-safety: a Harness is not safe for concurrent use. Units always run
// sequentially so that each measured interval belongs to exactly one unit.
type Harness struct {
	units     []WorkUnit
	names     []string
	scheduler *schedule.Scheduler
	clock     Clock
	logger    *slog.Logger
	observer  Observer
	seed      uint64
}

// New creates a harness for units. The registry is copied; unit names are
// NFC-normalized and must be non-empty and unique.
//
// Fails with permute.ErrArithmeticOverflow if len(units)! does not fit in an
// int64.
func New(units []WorkUnit, opts ...Option) (*Harness, error) {
	o := options{
		clock:  SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		mode:   schedule.ModeFactorial,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = schedule.TimeSeed()
	}

	registered := make([]WorkUnit, len(units))
	names := make([]string, len(units))
	seen := make(map[string]int, len(units))
	for i, u := range units {
		name := norm.NFC.String(u.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: unit %d has no name", ErrInvalidUnit, i)
		}
		if u.Run == nil {
			return nil, fmt.Errorf("%w: unit %q has no runnable", ErrInvalidUnit, name)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: units %d and %d are both named %q", ErrInvalidUnit, prev, i, name)
		}
		seen[name] = i
		registered[i] = WorkUnit{Name: name, Run: u.Run}
		names[i] = name
	}

	sched, err := schedule.New(len(units),
		schedule.WithRand(schedule.NewRand(o.seed)),
		schedule.WithMode(o.mode),
	)
	if err != nil {
		return nil, err
	}

	return &Harness{
		units:     registered,
		names:     names,
		scheduler: sched,
		clock:     o.clock,
		logger:    o.logger,
		observer:  o.observer,
		seed:      o.seed,
	}, nil
}

// Names returns the unit names in registration order.
func (h *Harness) Names() []string {
	return append([]string(nil), h.names...)
}

// Seed returns the seed of the shuffle source.
func (h *Harness) Seed() uint64 {
	return h.seed
}

// Schedule builds a running order in which every unit appears cycles times.
// Fails with schedule.ErrTooManySlots when the order would be too long.
func (h *Harness) Schedule(cycles int) (schedule.RunningOrder, error) {
	return h.scheduler.Build(cycles)
}

// Execute runs every slot of order in sequence and returns the accumulated
// timings.
//
// The first unit error stops execution. The returned table then holds only
// the invocations that completed before the failure, and the error is a
// *UnitError wrapping the cause. Cancellation of ctx is honored between
// slots.
func (h *Harness) Execute(ctx context.Context, order schedule.RunningOrder) (*Table, error) {
	table := newTable(h.names)

	for slot, pos := range order {
		if err := ctx.Err(); err != nil {
			return table, fmt.Errorf("run interrupted at slot %d: %w", slot, err)
		}
		if pos < 0 || pos >= len(h.units) {
			return table, fmt.Errorf("slot %d: unit position %d out of range [0, %d)", slot, pos, len(h.units))
		}
		unit := h.units[pos]

		start := h.clock.Now()
		err := unit.Run(ctx)
		elapsed := h.clock.Now().Sub(start)

		if err != nil {
			h.logger.Error("unit failed", "unit", unit.Name, "slot", slot, "error", err)
			return table, &UnitError{Unit: unit.Name, Slot: slot, Err: err}
		}

		table.add(unit.Name, elapsed)
		if h.observer != nil {
			h.observer.Observe(unit.Name, elapsed)
		}
		h.logger.Debug("unit executed", "unit", unit.Name, "slot", slot, "elapsed", elapsed)
	}
	return table, nil
}

// Run schedules cycles invocations per unit, executes them and returns the
// report. On failure the report covers the partial table and the error is
// returned alongside it. A cycle count that cannot be scheduled fails before
// any unit runs, with a nil report.
func (h *Harness) Run(ctx context.Context, cycles int) (*Report, error) {
	order, err := h.Schedule(cycles)
	if err != nil {
		return nil, err
	}
	h.logger.Info("benchmark starting",
		"units", len(h.units),
		"cycles", cycles,
		"slots", len(order),
		"mode", h.scheduler.Mode(),
		"seed", h.seed,
	)

	table, err := h.Execute(ctx, order)
	report := table.Report(cycles)
	report.Seed = h.seed
	report.Mode = h.scheduler.Mode()
	if err != nil {
		return report, err
	}

	h.logger.Info("benchmark finished", "units", len(h.units), "slots", len(order))
	return report, nil
}
