// Package schedule builds fair running orders for the benchmark harness.
//
// A running order is a concatenation of whole permutation blocks: every block
// schedules each unit exactly once, so any prefix that is a multiple of the
// unit count is perfectly balanced. Randomization happens twice, once in which
// ordering a block uses and once in which order the blocks of a refill cycle
// are consumed.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/roach88/benchmocker/internal/permute"
)

// Rand is the entropy source used to shuffle the permutation index pool.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Int64N returns a uniformly distributed value in [0, n). n > 0.
	Int64N(n int64) int64
}

// NewRand returns a PCG-backed Rand. The same seed always yields the same
// running orders.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TimeSeed returns a seed derived from the current time, for runs that do
// not ask for a specific seed.
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// MaxSlots bounds the length of a single running order.
const MaxSlots = math.MaxInt32

// ErrTooManySlots is returned by Build when units*cycles exceeds MaxSlots.
var ErrTooManySlots = errors.New("running order too long")

// Mode selects how the permutation index pool is filled.
type Mode string

const (
	// ModeFactorial fills the pool with every index in [0, n!). Default.
	ModeFactorial Mode = "factorial"

	// ModeLegacy fills the pool with n! copies of the value n!, reproducing
	// the first published benchmark runs. n! decodes to the identity ordering, so every
	// block runs the units in registration order.
	ModeLegacy Mode = "legacy"
)

// ParseMode converts a mode name. The empty string selects ModeFactorial.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFactorial:
		return ModeFactorial, nil
	case ModeLegacy:
		return ModeLegacy, nil
	default:
		return "", fmt.Errorf("unknown schedule mode %q: must be %q or %q", s, ModeFactorial, ModeLegacy)
	}
}

// RunningOrder is the flattened sequence of unit positions to execute.
type RunningOrder []int

// Counts returns how many times each of the n positions occurs.
func (o RunningOrder) Counts(n int) []int {
	counts := make([]int, n)
	for _, pos := range o {
		counts[pos]++
	}
	return counts
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithRand sets the entropy source. Defaults to NewRand(TimeSeed()).
func WithRand(r Rand) Option {
	return func(s *Scheduler) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithMode sets the pool fill mode. Defaults to ModeFactorial.
func WithMode(m Mode) Option {
	return func(s *Scheduler) {
		s.mode = m
	}
}

// Scheduler builds running orders for a fixed number of units.
//
// Thread-safety: a Scheduler owns its index pool and must only be used from
// one goroutine.
type Scheduler struct {
	units     int
	factorial int64
	mode      Mode
	rng       Rand
	pool      *indexPool
}

// New creates a Scheduler for the given unit count.
//
// Fails with permute.ErrArithmeticOverflow when units! does not fit in an
// int64; decoding a wrapped factorial would quietly pick wrong orderings.
func New(units int, opts ...Option) (*Scheduler, error) {
	f, err := permute.Factorial(units)
	if err != nil {
		return nil, fmt.Errorf("schedule %d units: %w", units, err)
	}

	s := &Scheduler{
		units:     units,
		factorial: f,
		mode:      ModeFactorial,
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := ParseMode(string(s.mode)); err != nil {
		return nil, err
	}
	if s.rng == nil {
		s.rng = NewRand(TimeSeed())
	}
	s.pool = newIndexPool(f, s.mode, s.rng)
	return s, nil
}

// Units returns the unit count the scheduler was built for.
func (s *Scheduler) Units() int {
	return s.units
}

// Mode returns the pool fill mode.
func (s *Scheduler) Mode() Mode {
	return s.mode
}

// Build returns a running order in which each unit appears exactly cycles
// times. Non-positive cycles yield an empty order.
//
// Fails with ErrTooManySlots when units*cycles exceeds MaxSlots. The
// product is checked before it is computed, so it never wraps.
//
// The index pool persists across calls, so consecutive builds keep drawing
// from the same shuffled refill cycle.
func (s *Scheduler) Build(cycles int) (RunningOrder, error) {
	if s.units <= 0 || cycles <= 0 {
		return RunningOrder{}, nil
	}
	if cycles > MaxSlots/s.units {
		return nil, fmt.Errorf("%w: %d units x %d cycles exceeds %d slots", ErrTooManySlots, s.units, cycles, MaxSlots)
	}
	target := s.units * cycles

	order := make(RunningOrder, 0, target)
	for len(order) < target {
		order = append(order, permute.Decode(s.pool.next(), s.units)...)
	}
	return order, nil
}
