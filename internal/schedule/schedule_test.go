package schedule

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/benchmocker/internal/permute"
)

func newTestScheduler(t *testing.T, units int, opts ...Option) *Scheduler {
	t.Helper()
	opts = append([]Option{WithRand(NewRand(42))}, opts...)
	s, err := New(units, opts...)
	require.NoError(t, err)
	return s
}

func mustBuild(t *testing.T, s *Scheduler, cycles int) RunningOrder {
	t.Helper()
	order, err := s.Build(cycles)
	require.NoError(t, err)
	return order
}

func TestBuild_Fairness(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for _, cycles := range []int{1, 2, 7, 50} {
			t.Run(fmt.Sprintf("n=%d/c=%d", n, cycles), func(t *testing.T) {
				order := mustBuild(t, newTestScheduler(t, n), cycles)
				require.Len(t, order, n*cycles)

				for k := 1; k <= cycles; k++ {
					prefix := order[:k*n]
					for pos, c := range prefix.Counts(n) {
						require.Equal(t, k, c, "prefix %d: unit %d scheduled %d times", k*n, pos, c)
					}
				}
			})
		}
	}
}

func TestBuild_BlocksArePermutations(t *testing.T) {
	const n = 4
	order := mustBuild(t, newTestScheduler(t, n), 100)

	for start := 0; start < len(order); start += n {
		block := order[start : start+n]
		_, err := permute.Encode(block)
		require.NoError(t, err, "block at %d: %v", start, block)
	}
}

func TestBuild_FullRefillCycleUsesEveryOrdering(t *testing.T) {
	const n = 4
	f, err := permute.Factorial(n)
	require.NoError(t, err)

	order := mustBuild(t, newTestScheduler(t, n), int(f))
	seen := make(map[int64]bool)
	for start := 0; start < len(order); start += n {
		idx, err := permute.Encode(order[start : start+n])
		require.NoError(t, err)
		seen[idx] = true
	}
	assert.Len(t, seen, int(f), "one refill cycle should cover all %d orderings", f)
}

func TestBuild_DeterministicWithSeed(t *testing.T) {
	a, err := New(5, WithRand(NewRand(7)))
	require.NoError(t, err)
	b, err := New(5, WithRand(NewRand(7)))
	require.NoError(t, err)
	c, err := New(5, WithRand(NewRand(8)))
	require.NoError(t, err)

	orderA := mustBuild(t, a, 30)
	assert.Equal(t, orderA, mustBuild(t, b, 30))
	assert.NotEqual(t, orderA, mustBuild(t, c, 30))
}

func TestBuild_ZeroUnits(t *testing.T) {
	s := newTestScheduler(t, 0)
	assert.Empty(t, mustBuild(t, s, 1000))
}

func TestBuild_NonPositiveCycles(t *testing.T) {
	s := newTestScheduler(t, 3)
	assert.Empty(t, mustBuild(t, s, 0))
	assert.Empty(t, mustBuild(t, s, -4))
}

func TestBuild_LegacyModeRepeatsIdentityBlock(t *testing.T) {
	const n = 5
	s := newTestScheduler(t, n, WithMode(ModeLegacy))
	assert.Equal(t, ModeLegacy, s.Mode())

	order := mustBuild(t, s, 40)
	require.Len(t, order, n*40)
	for i, pos := range order {
		require.Equal(t, i%n, pos, "slot %d", i)
	}
}

func TestBuild_TooManySlots(t *testing.T) {
	s := newTestScheduler(t, 4)

	tests := []int{
		1 << 62, // 4 * 2^62 wraps to 0 in int64
		math.MaxInt,
		MaxSlots/4 + 1,
	}
	for _, cycles := range tests {
		order, err := s.Build(cycles)
		assert.ErrorIs(t, err, ErrTooManySlots, "cycles %d", cycles)
		assert.Nil(t, order)
	}
}

func TestBuild_SingleUnitLimit(t *testing.T) {
	s := newTestScheduler(t, 1)
	_, err := s.Build(MaxSlots + 1)
	assert.ErrorIs(t, err, ErrTooManySlots)

	order := mustBuild(t, s, 5)
	assert.Len(t, order, 5)
}

func TestNew_Overflow(t *testing.T) {
	_, err := New(permute.MaxUnits + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, permute.ErrArithmeticOverflow)
}

func TestNew_UnknownMode(t *testing.T) {
	_, err := New(3, WithMode("sideways"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown schedule mode")
}

func TestNew_LargeUnitCountDoesNotAllocatePool(t *testing.T) {
	// 20! indices could never be materialized; the sparse pool only
	// touches what it draws.
	s, err := New(permute.MaxUnits, WithRand(NewRand(1)))
	require.NoError(t, err)

	order := mustBuild(t, s, 3)
	assert.Len(t, order, permute.MaxUnits*3)
	for _, c := range order.Counts(permute.MaxUnits) {
		assert.Equal(t, 3, c)
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeFactorial, m)

	m, err = ParseMode("legacy")
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, m)

	_, err = ParseMode("LEGACY")
	assert.Error(t, err)
}
