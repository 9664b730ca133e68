package permute

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{6, 720},
		{12, 479001600},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d", tt.n), func(t *testing.T) {
			got, err := Factorial(tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactorial_Overflow(t *testing.T) {
	_, err := Factorial(MaxUnits + 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)

	_, err = Factorial(100)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
}

func TestFactorial_Negative(t *testing.T) {
	_, err := Factorial(-1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrArithmeticOverflow)
}

func TestDecode_Empty(t *testing.T) {
	assert.Equal(t, []int{}, Decode(0, 0))
	assert.Equal(t, []int{}, Decode(42, 0))
}

func TestDecode_SingleUnit(t *testing.T) {
	for _, index := range []int64{0, 1, 7, math.MaxInt64} {
		assert.Equal(t, []int{0}, Decode(index, 1), "index %d", index)
	}
}

func TestDecode_KnownOrderings(t *testing.T) {
	// Least significant digit picks the first element.
	tests := []struct {
		index int64
		want  []int
	}{
		{0, []int{0, 1, 2}},
		{1, []int{1, 0, 2}},
		{2, []int{2, 0, 1}},
		{3, []int{0, 2, 1}},
		{4, []int{1, 2, 0}},
		{5, []int{2, 1, 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Decode(tt.index, 3), "index %d", tt.index)
	}
}

func TestDecode_Bijection(t *testing.T) {
	for n := 1; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			f, err := Factorial(n)
			require.NoError(t, err)

			seen := make(map[string]int64, f)
			for index := int64(0); index < f; index++ {
				order := Decode(index, n)
				require.Len(t, order, n)

				counts := make([]int, n)
				for _, pos := range order {
					require.True(t, pos >= 0 && pos < n, "position %d out of range", pos)
					counts[pos]++
				}
				for pos, c := range counts {
					require.Equal(t, 1, c, "index %d: position %d appears %d times", index, pos, c)
				}

				key := fmt.Sprint(order)
				if prev, dup := seen[key]; dup {
					t.Fatalf("indices %d and %d decode to the same ordering %v", prev, index, order)
				}
				seen[key] = index
			}
			assert.Len(t, seen, int(f))
		})
	}
}

func TestDecode_OutOfRangeDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		order := Decode(-5, 4)
		assert.Len(t, order, 4)
	})
	assert.NotPanics(t, func() {
		order := Decode(math.MaxInt64, 6)
		assert.Len(t, order, 6)
	})
}

func TestDecode_FactorialIndexIsCanonical(t *testing.T) {
	// n! is one past the valid range. Every digit of n! in the factorial
	// number system is zero, so it decodes to the identity ordering.
	for n := 1; n <= 10; n++ {
		f, err := Factorial(n)
		require.NoError(t, err)

		want := make([]int, n)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, Decode(f, n), "n=%d", n)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	const n = 5
	f, err := Factorial(n)
	require.NoError(t, err)

	for index := int64(0); index < f; index++ {
		got, err := Encode(Decode(index, n))
		require.NoError(t, err)
		require.Equal(t, index, got)
	}
}

func TestEncode_RejectsInvalidOrdering(t *testing.T) {
	_, err := Encode([]int{0, 0, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing or repeated")

	_, err = Encode([]int{0, 3})
	require.Error(t, err)
}
