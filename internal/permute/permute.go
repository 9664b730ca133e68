// Package permute maps permutation indices onto orderings of unit positions.
//
// An index in [0, n!) is read as a number in the factorial number system
// (a Lehmer code): the least significant digit has radix n and selects the
// first element, the next digit has radix n-1 and selects the second, and so
// on. Every index decodes to a distinct ordering and every ordering has
// exactly one index.
package permute

import (
	"errors"
	"fmt"
	"math"
)

// MaxUnits is the largest n whose factorial fits in an int64.
const MaxUnits = 20

// ErrArithmeticOverflow is returned when n! cannot be represented as an int64.
var ErrArithmeticOverflow = errors.New("arithmetic overflow")

// Factorial returns n!.
//
// Fails with ErrArithmeticOverflow instead of wrapping: a wrapped factorial
// would silently shrink the index range handed to Decode.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of negative unit count %d", n)
	}
	f := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		if f > math.MaxInt64/i {
			return 0, fmt.Errorf("%d! exceeds int64: %w", n, ErrArithmeticOverflow)
		}
		f *= i
	}
	return f, nil
}

// Decode returns the ordering of positions 0..n-1 encoded by index.
//
// index must lie in [0, n!). Indices outside that range are not rejected;
// they decode to some ordering, which may repeat the ordering of an
// in-range index.
func Decode(index int64, n int) []int {
	if n <= 0 {
		return []int{}
	}
	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}

	result := make([]int, 0, n)
	for len(candidates) > 0 {
		k := int64(len(candidates))
		pos := index % k
		if pos < 0 {
			pos += k
		}
		result = append(result, candidates[pos])
		candidates = append(candidates[:pos], candidates[pos+1:]...)
		index /= k
	}
	return result
}

// Encode is the inverse of Decode. It returns the index of order, which must
// be an ordering of 0..len(order)-1.
func Encode(order []int) (int64, error) {
	n := len(order)
	candidates := make([]int, n)
	for i := range candidates {
		candidates[i] = i
	}

	var index, radix int64 = 0, 1
	for _, want := range order {
		pos := -1
		for i, c := range candidates {
			if c == want {
				pos = i
				break
			}
		}
		if pos < 0 {
			return 0, fmt.Errorf("position %d is missing or repeated in ordering", want)
		}
		index += int64(pos) * radix
		radix *= int64(len(candidates))
		candidates = append(candidates[:pos], candidates[pos+1:]...)
	}
	return index, nil
}
