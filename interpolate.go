package radixspline

import (
	"math/bits"

	"github.com/learnedindex/radixspline/internal/corridor"
)

// interpolate estimates the position of key on the line segment between lo
// and hi, two adjacent spline points with lo.Key <= key <= hi.Key.
//
// The naive computation lo.Pos + (key-lo.Key)*(hi.Pos-lo.Pos)/(hi.Key-lo.Key)
// overflows a 64-bit intermediate for keys near the top of the uint64 range:
// the numerator's product alone can need 96+ bits. bits.Mul64 computes that
// product as a 128-bit (hi, lo) pair and bits.Div64 divides it by the
// denominator exactly, so the result is computed as if in infinite
// precision and only then truncated - no floating-point rounding anywhere
// on this path, matching the bound the error-bound invariant is checked
// against.
func interpolate[K Key](lo, hi corridor.Point[K], key K) uint32 {
	if hi.Key == lo.Key {
		// duplicate-key segment: every key value in [lo.Key, hi.Key] is the
		// same key, so the first occurrence's position is the only sound
		// answer.
		return lo.Pos
	}

	keyDiff := uint64(key) - uint64(lo.Key)
	fullDiff := uint64(hi.Key) - uint64(lo.Key)
	posDiff := uint64(hi.Pos - lo.Pos)

	hiProd, loProd := bits.Mul64(keyDiff, posDiff)
	quotient, _ := bits.Div64(hiProd, loProd, fullDiff)

	return lo.Pos + uint32(quotient)
}
