package radixspline

import "unsafe"

// Key is the set of integer types a RadixSpline can index: unsigned 32- or
// 64-bit ordinals. The tilde admits named types (e.g. a distinct uint64
// wrapper) the same way the constraint would for any other generic
// container.
type Key interface {
	~uint32 | ~uint64
}

// bitWidth returns the width in bits of K, used to clamp numRadixBits and to
// compute the number of shift bits the radix directory discards.
func bitWidth[K Key]() int {
	var k K
	return int(unsafe.Sizeof(k)) * 8
}
