package radixspline

// effectiveRadixBits returns the radix width actually used to size and
// index the directory. A request for as many (or more) radix bits than K
// holds would make every key its own bucket anyway, but sizing the
// directory at 2^numRadixBits+1 entries for numRadixBits >= the key's bit
// width overflows (2^64 wraps to 0 in a uint64 shift): per the "radix is
// disabled" rule, that case collapses to a 2-entry directory instead.
func effectiveRadixBits[K Key](numRadixBits int) int {
	if numRadixBits >= bitWidth[K]() {
		return 0
	}
	return numRadixBits
}

// shiftBitsFor returns the number of low bits the radix directory discards
// when turning a key into a directory prefix: the key's bit width minus the
// effective radix width.
func shiftBitsFor[K Key](numRadixBits int) uint {
	w := bitWidth[K]()
	r := effectiveRadixBits[K](numRadixBits)
	return uint(w - r)
}
