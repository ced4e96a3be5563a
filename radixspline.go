package radixspline

import (
	"sort"
	"unsafe"

	"github.com/learnedindex/radixspline/internal/corridor"
	"github.com/learnedindex/radixspline/internal/directory"
)

// RadixSpline is an immutable, bounded-error learned index over a sorted
// sequence of K keys. It does not store the keys or any values; it answers
// EstimatedPosition and SearchBound queries that tell a caller where in its
// own sorted key array to binary-search for an exact match.
//
// A *RadixSpline is safe for concurrent use by any number of goroutines: it
// is never mutated after Finalize produces it.
type RadixSpline[K Key] struct {
	minKey, maxKey K
	numKeys        uint32
	numRadixBits   int
	maxError       uint32

	splinePoints []corridor.Point[K]
	dir          *directory.Table[K]
}

// EstimatedPosition returns a position in [0, numKeys) that is within
// MaxError() of the true position of key in the indexed sequence, i.e. the
// smallest i such that the i-th key is >= key. Keys <= the minimum key map
// to 0 and keys >= the maximum key map to numKeys-1; for a maximum key that
// occurs more than once, that is its last occurrence, not its first.
// Callers should treat it as the center of SearchBound, not as an exact
// answer.
func (rs *RadixSpline[K]) EstimatedPosition(key K) uint32 {
	if rs.numKeys == 0 {
		return 0
	}
	if key <= rs.minKey {
		return 0
	}
	if key >= rs.maxKey {
		return rs.numKeys - 1
	}

	lo, hi := rs.dir.Range(key, uint32(len(rs.splinePoints)))
	idx := int(lo) + sort.Search(int(hi-lo), func(i int) bool {
		return rs.splinePoints[int(lo)+i].Key > key
	})

	// idx may equal lo when the bucket's first spline point already lies
	// above key; the segment then starts at the point before it.
	if idx == 0 {
		idx = 1
	}
	if idx >= len(rs.splinePoints) {
		idx = len(rs.splinePoints) - 1
	}

	pos := interpolate(rs.splinePoints[idx-1], rs.splinePoints[idx], key)
	if pos > rs.numKeys-1 {
		pos = rs.numKeys - 1
	}
	return pos
}

// SearchBound returns the half-open range [begin, end) of positions a
// caller must binary-search to find key, derived from EstimatedPosition and
// widened by the configured MaxError in both directions. If key is present,
// [begin, end) is guaranteed to contain one of its positions: its first
// occurrence, or for the maximum key its last.
func (rs *RadixSpline[K]) SearchBound(key K) (begin, end uint32) {
	if rs.numKeys == 0 {
		return 0, 0
	}

	p := rs.EstimatedPosition(key)

	if p > rs.maxError {
		begin = p - rs.maxError
	}

	endU64 := uint64(p) + uint64(rs.maxError) + 1
	if endU64 > uint64(rs.numKeys) {
		end = rs.numKeys
	} else {
		end = uint32(endU64)
	}
	return begin, end
}

// NumKeys returns the number of keys the spline was built over.
func (rs *RadixSpline[K]) NumKeys() uint32 { return rs.numKeys }

// MaxError returns the per-segment position-error bound the spline was
// built with.
func (rs *RadixSpline[K]) MaxError() uint32 { return rs.maxError }

// NumRadixBits returns the width of the radix directory prefix.
func (rs *RadixSpline[K]) NumRadixBits() int { return rs.numRadixBits }

// NumSplinePoints returns the number of knots in the fitted spline.
func (rs *RadixSpline[K]) NumSplinePoints() int { return len(rs.splinePoints) }

// SizeInBytes returns the exact in-memory footprint of the finalized
// structure: the header, the radix directory, and the spline points. It
// does not count the indexed key array, which RadixSpline never holds.
func (rs *RadixSpline[K]) SizeInBytes() int {
	var hdr RadixSpline[K]
	headerSize := int(unsafe.Sizeof(hdr))
	splineSize := len(rs.splinePoints) * int(unsafe.Sizeof(corridor.Point[K]{}))
	return headerSize + rs.dir.SizeInBytes() + splineSize
}
