package radixspline

import (
	"fmt"

	"github.com/learnedindex/radixspline/internal/corridor"
	"github.com/learnedindex/radixspline/internal/directory"
)

type builderState uint8

const (
	stateOpen builderState = iota
	stateFinalized
)

// Builder accumulates keys one at a time, in non-decreasing order, and
// produces an immutable RadixSpline via Finalize. A Builder is not safe for
// concurrent use and must not be used again after Finalize.
type Builder[K Key] struct {
	minKey, maxKey K
	numRadixBits   int
	maxError       uint32

	state    builderState
	numKeys  uint32
	havePrev bool
	prevKey  K

	fitter *corridor.Fitter[K]
	dir    *directory.Table[K]
}

// NewBuilder returns a Builder for keys in the closed range [minKey,
// maxKey]. Options override the default radix width (18 bits) and maximum
// per-segment position error (32).
func NewBuilder[K Key](minKey, maxKey K, opts ...Option[K]) *Builder[K] {
	b := &Builder[K]{
		minKey:       minKey,
		maxKey:       maxKey,
		numRadixBits: defaultNumRadixBits,
		maxError:     defaultMaxError,
	}
	for _, opt := range opts {
		opt(b)
	}

	shiftBits := shiftBitsFor[K](b.numRadixBits)
	b.numRadixBits = effectiveRadixBits[K](b.numRadixBits)
	b.fitter = corridor.New[K](b.maxError)
	b.dir = directory.New[K](minKey, shiftBits, b.numRadixBits)
	return b
}

// AddKey incorporates the next key of the indexed sequence. Keys must be
// non-decreasing and must lie within [minKey, maxKey]; violating either
// returns ErrInvalidOrder or ErrOutOfRange without mutating the Builder.
// Calling AddKey after Finalize returns ErrFinalized.
func (b *Builder[K]) AddKey(key K) error {
	if b.state == stateFinalized {
		return ErrFinalized
	}
	if key < b.minKey || key > b.maxKey {
		return fmt.Errorf("%w: key=%v range=[%v,%v]", ErrOutOfRange, key, b.minKey, b.maxKey)
	}
	if b.havePrev && key < b.prevKey {
		return fmt.Errorf("%w: key=%v previous=%v", ErrInvalidOrder, key, b.prevKey)
	}

	pos := b.numKeys
	before := len(b.fitter.Points())
	b.fitter.Add(key, pos)
	if pts := b.fitter.Points(); len(pts) > before {
		newest := uint32(len(pts) - 1)
		b.dir.Append(pts[newest].Key, newest)
	}

	b.prevKey, b.havePrev = key, true
	b.numKeys++
	return nil
}

// Finalize closes the fit and returns the resulting RadixSpline. The
// Builder must not be used again afterwards.
func (b *Builder[K]) Finalize() *RadixSpline[K] {
	if b.state == stateFinalized {
		panic("radixspline: Finalize called twice on the same Builder")
	}

	before := len(b.fitter.Points())
	b.fitter.Finalize()
	if pts := b.fitter.Points(); len(pts) > before {
		newest := uint32(len(pts) - 1)
		b.dir.Append(pts[newest].Key, newest)
	}

	pts := b.fitter.Points()
	b.dir.Close(uint32(len(pts)))
	b.state = stateFinalized

	return &RadixSpline[K]{
		minKey:       b.minKey,
		maxKey:       b.maxKey,
		numKeys:      b.numKeys,
		numRadixBits: b.numRadixBits,
		maxError:     b.maxError,
		splinePoints: pts,
		dir:          b.dir,
	}
}
