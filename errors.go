package radixspline

import "errors"

// Sentinel errors returned by Builder.AddKey. All three are precondition
// violations: the core never retries and never falls back, it fails fast at
// the call site (see DESIGN.md).
var (
	// ErrInvalidOrder is returned when AddKey is called with a key smaller
	// than the previously added key. The builder requires non-decreasing
	// input.
	ErrInvalidOrder = errors.New("radixspline: key is smaller than the previously added key")

	// ErrOutOfRange is returned when AddKey is called with a key outside
	// the closed range [minKey, maxKey] supplied to NewBuilder.
	ErrOutOfRange = errors.New("radixspline: key is outside [minKey, maxKey]")

	// ErrFinalized is returned when AddKey is called on a Builder that has
	// already produced its RadixSpline via Finalize.
	ErrFinalized = errors.New("radixspline: builder already finalized")
)
