// Package radixspline provides a compact, static, read-only learned index
// over a sorted sequence of unsigned integer keys.
//
// A Builder consumes keys in non-decreasing order and fits a bounded-error
// piecewise-linear spline to their cumulative distribution (the
// GreedySplineCorridor algorithm), while incrementally building a radix
// directory that maps key prefixes to spline segments. Finalize yields an
// immutable RadixSpline that answers EstimatedPosition and SearchBound
// queries in constant time, bounding the range a caller's own binary search
// over its sorted key array must scan.
//
// RadixSpline does not store values and does not own the key array it
// indexes; the caller is responsible for keeping that array alive and for
// performing the final exact lookup within the returned bound.
//
// The finalized structure is immutable and therefore safe for concurrent
// use by any number of reader goroutines. The Builder is not safe for
// concurrent use and must be owned by a single goroutine until Finalize.
package radixspline
