package radixspline

import (
	"iter"

	"github.com/learnedindex/radixspline/internal/corridor"
)

// Point is a single knot of the fitted spline, exported for callers that
// want to inspect or visualize the fit via SplinePoints.
type Point[K Key] = corridor.Point[K]

// SplinePoints returns an iterator over the finalized spline's knots, in
// increasing key order. It is a read-only view for introspection and
// debugging; RadixSpline's queries do not go through it.
func (rs *RadixSpline[K]) SplinePoints() iter.Seq[Point[K]] {
	return func(yield func(Point[K]) bool) {
		for _, p := range rs.splinePoints {
			if !yield(p) {
				return
			}
		}
	}
}
