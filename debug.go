package radixspline

import (
	"fmt"
	"io"
)

// String returns a one-line summary, useful in logs and test failures. It
// is not a serialization format: there is no corresponding parse function,
// and the layout may change between versions.
func (rs *RadixSpline[K]) String() string {
	return fmt.Sprintf(
		"RadixSpline[%T]{numKeys: %d, splinePoints: %d, radixBits: %d, maxError: %d, sizeInBytes: %d}",
		rs.minKey, rs.numKeys, len(rs.splinePoints), rs.numRadixBits, rs.maxError, rs.SizeInBytes(),
	)
}

// Dump writes a verbose, human-readable rendering of every spline point to
// w, one per line, for interactive debugging of a fit that looks wrong.
// Like String, this is not a serialization format.
func (rs *RadixSpline[K]) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", rs); err != nil {
		return err
	}
	for i, p := range rs.splinePoints {
		if _, err := fmt.Fprintf(w, "  [%d] key=%v pos=%d\n", i, p.Key, p.Pos); err != nil {
			return err
		}
	}
	return nil
}
