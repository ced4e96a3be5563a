package radixspline_test

import (
	"errors"
	"testing"

	"github.com/learnedindex/radixspline"
)

func TestBuilderRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	b := radixspline.NewBuilder[uint64](10, 100)
	if err := b.AddKey(5); !errors.Is(err, radixspline.ErrOutOfRange) {
		t.Fatalf("AddKey(5) = %v, want ErrOutOfRange", err)
	}
	if err := b.AddKey(200); !errors.Is(err, radixspline.ErrOutOfRange) {
		t.Fatalf("AddKey(200) = %v, want ErrOutOfRange", err)
	}
}

func TestBuilderRejectsDecreasingKeys(t *testing.T) {
	t.Parallel()

	b := radixspline.NewBuilder[uint64](0, 100)
	mustAdd(t, b, 10)
	mustAdd(t, b, 20)
	if err := b.AddKey(15); !errors.Is(err, radixspline.ErrInvalidOrder) {
		t.Fatalf("AddKey(15) after 20 = %v, want ErrInvalidOrder", err)
	}
}

func TestBuilderAllowsDuplicateKeys(t *testing.T) {
	t.Parallel()

	b := radixspline.NewBuilder[uint64](10, 10)
	for i := 0; i < 3; i++ {
		mustAdd(t, b, 10)
	}
	rs := b.Finalize()
	if got := rs.NumKeys(); got != 3 {
		t.Fatalf("NumKeys() = %d, want 3", got)
	}
}

func TestBuilderRejectsAddAfterFinalize(t *testing.T) {
	t.Parallel()

	b := radixspline.NewBuilder[uint64](0, 10)
	mustAdd(t, b, 0)
	b.Finalize()

	if err := b.AddKey(5); !errors.Is(err, radixspline.ErrFinalized) {
		t.Fatalf("AddKey after Finalize = %v, want ErrFinalized", err)
	}
}

func TestBuilderFinalizeTwicePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("second Finalize did not panic")
		}
	}()

	b := radixspline.NewBuilder[uint64](0, 10)
	mustAdd(t, b, 0)
	b.Finalize()
	b.Finalize()
}

func TestBuilderEmpty(t *testing.T) {
	t.Parallel()

	b := radixspline.NewBuilder[uint64](0, 0)
	rs := b.Finalize()

	if got := rs.NumKeys(); got != 0 {
		t.Fatalf("NumKeys() = %d, want 0", got)
	}
	if got := rs.NumSplinePoints(); got != 0 {
		t.Fatalf("NumSplinePoints() = %d, want 0", got)
	}
	begin, end := rs.SearchBound(0)
	if begin != 0 || end != 0 {
		t.Fatalf("SearchBound(0) = (%d,%d), want (0,0)", begin, end)
	}
}

func TestBuilderSingleKey(t *testing.T) {
	t.Parallel()

	b := radixspline.NewBuilder[uint64](42, 42)
	mustAdd(t, b, 42)
	rs := b.Finalize()

	if got := rs.NumSplinePoints(); got != 1 {
		t.Fatalf("NumSplinePoints() = %d, want 1", got)
	}
	begin, end := rs.SearchBound(42)
	if begin != 0 || end != 1 {
		t.Fatalf("SearchBound(42) = (%d,%d), want (0,1)", begin, end)
	}
}

func TestBuilderRadixBitsAtKeyWidthDisablesRadix(t *testing.T) {
	t.Parallel()

	// Requesting as many radix bits as the key holds must not panic: it
	// collapses to a 2-entry (disabled) directory rather than overflowing
	// the 2^r+1 entry-count computation.
	b := radixspline.NewBuilder[uint64](0, 1000, radixspline.WithNumRadixBits[uint64](64))
	for _, k := range []uint64{0, 1, 50, 999, 1000} {
		mustAdd(t, b, k)
	}
	rs := b.Finalize()

	if got := rs.NumRadixBits(); got != 0 {
		t.Fatalf("NumRadixBits() = %d, want 0 (radix disabled)", got)
	}
	for _, k := range []uint64{0, 1, 50, 999, 1000} {
		if begin, end := rs.SearchBound(k); end < begin {
			t.Fatalf("SearchBound(%d) = (%d,%d)", k, begin, end)
		}
	}
}

func mustAdd[K radixspline.Key](t *testing.T, b *radixspline.Builder[K], k K) {
	t.Helper()
	if err := b.AddKey(k); err != nil {
		t.Fatalf("AddKey(%v): %v", k, err)
	}
}
