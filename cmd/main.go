// Command radixspline-demo builds a RadixSpline over a synthetic sorted key
// array and runs background goroutines that repeatedly query it, logging
// build cost, memory footprint, and bound widths so the effect of
// -radix-bits and -max-error on both can be observed interactively.
package main

import (
	"flag"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/learnedindex/radixspline"
)

func main() {
	numKeys := flag.Int("keys", 1_000_000, "number of synthetic sorted keys to index")
	radixBits := flag.Int("radix-bits", 18, "radix directory width")
	maxError := flag.Uint("max-error", 32, "per-segment position-error bound")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	prng := rand.New(rand.NewPCG(42, 42))
	keys := syntheticKeys(prng, *numKeys)

	ts := time.Now()
	b := radixspline.NewBuilder(keys[0], keys[len(keys)-1],
		radixspline.WithNumRadixBits[uint64](*radixBits),
		radixspline.WithMaxError[uint64](uint32(*maxError)),
	)
	for _, k := range keys {
		if err := b.AddKey(k); err != nil {
			logger.Fatal("add key", zap.Error(err))
		}
	}
	rs := b.Finalize()

	logger.Info("built radix spline",
		zap.Duration("elapsed", time.Since(ts)),
		zap.Int("numKeys", len(keys)),
		zap.Int("splinePoints", rs.NumSplinePoints()),
		zap.Int("sizeInBytes", rs.SizeInBytes()),
	)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			logger.Info("spline stats",
				zap.Int("sizeInBytes", rs.SizeInBytes()),
				zap.Int("splinePoints", rs.NumSplinePoints()),
			)
			time.Sleep(time.Second)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			k := keys[prng.IntN(len(keys))]
			begin, end := rs.SearchBound(k)
			pos := sort.Search(int(end-begin), func(i int) bool {
				return keys[int(begin)+i] >= k
			}) + int(begin)
			logger.Info("query",
				zap.Uint64("key", k),
				zap.Uint32("boundBegin", begin),
				zap.Uint32("boundEnd", end),
				zap.Int("foundAt", pos),
			)
			time.Sleep(time.Millisecond * 500)
		}
	}()

	wg.Wait()
}

func syntheticKeys(prng *rand.Rand, n int) []uint64 {
	keys := make([]uint64, n)
	var k uint64
	for i := range keys {
		k += 1 + uint64(prng.IntN(8))
		keys[i] = k
	}
	return keys
}
