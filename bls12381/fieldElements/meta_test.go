package fieldElements

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/GottfriedHerold/mont381/internal/callcounters"
	"github.com/GottfriedHerold/mont381/internal/testutils"
)

// This file contains code that is shared by a lot of benchmarking and testing code
// such as setup and/or teardown code as well as integrating call counters into go's
// default benchmarking framework.
//
// The concrete functionality provided is this:
//
// We provide global variables that the benchmarked functions write their result to.
// (This is to avoid the compiler from outsmarting us -- writing to a global variable forces the compiler to actually do the computation)
// We provide a facility to sample slices of random-looking inputs.
// We provide setup functions that ensure call counters are handled correctly and that constants were not modified.

// size of Dump slices used in benchmarks.
const dumpSizeBench_fe = 1 << 8

const benchS = 1 << 8

var (
	DumpUint384 [dumpSizeBench_fe]Uint384
	DumpWords   [dumpSizeBench_fe][6]uint64
	DumpBools   [dumpSizeBench_fe]bool
)

// prepareBenchmarkFieldElements runs some setup code and should be called in every (sub-)benchmark before the actual code that is to be benchmarked.
// Note that it resets all counters.
func prepareBenchmarkFieldElements(b *testing.B) {
	b.Cleanup(func() { postProcessBenchmarkFieldElements(b); ensureFieldElementConstantsWereNotChanged() })
	resetBenchmarkFieldElements(b)
}

// prepareTestFieldElements registers teardown code and should be called in every (sub-)test.
func prepareTestFieldElements(t *testing.T) {
	t.Cleanup(ensureFieldElementConstantsWereNotChanged) // detects any modification of (supposed) constants.
}

// postProcessBenchmarkFieldElements makes sure call counters are included in the benchmark if the current build includes them
func postProcessBenchmarkFieldElements(b *testing.B) {
	BenchmarkWithCallCounters(b)
}

// resetBenchmarkFieldElements resets the benchmark counters; this should be called after any expensive setup that we do not want to include in the benchmark.
func resetBenchmarkFieldElements(b *testing.B) {
	callcounters.ResetAllCounters()
	b.ResetTimer()
}

// SeedAndRange is a type used as key to CachedUint384 to select the precomputed slices.
type SeedAndRange struct {
	seed         int64    // randomness seed
	allowedRange *big.Int // created elements are in [0, allowedRange)
}

var (
	// reduced inputs
	pc_uint384_f = SeedAndRange{seed: 1, allowedRange: baseFieldSize_Int}
	// a second, independent list of reduced inputs
	pc_uint384_g = SeedAndRange{seed: 2, allowedRange: baseFieldSize_Int}
	// arbitrary 384-bit inputs
	pc_uint384_a = SeedAndRange{seed: 1, allowedRange: twoTo384_Int}
)

// CachedUint384 is used to retrieve precomputed slices of Uint384's.
//
// Usage: CachedUint384.GetElements(SeedAndRange{seed: rngseed, allowedRange: upperBound}, amount). Note that upperBound is strict.
//
// The first few elements of every reduced list are the edge cases 0, 1, BaseFieldSize-1 and the Montgomery one.
var CachedUint384 = func() *testutils.PrecomputedCache[SeedAndRange, Uint384] {
	cache := testutils.MakePrecomputedCache[SeedAndRange, Uint384](
		func(key SeedAndRange) *rand.Rand {
			testutils.Assert(key.allowedRange != nil, "SeedAndRange argument to CachedUint384.GetElements lacks an allowedRange parameter")
			testutils.Assert(key.allowedRange.Sign() > 0, "CachedUint384.GetElements called with allowedRange <=0")
			testutils.Assert(key.allowedRange.Cmp(twoTo384_Int) <= 0, "CachedUint384.GetElements called with too large allowedRange")
			return rand.New(rand.NewSource(key.seed))
		},
		func(rng *rand.Rand, key SeedAndRange) Uint384 {
			var rnd_Int *big.Int = new(big.Int).Rand(rng, key.allowedRange)
			return BigIntToUint384(rnd_Int)
		},
		nil,
	)
	cache.PrepopulateCache(pc_uint384_f, []Uint384{zero_uint384, one_uint384, minusOne_uint384, montgomeryOne_uint384})
	return cache
}()

// boundaryValues are the edge cases that every operation is tested on in addition to random inputs.
var boundaryValues = []Uint384{
	{},
	{1},
	{2},
	{baseFieldSize_64_0 - 1, baseFieldSize_64_1, baseFieldSize_64_2, baseFieldSize_64_3, baseFieldSize_64_4, baseFieldSize_64_5},
	{baseFieldSize_64_0 - 2, baseFieldSize_64_1, baseFieldSize_64_2, baseFieldSize_64_3, baseFieldSize_64_4, baseFieldSize_64_5},
	{rModN_64_0, rModN_64_1, rModN_64_2, rModN_64_3, rModN_64_4, rModN_64_5},
	{0xFFFFFFFF_FFFFFFFF, 0xFFFFFFFF_FFFFFFFF, 0xFFFFFFFF_FFFFFFFF, 0xFFFFFFFF_FFFFFFFF, 0xFFFFFFFF_FFFFFFFF, 0},
	{0, 0, 0, 0, 0, baseFieldSize_64_5 - 1},
}

// bigMontgomeryMul is the arbitrary-precision reference for Montgomery multiplication: x*y/2^384 mod BaseFieldSize
func bigMontgomeryMul(x, y *Uint384) Uint384 {
	r := new(big.Int).Mul(x.ToBigInt(), y.ToBigInt())
	r.Mul(r, rInverse_Int)
	r.Mod(r, baseFieldSize_Int)
	return BigIntToUint384(r)
}

var rInverse_Int = new(big.Int).ModInverse(twoTo384_Int, baseFieldSize_Int)
