package testutils

import (
	"math/rand"
	"slices"
	"sync"
	"testing"
)

var testPrecomputedCache = MakePrecomputedCache[int64, uint64](
	DefaultCreateRandFromSeed,
	func(rng *rand.Rand, key int64) uint64 {
		return rng.Uint64()
	},
	nil,
)

func TestRetrievePrecomputedData(t *testing.T) {
	const key1 = 10
	const key2 = 11
	data1 := testPrecomputedCache.GetElements(key1, 0)
	FatalUnless(t, data1 != nil, "nil returned")
	FatalUnless(t, len(data1) == 0, "invalid length")
	data21 := testPrecomputedCache.GetElements(key2, 100)
	data22 := testPrecomputedCache.GetElements(key2, 100)
	FatalUnless(t, len(data21) == 100 && len(data22) == 100, "invalid length")
	FatalUnless(t, &data21[0] != &data22[0], "aliasing")
	FatalUnless(t, slices.Equal(data21, data22), "SlicesUnequal")
	data23 := testPrecomputedCache.GetElements(key2, 50)
	data24 := testPrecomputedCache.GetElements(key2, 200)
	FatalUnless(t, len(data23) == 50 && len(data24) == 200, "invalid length")
	FatalUnless(t, slices.Equal(data23, data24[0:50]), "No prefix")

	FatalUnless(t, CheckPanic(func() { testPrecomputedCache.PrepopulateCache(key2, []uint64{}) }), "did not panic")
	testPrecomputedCache.PrepopulateCache(key1, []uint64{1, 2, 3})
	data3 := testPrecomputedCache.GetElements(key1, 4)
	FatalUnless(t, slices.Equal(data3[0:3], []uint64{1, 2, 3}), "Did not get back prepopulated data")
}

func TestPrecomputedCacheDeterministic(t *testing.T) {
	other := MakePrecomputedCache[int64, uint64](DefaultCreateRandFromSeed, func(rng *rand.Rand, _ int64) uint64 { return rng.Uint64() }, nil)
	FatalUnless(t, slices.Equal(other.GetElements(5, 20), testPrecomputedCache.GetElements(5, 20)), "same seed gave different elements")
}

func TestPrecomputedCacheConcurrent(t *testing.T) {
	const key = 12
	expected := MakePrecomputedCache[int64, uint64](DefaultCreateRandFromSeed, func(rng *rand.Rand, _ int64) uint64 { return rng.Uint64() }, nil).GetElements(key, 300)
	var wg sync.WaitGroup
	for i := 1; i <= 6; i++ {
		wg.Add(1)
		go func(amount int) {
			defer wg.Done()
			got := testPrecomputedCache.GetElements(key, amount)
			if !slices.Equal(got, expected[:amount]) {
				t.Errorf("concurrent retrieval of %v elements gave wrong data", amount)
			}
		}(50 * i)
	}
	wg.Wait()
}

func TestNonExtensibleCache(t *testing.T) {
	fixed := MakePrecomputedCache[string, int](nil, nil, nil)
	fixed.PrepopulateCache("a", []int{7, 8})
	FatalUnless(t, slices.Equal(fixed.GetElements("a", 2), []int{7, 8}), "prepopulated data lost")
	FatalUnless(t, CheckPanic(func() { fixed.GetElements("a", 3) }), "extending without creationFun did not panic")
	FatalUnless(t, CheckPanicValue(func() {}) == nil, "CheckPanicValue reports spurious panic")
}
