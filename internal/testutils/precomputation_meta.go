package testutils

import (
	"fmt"
	"math/rand"
	"sync"
)

// This file defines a PrecomputedCache used for testing and benchmarking.
//
// A precomputed cache is, for every key, a lazily extended pseudorandom list of elements.
// The key typically holds an rng seed and a range, so that every test asking for the first n elements
// under the same key gets the same (deterministic) inputs, and different tests can share the sampling work.
// Asking for m >= n elements afterwards returns a list that has the previous one as a prefix.
//
// The cache is safe for concurrent use; parallel subtests may share it.

// precomputedCachePage holds the list for a single key.
type precomputedCachePage[KeyType comparable, ElementType any] struct {
	mut      sync.Mutex
	rng      *rand.Rand // may be nil, e.g. for prepopulated pages that never need extending
	elements []ElementType
}

// PrecomputedCache stores, for each key of type KeyType, a lazily extended list of ElementType.
type PrecomputedCache[KeyType comparable, ElementType any] struct {
	mut                sync.Mutex
	pages              map[KeyType]*precomputedCachePage[KeyType, ElementType]
	createRandFromSeed func(KeyType) *rand.Rand
	creationFun        func(*rand.Rand, KeyType) ElementType // may be nil, then only prepopulated entries are available
	copyFun            func(ElementType) ElementType
}

// MakePrecomputedCache creates a ready-to-use [PrecomputedCache].
//
// Each argument may be nil:
//   - createRandFromSeed == nil means creationFun is called with a nil *rand.Rand
//   - creationFun == nil means only prepopulated elements can be retrieved
//   - copyFun == nil means elements are copied by plain assignment
func MakePrecomputedCache[KeyType comparable, ElementType any](createRandFromSeed func(KeyType) *rand.Rand, creationFun func(*rand.Rand, KeyType) ElementType, copyFun func(ElementType) ElementType) (ret *PrecomputedCache[KeyType, ElementType]) {
	ret = &PrecomputedCache[KeyType, ElementType]{
		pages:              make(map[KeyType]*precomputedCachePage[KeyType, ElementType]),
		createRandFromSeed: createRandFromSeed,
		creationFun:        creationFun,
		copyFun:            copyFun,
	}
	if ret.createRandFromSeed == nil {
		ret.createRandFromSeed = func(KeyType) *rand.Rand { return nil }
	}
	if ret.copyFun == nil {
		ret.copyFun = func(in ElementType) ElementType { return in }
	}
	return
}

// page returns the page for key, creating it if needed. The second return value tells whether it already existed.
func (pc *PrecomputedCache[KeyType, ElementType]) page(key KeyType) (*precomputedCachePage[KeyType, ElementType], bool) {
	pc.mut.Lock()
	defer pc.mut.Unlock()
	page, ok := pc.pages[key]
	if !ok {
		page = &precomputedCachePage[KeyType, ElementType]{rng: pc.createRandFromSeed(key)}
		pc.pages[key] = page
	}
	return page, ok
}

// PrepopulateCache sets the initial elements stored under key. Further elements are sampled as usual.
// It panics if the key was already used.
func (pc *PrecomputedCache[KeyType, ElementType]) PrepopulateCache(key KeyType, entries []ElementType) {
	page, existed := pc.page(key)
	if existed {
		panic(fmt.Errorf(ErrorPrefix+"trying to populate cache under key %v, which already exists", key))
	}
	page.mut.Lock()
	defer page.mut.Unlock()
	for _, entry := range entries {
		page.elements = append(page.elements, pc.copyFun(entry))
	}
}

// GetElements returns copies of the first amount elements stored under key, sampling more if needed.
func (pc *PrecomputedCache[KeyType, ElementType]) GetElements(key KeyType, amount int) []ElementType {
	ret := make([]ElementType, amount)
	if amount == 0 {
		return ret
	}
	page, _ := pc.page(key)
	page.mut.Lock()
	defer page.mut.Unlock()
	if len(page.elements) < amount && pc.creationFun == nil {
		panic(fmt.Errorf(ErrorPrefix+"cache under key %v holds too few elements and cannot be extended", key))
	}
	for len(page.elements) < amount {
		page.elements = append(page.elements, pc.creationFun(page.rng, key))
	}
	for i := range ret {
		ret[i] = pc.copyFun(page.elements[i])
	}
	return ret
}

// DefaultCreateRandFromSeed can be used as an argument to [MakePrecomputedCache] if the KeyType is int64.
func DefaultCreateRandFromSeed(key int64) *rand.Rand {
	return rand.New(rand.NewSource(key))
}
