//go:build !callcounters

// This file contains (dummy) implementations of the CallCounters functions that can be used to count how often certain functions are called.
// The idea is to avoid having any runtime impact.

package fieldElements

import (
	"testing"

	"github.com/GottfriedHerold/mont381/internal/callcounters"
)

// CallCountersActive is a constant whose value depends on build flags;
// it is true if CallCounters are active, which means we profile the number of calls to certain functions.
const CallCountersActive = false

// IncrementCallCounter increments the given call counter if callcounters are active (via build tags)
// It is a NoOp if callcounters are inactive
func IncrementCallCounter(id callcounters.Id) {
}

// BenchmarkWithCallCounters includes callcounters in the benchmark report as custom fields.
// If callcounters are inactive, is a no-op.
func BenchmarkWithCallCounters(b *testing.B) {
}
