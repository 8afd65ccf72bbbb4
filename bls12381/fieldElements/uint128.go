package fieldElements

import "math/bits"

// uint128 is a 128-bit unsigned integer. It stands in for the double-width integer type Go lacks.
// Only the reference multiplication uses it; the faster code paths work with (hi, lo) pairs directly.
type uint128 struct {
	high, low uint64
}

// mulAddAdd computes a*b + c + d, which always fits into 128 bits.
func mulAddAdd(a, b, c, d uint64) uint128 {
	return mulU64ToU128(a, b).addU64(c).addU64(d)
}

// mulU64ToU128 multiplies two uint64 values and returns a uint128
func mulU64ToU128(a, b uint64) uint128 {
	hi, lo := bits.Mul64(a, b)
	return uint128{high: hi, low: lo}
}

// addU64 adds a uint64 to u. Overflow beyond 128 bits is dropped; callers ensure it does not happen.
func (u uint128) addU64(a uint64) uint128 {
	newLo, carry := bits.Add64(u.low, a, 0)
	return uint128{high: u.high + carry, low: newLo}
}

// lo returns the lower 64 bits
func (u uint128) lo() uint64 {
	return u.low
}

// hi returns the upper 64 bits
func (u uint128) hi() uint64 {
	return u.high
}
