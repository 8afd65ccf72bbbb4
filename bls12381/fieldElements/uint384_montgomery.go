package fieldElements

// This file contains the reference implementation of Montgomery multiplication.
//
// Montgomery multiplication computes x*y*R^{-1} mod BaseFieldSize with R == 2^384.
// If x and y are the Montgomery representations x == a*R, y == b*R of a and b, the result is (a*b)*R,
// i.e. the Montgomery representation of a*b.
//
// We use the CIOS (coarsely integrated operand scanning) method: For each word y[i] of y, we
//   - add x*y[i] to a running accumulator t
//   - add m*BaseFieldSize, where m = t[0] * N' mod 2^64 is chosen such that the lowest word of t becomes zero
//   - shift t down by one word.
// After six rounds, t == x*y*R^{-1} mod BaseFieldSize and t < 2*BaseFieldSize, so a single conditional subtraction suffices.
// The accumulator never exceeds 7 words; this relies on BaseFieldSize < 2^383.
//
// There are several implementations (called tiers, see montgomery_tiers.go) of the same algorithm.
// They all produce bit-identical results for inputs in [0, BaseFieldSize). For other inputs, the result is unspecified.
// None of them is guaranteed to be constant-time.

// mulMontgomery_Reference is the reference tier: the textbook loop, with an explicit 12-word accumulator
// that is never shifted (round i works on the window t[i:i+7]) and double-width products via uint128.
func mulMontgomery_Reference(z, x, y *Uint384) {
	var t [12]uint64
	for i := 0; i < 6; i++ {
		// t[i:i+7] += x * y[i]. Note that t[i+6] is still zero at this point.
		var carry uint64
		for j := 0; j < 6; j++ {
			acc := mulAddAdd(x[j], y[i], t[i+j], carry)
			t[i+j], carry = acc.lo(), acc.hi()
		}
		t[i+6] += carry

		// t[i:i+7] += m * BaseFieldSize, making t[i] zero.
		m := t[i] * negativeInverseModulus
		carry = 0
		for j := 0; j < 6; j++ {
			acc := mulAddAdd(m, baseFieldSize_uint384[j], t[i+j], carry)
			t[i+j], carry = acc.lo(), acc.hi()
		}
		t[i+6] += carry // cannot overflow, as t[i+1:i+7] < 2*BaseFieldSize after this round
	}
	reduceOnce384(z, (*Uint384)(t[6:12]))
}
