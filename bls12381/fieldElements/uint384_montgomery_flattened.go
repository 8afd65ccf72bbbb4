package fieldElements

import "math/bits"

// mulMontgomery_Flattened is the same CIOS algorithm as [mulMontgomery_Reference] with the inner loops unrolled.
// The accumulator lives in named local variables t0,...,t6, so the compiler can keep it in registers, and
// the shift by one word after each round is merged into the reduction step.
//
// Each half-round first computes all six 64x64->128 products and then adds them in two independent carry chains:
// one for the high words (shifted up by one word) and one for the low words.
// Carries use the portable formula from addWithCarry instead of the bits.Add64 intrinsic.
func mulMontgomery_Flattened(z, x, y *Uint384) {
	const (
		n0 = baseFieldSize_64_0
		n1 = baseFieldSize_64_1
		n2 = baseFieldSize_64_2
		n3 = baseFieldSize_64_3
		n4 = baseFieldSize_64_4
		n5 = baseFieldSize_64_5
	)
	x0, x1, x2, x3, x4, x5 := x[0], x[1], x[2], x[3], x[4], x[5]
	var t0, t1, t2, t3, t4, t5, t6, c, m uint64
	var h0, h1, h2, h3, h4, h5, l0, l1, l2, l3, l4, l5 uint64

	// round 0: the accumulator is still zero, so the low words need no chain of their own.
	h0, l0 = bits.Mul64(x0, y[0])
	h1, l1 = bits.Mul64(x1, y[0])
	h2, l2 = bits.Mul64(x2, y[0])
	h3, l3 = bits.Mul64(x3, y[0])
	h4, l4 = bits.Mul64(x4, y[0])
	h5, l5 = bits.Mul64(x5, y[0])

	t0 = l0
	t1, c = addWithCarry(l1, h0, 0)
	t2, c = addWithCarry(l2, h1, c)
	t3, c = addWithCarry(l3, h2, c)
	t4, c = addWithCarry(l4, h3, c)
	t5, c = addWithCarry(l5, h4, c)
	t6 = h5 + c // h5 <= 2^64 - 2

	for i := 1; ; i++ {
		// reduction: t += m * BaseFieldSize, then shift down by one word. t < 2*BaseFieldSize afterwards.
		m = t0 * negativeInverseModulus
		h0, l0 = bits.Mul64(m, n0)
		h1, l1 = bits.Mul64(m, n1)
		h2, l2 = bits.Mul64(m, n2)
		h3, l3 = bits.Mul64(m, n3)
		h4, l4 = bits.Mul64(m, n4)
		h5, l5 = bits.Mul64(m, n5)

		t1, c = addWithCarry(t1, h0, 0)
		t2, c = addWithCarry(t2, h1, c)
		t3, c = addWithCarry(t3, h2, c)
		t4, c = addWithCarry(t4, h3, c)
		t5, c = addWithCarry(t5, h4, c)
		t6, _ = addWithCarry(t6, h5, c) // no carry, the full sum fits into 7 words

		_, c = addWithCarry(t0, l0, 0) // low word is zero by choice of m
		t0, c = addWithCarry(t1, l1, c)
		t1, c = addWithCarry(t2, l2, c)
		t2, c = addWithCarry(t3, l3, c)
		t3, c = addWithCarry(t4, l4, c)
		t4, c = addWithCarry(t5, l5, c)
		t5, _ = addWithCarry(t6, 0, c)

		if i == len(y) {
			break
		}

		// multiplication: t += x * y[i]
		yi := y[i]
		h0, l0 = bits.Mul64(x0, yi)
		h1, l1 = bits.Mul64(x1, yi)
		h2, l2 = bits.Mul64(x2, yi)
		h3, l3 = bits.Mul64(x3, yi)
		h4, l4 = bits.Mul64(x4, yi)
		h5, l5 = bits.Mul64(x5, yi)

		t1, c = addWithCarry(t1, h0, 0)
		t2, c = addWithCarry(t2, h1, c)
		t3, c = addWithCarry(t3, h2, c)
		t4, c = addWithCarry(t4, h3, c)
		t5, c = addWithCarry(t5, h4, c)
		t6 = h5 + c

		t0, c = addWithCarry(t0, l0, 0)
		t1, c = addWithCarry(t1, l1, c)
		t2, c = addWithCarry(t2, l2, c)
		t3, c = addWithCarry(t3, l3, c)
		t4, c = addWithCarry(t4, l4, c)
		t5, c = addWithCarry(t5, l5, c)
		t6 += c
	}

	reduceOnce384(z, &Uint384{t0, t1, t2, t3, t4, t5})
}

// addWithCarry is a full adder returning x + y + carry and the carry out. carry must be 0 or 1.
// The carry out is computed branch-free from the top bits, which is what bits.Add64 does when it is not replaced by an intrinsic.
func addWithCarry(x, y, carry uint64) (sum, carryOut uint64) {
	sum = x + y + carry
	carryOut = ((x & y) | ((x | y) &^ sum)) >> 63
	return
}
