package fieldElements

import "math/bits"

// mulMontgomery_Intrinsic computes z = x*y/R mod BaseFieldSize with the CIOS method, written directly against
// the math/bits intrinsics (MULX / ADC / SBB on amd64, UMULH / ADCS / SBCS on arm64).
//
// It mirrors the structure of the assembly tier: each 64x64 product is split into a low half that is added
// to t[j] and a high half that is added to t[j+1], with two independent carry chains cf and of
// (corresponding to ADCX and ADOX). This avoids the serial dependency of a*b + t + carry in a single chain.
func mulMontgomery_Intrinsic(z, x, y *Uint384) {
	var t0, t1, t2, t3, t4, t5, t6 uint64
	var hi, lo, cf, of uint64

	for _, yi := range y {
		// t += x * yi
		hi, lo = bits.Mul64(x[0], yi)
		t0, of = bits.Add64(t0, lo, 0)
		t1, cf = bits.Add64(t1, hi, 0)
		hi, lo = bits.Mul64(x[1], yi)
		t1, of = bits.Add64(t1, lo, of)
		t2, cf = bits.Add64(t2, hi, cf)
		hi, lo = bits.Mul64(x[2], yi)
		t2, of = bits.Add64(t2, lo, of)
		t3, cf = bits.Add64(t3, hi, cf)
		hi, lo = bits.Mul64(x[3], yi)
		t3, of = bits.Add64(t3, lo, of)
		t4, cf = bits.Add64(t4, hi, cf)
		hi, lo = bits.Mul64(x[4], yi)
		t4, of = bits.Add64(t4, lo, of)
		t5, cf = bits.Add64(t5, hi, cf)
		hi, lo = bits.Mul64(x[5], yi)
		t5, of = bits.Add64(t5, lo, of)
		t6, _ = bits.Add64(t6, hi, cf)
		t6 += of

		// t += m * BaseFieldSize
		m := t0 * negativeInverseModulus
		hi, lo = bits.Mul64(m, baseFieldSize_64_0)
		t0, of = bits.Add64(t0, lo, 0) // t0 == 0 now
		t1, cf = bits.Add64(t1, hi, 0)
		hi, lo = bits.Mul64(m, baseFieldSize_64_1)
		t1, of = bits.Add64(t1, lo, of)
		t2, cf = bits.Add64(t2, hi, cf)
		hi, lo = bits.Mul64(m, baseFieldSize_64_2)
		t2, of = bits.Add64(t2, lo, of)
		t3, cf = bits.Add64(t3, hi, cf)
		hi, lo = bits.Mul64(m, baseFieldSize_64_3)
		t3, of = bits.Add64(t3, lo, of)
		t4, cf = bits.Add64(t4, hi, cf)
		hi, lo = bits.Mul64(m, baseFieldSize_64_4)
		t4, of = bits.Add64(t4, lo, of)
		t5, cf = bits.Add64(t5, hi, cf)
		hi, lo = bits.Mul64(m, baseFieldSize_64_5)
		t5, of = bits.Add64(t5, lo, of)
		t6, _ = bits.Add64(t6, hi, cf)
		t6 += of

		// t /= 2^64
		t0, t1, t2, t3, t4, t5, t6 = t1, t2, t3, t4, t5, t6, 0
	}

	reduceOnce384(z, &Uint384{t0, t1, t2, t3, t4, t5})
}
