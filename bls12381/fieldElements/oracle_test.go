package fieldElements

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"pgregory.net/rapid"

	"github.com/GottfriedHerold/mont381/internal/testutils"
)

// gnark-crypto's fp.Element stores BLS12-381 base field elements as six little-endian limbs in Montgomery form with R = 2^384,
// which is exactly our representation. This lets us use it as an independent oracle on raw limbs.

func TestAgainstGnark(t *testing.T) {
	prepareTestFieldElements(t)
	xs := append(CachedUint384.GetElements(pc_uint384_f, 200), boundaryValues...)
	ys := append(CachedUint384.GetElements(pc_uint384_g, 200), boundaryValues...)
	for i, x := range xs {
		y := ys[(i*7)%len(ys)]
		gx, gy := fp.Element(x), fp.Element(y)

		var gSum, gDiff, gProd fp.Element
		gSum.Add(&gx, &gy)
		gDiff.Sub(&gx, &gy)
		gProd.Mul(&gx, &gy)

		var sum, diff Uint384
		Add(&sum, &x, &y)
		Sub(&diff, &x, &y)
		testutils.FatalUnless(t, sum == Uint384(gSum), "Add disagrees with gnark for %v + %v", x, y)
		testutils.FatalUnless(t, diff == Uint384(gDiff), "Sub disagrees with gnark for %v - %v", x, y)
		for _, tier := range AllTiers() {
			var prod Uint384
			tier.MulMontgomery(&prod, &x, &y)
			testutils.FatalUnless(t, prod == Uint384(gProd), "tier %v disagrees with gnark for %v * %v", tier, x, y)
		}
	}
}

func TestConversionAgainstGnark(t *testing.T) {
	prepareTestFieldElements(t)
	for _, x := range CachedUint384.GetElements(pc_uint384_f, 200) {
		var g fp.Element
		g.SetBigInt(x.ToBigInt())
		var mont Uint384
		ToMontgomery(&mont, (*[6]uint64)(&x))
		testutils.FatalUnless(t, mont == Uint384(g), "ToMontgomery disagrees with gnark's SetBigInt for %v", x)

		var plain [6]uint64
		ToNormal(&plain, &mont)
		testutils.FatalUnless(t, plain == g.Bits(), "ToNormal disagrees with gnark's Bits for %v", x)
	}
	testutils.FatalUnless(t, fp.Modulus().Cmp(baseFieldSize_Int) == 0, "gnark uses a different modulus")
}

// reducedUint384 generates Uint384 values in [0, BaseFieldSize), biased towards the boundaries.
func reducedUint384() *rapid.Generator[Uint384] {
	return rapid.Custom(func(t *rapid.T) Uint384 {
		if rapid.IntRange(0, 9).Draw(t, "boundary") == 0 {
			return rapid.SampledFrom(boundaryValues).Draw(t, "edge")
		}
		limbs := rapid.SliceOfN(rapid.Uint64(), 6, 6).Draw(t, "limbs")
		var raw Uint384
		copy(raw[:], limbs)
		reduced := new(big.Int).Mod(raw.ToBigInt(), baseFieldSize_Int)
		return BigIntToUint384(reduced)
	})
}

func TestPropertyClosure(t *testing.T) {
	prepareTestFieldElements(t)
	rapid.Check(t, func(t *rapid.T) {
		x := reducedUint384().Draw(t, "x")
		y := reducedUint384().Draw(t, "y")
		var sum, diff, prod Uint384
		Add(&sum, &x, &y)
		Sub(&diff, &x, &y)
		MulMontgomery(&prod, &x, &y)
		if !sum.IsReduced() || !diff.IsReduced() || !prod.IsReduced() {
			t.Fatalf("unreduced output for x=%v y=%v", x, y)
		}
	})
}

func TestPropertyTierEquivalence(t *testing.T) {
	prepareTestFieldElements(t)
	tiers := AllTiers()
	rapid.Check(t, func(t *rapid.T) {
		x := reducedUint384().Draw(t, "x")
		y := reducedUint384().Draw(t, "y")
		var expected Uint384
		tiers[0].MulMontgomery(&expected, &x, &y)
		for _, tier := range tiers[1:] {
			var z Uint384
			tier.MulMontgomery(&z, &x, &y)
			if z != expected {
				t.Fatalf("tier %v gives %v, reference tier gives %v", tier, z, expected)
			}
		}
	})
}

func TestPropertyRoundtrip(t *testing.T) {
	prepareTestFieldElements(t)
	rapid.Check(t, func(t *rapid.T) {
		x := reducedUint384().Draw(t, "x")
		tier := rapid.SampledFrom(AllTiers()).Draw(t, "tier")
		var mont Uint384
		var back [6]uint64
		tier.ToMontgomery(&mont, (*[6]uint64)(&x))
		tier.ToNormal(&back, &mont)
		if Uint384(back) != x {
			t.Fatalf("tier %v: roundtrip of %v gave %v", tier, x, Uint384(back))
		}
	})
}

func TestPropertyFieldLaws(t *testing.T) {
	prepareTestFieldElements(t)
	rapid.Check(t, func(t *rapid.T) {
		x := reducedUint384().Draw(t, "x")
		y := reducedUint384().Draw(t, "y")
		w := reducedUint384().Draw(t, "w")

		// (x + y) * w == x*w + y*w
		var lhs, xw, yw, rhs, sum Uint384
		sum.Add(&x, &y)
		lhs.MulMontgomery(&sum, &w)
		xw.MulMontgomery(&x, &w)
		yw.MulMontgomery(&y, &w)
		rhs.Add(&xw, &yw)
		if lhs != rhs {
			t.Fatalf("distributivity fails")
		}

		// x * y == y * x
		var xy, yx Uint384
		xy.MulMontgomery(&x, &y)
		yx.MulMontgomery(&y, &x)
		if xy != yx {
			t.Fatalf("commutativity fails")
		}
	})
}
