package fieldElements

import (
	"math/big"
	"testing"

	"github.com/GottfriedHerold/mont381/internal/testutils"
)

func TestAddModular(t *testing.T) {
	prepareTestFieldElements(t)
	const num = 300
	xs := append(CachedUint384.GetElements(pc_uint384_f, num), boundaryValues...)
	ys := append(CachedUint384.GetElements(pc_uint384_g, num), boundaryValues...)
	for _, x := range xs {
		for _, y := range ys {
			var z Uint384
			Add(&z, &x, &y)
			testutils.FatalUnless(t, z.IsReduced(), "Add result not reduced for %v + %v", x, y)
			expected := new(big.Int).Add(x.ToBigInt(), y.ToBigInt())
			expected.Mod(expected, baseFieldSize_Int)
			testutils.FatalUnless(t, z.ToBigInt().Cmp(expected) == 0, "Add wrong for %v + %v", x, y)
		}
	}
}

func TestSubModular(t *testing.T) {
	prepareTestFieldElements(t)
	const num = 300
	xs := append(CachedUint384.GetElements(pc_uint384_f, num), boundaryValues...)
	ys := append(CachedUint384.GetElements(pc_uint384_g, num), boundaryValues...)
	for _, x := range xs {
		for _, y := range ys {
			var z Uint384
			Sub(&z, &x, &y)
			testutils.FatalUnless(t, z.IsReduced(), "Sub result not reduced for %v - %v", x, y)
			expected := new(big.Int).Sub(x.ToBigInt(), y.ToBigInt())
			expected.Mod(expected, baseFieldSize_Int)
			testutils.FatalUnless(t, z.ToBigInt().Cmp(expected) == 0, "Sub wrong for %v - %v", x, y)
		}
	}
}

func TestAddSubBoundaries(t *testing.T) {
	prepareTestFieldElements(t)
	var z Uint384

	// (N-1) + 1 == 0
	Add(&z, &minusOne_uint384, &one_uint384)
	testutils.FatalUnless(t, z.IsZero(), "(N-1)+1 != 0")
	// (N-1) + (N-1) == N-2
	Add(&z, &minusOne_uint384, &minusOne_uint384)
	testutils.FatalUnless(t, z == Uint384{baseFieldSize_64_0 - 2, baseFieldSize_64_1, baseFieldSize_64_2, baseFieldSize_64_3, baseFieldSize_64_4, baseFieldSize_64_5}, "(N-1)+(N-1) != N-2")
	// 0 - 1 == N-1
	Sub(&z, &zero_uint384, &one_uint384)
	testutils.FatalUnless(t, z == minusOne_uint384, "0-1 != N-1")
	// 0 - (N-1) == 1
	Sub(&z, &zero_uint384, &minusOne_uint384)
	testutils.FatalUnless(t, z == one_uint384, "0-(N-1) != 1")
	// x - x == 0, 0 + 0 == 0
	for _, x := range boundaryValues {
		Sub(&z, &x, &x)
		testutils.FatalUnless(t, z.IsZero(), "x-x != 0")
	}
	Add(&z, &zero_uint384, &zero_uint384)
	testutils.FatalUnless(t, z.IsZero(), "0+0 != 0")
}

func TestAddSubInverse(t *testing.T) {
	prepareTestFieldElements(t)
	const num = 500
	xs := CachedUint384.GetElements(pc_uint384_f, num)
	ys := CachedUint384.GetElements(pc_uint384_g, num)
	for i := range xs {
		var sum, back, neg, viaNeg Uint384
		sum.Add(&xs[i], &ys[i])
		back.Sub(&sum, &ys[i])
		testutils.FatalUnless(t, back == xs[i], "(x+y)-y != x")
		neg.Neg(&ys[i])
		viaNeg.Add(&xs[i], &neg)
		back.Sub(&xs[i], &ys[i])
		testutils.FatalUnless(t, viaNeg == back, "x + (-y) != x - y")
		var doubled, added Uint384
		doubled.Double(&xs[i])
		added.Add(&xs[i], &xs[i])
		testutils.FatalUnless(t, doubled == added, "Double differs from Add")
	}
}

func TestAddSubAliasing(t *testing.T) {
	prepareTestFieldElements(t)
	xs := CachedUint384.GetElements(pc_uint384_f, 100)
	ys := CachedUint384.GetElements(pc_uint384_g, 100)
	for i := range xs {
		x, y := xs[i], ys[i]
		var expected Uint384
		for _, op := range []func(z, x, y *Uint384){Add, Sub} {
			op(&expected, &x, &y)
			a := x
			op(&a, &a, &y)
			testutils.FatalUnless(t, a == expected, "aliasing out and first argument")
			b := y
			op(&b, &x, &b)
			testutils.FatalUnless(t, b == expected, "aliasing out and second argument")
			c := x
			op(&expected, &x, &x)
			op(&c, &c, &c)
			testutils.FatalUnless(t, c == expected, "aliasing all arguments")
		}
	}
}

func TestAddSubKnownAnswer(t *testing.T) {
	prepareTestFieldElements(t)
	sum := Rotate(Add, vectorX, vectorY, RotationIterations)
	testutils.FatalUnless(t, sum == vectorExpectedSum, "addition rotation vector: got %v, expected %v", sum, vectorExpectedSum)
	diff := Rotate(Sub, vectorX, vectorY, RotationIterations)
	testutils.FatalUnless(t, diff == vectorExpectedDiff, "subtraction rotation vector: got %v, expected %v", diff, vectorExpectedDiff)
}
