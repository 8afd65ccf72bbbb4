package fieldElements

import "fmt"

// Known-answer vectors. Starting from (x, y), we iterate
//
//	result = op(x, y); y = x; x = result
//
// RotationIterations times and compare the final result against the expected value for op.
// All values are reduced; for the multiplication they are interpreted as Montgomery representations.

// RotationIterations is the number of iterations of the known-answer rotation.
const RotationIterations = 1000

var (
	vectorX = Uint384{0xc34110121829fa85, 0xc42f61586f13abac, 0x5a98f20b2164430a, 0xcdd6beb839ca6556, 0xdacae65ae941e8e8, 0x0f594a44cbdf0ae1}
	vectorY = Uint384{0xf4921aadbbf08d96, 0x9f5973902a56b682, 0x4b86761f89b618b2, 0xca440e25b9c201dd, 0xd3caeb49dc668726, 0x0416ce3c635e5e23}

	vectorExpectedSum  = Uint384{0xbd3d31dc0303fa06, 0x704875edd38742a3, 0x60549f5927a1c745, 0xe234ee37eb7d3cee, 0xa13832d81ab0d5c5, 0x10fdd2f03da8f7ca}
	vectorExpectedDiff = Uint384{0xeb500a9ba3c63dbc, 0xf9d612366c970ad5, 0x581e56b55f02cbcb, 0x60e49af2737caf46, 0x441baca536704b15, 0x0ebe95e1d0ff39dc}
	vectorExpectedProd = Uint384{0xb54cf29498954919, 0x8f2491ddb5cef751, 0xb155fe8acce5c7d3, 0x448683648418e8dd, 0xf3599187e803fc7e, 0x1118bd439ac24052}
)

// plain (non-Montgomery) product chain: starting from x = 2^128-1, y = 2^64-1, iterating x*y mod BaseFieldSize.
var (
	vectorBigStartX   = Uint384{0xFFFFFFFF_FFFFFFFF, 0xFFFFFFFF_FFFFFFFF}
	vectorBigStartY   = Uint384{0xFFFFFFFF_FFFFFFFF}
	vectorBigExpected = InitUint384FromString("0x169d18ab74c03e6199a9ec1869d2a2a0d53be1749c6acd5028310a17f06383087d69cb203aa01ae0a73a546f5db98555")
)

// KnownAnswer is one rotation vector. Op is "add", "sub", "mul" (Montgomery domain) or "plainmul" (normal domain, through ToMontgomery and ToNormal).
type KnownAnswer struct {
	Op       string
	X, Y     Uint384
	Expected Uint384
}

// KnownAnswers returns (copies of) all rotation vectors.
func KnownAnswers() []KnownAnswer {
	return []KnownAnswer{
		{Op: "add", X: vectorX, Y: vectorY, Expected: vectorExpectedSum},
		{Op: "sub", X: vectorX, Y: vectorY, Expected: vectorExpectedDiff},
		{Op: "mul", X: vectorX, Y: vectorY, Expected: vectorExpectedProd},
		{Op: "plainmul", X: vectorBigStartX, Y: vectorBigStartY, Expected: vectorBigExpected},
	}
}

// Rotate applies the rotation rule iterations times and returns the final x.
func Rotate(op func(z, x, y *Uint384), x, y Uint384, iterations int) Uint384 {
	var result Uint384
	for i := 0; i < iterations; i++ {
		op(&result, &x, &y)
		y = x
		x = result
	}
	return x
}

// RunKnownAnswer evaluates the rotation for ka, using mul for Montgomery multiplication, and returns the final value.
// For "plainmul", the conversions into and out of the Montgomery domain are done with mul as well.
func RunKnownAnswer(mul func(z, x, y *Uint384), ka KnownAnswer) (Uint384, error) {
	switch ka.Op {
	case "add":
		return Rotate(Add, ka.X, ka.Y, RotationIterations), nil
	case "sub":
		return Rotate(Sub, ka.X, ka.Y, RotationIterations), nil
	case "mul":
		return Rotate(mul, ka.X, ka.Y, RotationIterations), nil
	case "plainmul":
		var x, y, out Uint384
		mul(&x, &ka.X, &rSquared_uint384)
		mul(&y, &ka.Y, &rSquared_uint384)
		x = Rotate(mul, x, y, RotationIterations)
		mul(&out, &x, &one_uint384)
		return out, nil
	default:
		return Uint384{}, fmt.Errorf("%w: %q", ErrUnknownOperation, ka.Op)
	}
}

// RunKnownAnswer is [RunKnownAnswer] with this tier's multiplication. add and sub do not depend on the tier.
func (tier *MontgomeryTier) RunKnownAnswer(ka KnownAnswer) (Uint384, error) {
	return RunKnownAnswer(tier.MulMontgomery, ka)
}
