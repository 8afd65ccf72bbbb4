package fieldElements

import (
	"math/big"

	"github.com/GottfriedHerold/mont381/bls12381/common"
)

// This file contains all important constants used in the kernel.
// This includes exported constants and internal pre-computed constants.
//
// NOTES:
//   - We often define multiple versions of a given constant that differ in type.
//     Our convention therefore is to suffix the constant with a tag for the type:
//   - _Int for big.Int
//   - _untyped for untyped constants
//   - _string for a string representation that [*big.Int]'s SetString method understands
//   - _64 for low-endian uint64 arrays
//   - Since Go lacks const arrays, we define 384-bit constants both as untyped constants and separately as constants for every individual word.
//     The convention is that these are suffixed _64_0, _64_1, ... for the (low-endian) 0th, 1st etc. uint64-word.

// BaseFieldSize_untyped is the prime modulus N of the BLS12-381 base field as untyped int.
const (
	BaseFieldSize_untyped = common.BaseFieldSize_untyped // == 0x1a0111ea_397fe69a_4b1ba7b6_434bacd7_64774b84_f38512bf_6730d2a0_f6b0f624_1eabfffe_b153ffff_b9feffff_ffffaaab
	BaseFieldSize_string  = common.BaseFieldSize_string
)

// BaseFieldSize_Int is the prime modulus N as a [*big.Int]
var BaseFieldSize_Int *big.Int = common.BaseFieldSize_Int

// baseFieldSize_Int is an internal unexported deep-copy of BaseFieldSize_Int.
// Internal code (i.e. tests) uses this one, so accidental modifications of the exported variable do not propagate.
var baseFieldSize_Int *big.Int = new(big.Int).Set(BaseFieldSize_Int)

const (
	BaseFieldBitLength  = common.BaseFieldBitLength  // == 381
	BaseFieldByteLength = common.BaseFieldByteLength // == 48
)

// twoTo384_Int is the Montgomery multiplier R == 2^384 as a [*big.Int]
var twoTo384_Int *big.Int = new(big.Int).Set(common.TwoTo384_Int)

// baseFieldSize_64_i denotes the i'th 64-bit word of BaseFieldSize
const (
	baseFieldSize_64_0 = (BaseFieldSize_untyped >> (iota * 64)) & 0xFFFFFFFF_FFFFFFFF
	baseFieldSize_64_1
	baseFieldSize_64_2
	baseFieldSize_64_3
	baseFieldSize_64_4
	baseFieldSize_64_5
)

// correction_untyped is 2^384 - BaseFieldSize.
// Subtracting this modulo 2^384 is the same as adding BaseFieldSize modulo 2^384.
const correction_untyped = (1 << 384) - BaseFieldSize_untyped

const (
	correction_64_0 = (correction_untyped >> (iota * 64)) & 0xFFFFFFFF_FFFFFFFF
	correction_64_1
	correction_64_2
	correction_64_3
	correction_64_4
	correction_64_5
)

// rModN_untyped is 2^384 mod BaseFieldSize. This is the Montgomery representation of 1.
const rModN_untyped = (1 << 384) % BaseFieldSize_untyped

const (
	rModN_64_0 = (rModN_untyped >> (iota * 64)) & 0xFFFFFFFF_FFFFFFFF
	rModN_64_1
	rModN_64_2
	rModN_64_3
	rModN_64_4
	rModN_64_5
)

// rSquared_untyped is 2^768 mod BaseFieldSize. This is used for converting into Montgomery form.
// Written out, because untyped constant arithmetic is limited to 512 bits. The init canary below checks it.
const rSquared_untyped = 0x11988fe5_92cae3aa_9a793e85_b519952d_67eb88a9_939d83c0_8de5476c_4c95b6d5_0a76e6a6_09d104f1_f4df1f34_1c341746

const (
	rSquared_64_0 = (rSquared_untyped >> (iota * 64)) & 0xFFFFFFFF_FFFFFFFF
	rSquared_64_1
	rSquared_64_2
	rSquared_64_3
	rSquared_64_4
	rSquared_64_5
)

// negativeInverseModulus is -BaseFieldSize^{-1} mod 2^64, usually called N' in the literature.
const negativeInverseModulus = common.MontgomeryNPrime // == 0x89f3fffc_fffcfffd

// Internal constants of type Uint384. Internal code only ever uses these.
var (
	baseFieldSize_uint384 = Uint384{baseFieldSize_64_0, baseFieldSize_64_1, baseFieldSize_64_2, baseFieldSize_64_3, baseFieldSize_64_4, baseFieldSize_64_5}
	correction_uint384    = Uint384{correction_64_0, correction_64_1, correction_64_2, correction_64_3, correction_64_4, correction_64_5}
	rSquared_uint384      = Uint384{rSquared_64_0, rSquared_64_1, rSquared_64_2, rSquared_64_3, rSquared_64_4, rSquared_64_5}
	montgomeryOne_uint384 = Uint384{rModN_64_0, rModN_64_1, rModN_64_2, rModN_64_3, rModN_64_4, rModN_64_5}
	one_uint384           = Uint384{1, 0, 0, 0, 0, 0}
	zero_uint384          = Uint384{}
	minusOne_uint384      = Uint384{baseFieldSize_64_0 - 1, baseFieldSize_64_1, baseFieldSize_64_2, baseFieldSize_64_3, baseFieldSize_64_4, baseFieldSize_64_5}
)

// NOTE: We intentionally expose *copies* of unexported variables here to prevent users from modifying the constants used by the arithmetic.
// Accidental modifications could otherwise lead to errors that are very hard to debug.

var (
	// BaseFieldSize_64 is the modulus N as low-endian words.
	BaseFieldSize_64 Uint384 = baseFieldSize_uint384
	// Correction_64 is 2^384 - N as low-endian words.
	Correction_64 Uint384 = correction_uint384
	// RSquared_64 is 2^768 mod N, i.e. R^2 mod N.
	RSquared_64 Uint384 = rSquared_uint384
	// MontgomeryOne_64 is 2^384 mod N, i.e. the Montgomery form of 1.
	MontgomeryOne_64 Uint384 = montgomeryOne_uint384
)

// NegativeInverseModulus is -N^{-1} mod 2^64
const NegativeInverseModulus uint64 = negativeInverseModulus

// canary: the untyped constant arithmetic above is easy to get subtly wrong when editing.
func init() {
	if new(big.Int).Add(baseFieldSize_uint384.ToBigInt(), correction_uint384.ToBigInt()).Cmp(twoTo384_Int) != 0 {
		panic(ErrorPrefix + "modulus and correction constant do not add up to 2^384")
	}
	var nLow uint64 = baseFieldSize_64_0
	if nLow*negativeInverseModulus != 0xFFFFFFFF_FFFFFFFF {
		panic(ErrorPrefix + "N' is not -1/N mod 2^64")
	}
	rSquared_Int := new(big.Int).Mul(twoTo384_Int, twoTo384_Int)
	rSquared_Int.Mod(rSquared_Int, baseFieldSize_Int)
	if rSquared_uint384.ToBigInt().Cmp(rSquared_Int) != 0 {
		panic(ErrorPrefix + "rSquared_untyped is not 2^768 mod N")
	}
	if baseFieldSize_uint384.ToBigInt().Cmp(baseFieldSize_Int) != 0 {
		panic(ErrorPrefix + "word constants of modulus do not match the big.Int constant")
	}
}
