// common is the subpackage of the mont381 module that collects the constants describing the BLS12-381 base field.
// These are shared by the fieldElements kernel and by the command-line tooling.
//
// NOTE: fieldElements redefines most of these under shorter names; this package exists so that
// tooling does not need to import the kernel to learn about the field.
package common

import (
	"math/big"

	"github.com/GottfriedHerold/mont381/internal/utils"
)

// BaseFieldSize is the prime modulus of the base field of the BLS12-381 curve as untyped int.
// Due to overflowing all standard types, this is only useful in constant expressions.
// In most case, you want to use [BaseFieldSize_Int] of type [*big.Int] instead
const (
	BaseFieldSize         = 0x1a0111ea_397fe69a_4b1ba7b6_434bacd7_64774b84_f38512bf_6730d2a0_f6b0f624_1eabfffe_b153ffff_b9feffff_ffffaaab
	BaseFieldSize_untyped = BaseFieldSize // the _untyped is just for emphasis and helps with internal code documentation.
	BaseFieldSize_string  = "0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab"
)

// BaseFieldSize_Int is the prime modulus of the BLS12-381 base field as a [*big.Int].
var BaseFieldSize_Int = utils.InitIntFromString(BaseFieldSize_string)

// BaseFieldBitLength is the bitlength of [BaseFieldSize]
const BaseFieldBitLength = 381

// BaseFieldByteLength is the number of bytes needed to store a field element.
const BaseFieldByteLength = (BaseFieldBitLength + 7) / 8 // == 48

// Limbs is the number of 64-bit words used to store a field element.
const Limbs = 6

// MontgomeryBitLength is log_2 of the Montgomery multiplier R = 2^384.
const MontgomeryBitLength = 64 * Limbs

// TwoTo384_Int is 2^384 == R as a [*big.Int].
var TwoTo384_Int = new(big.Int).Lsh(big.NewInt(1), MontgomeryBitLength)

// MontgomeryNPrime is -BaseFieldSize^{-1} mod 2^64, the per-word reduction factor of CIOS Montgomery multiplication.
const MontgomeryNPrime = 0x89f3fffc_fffcfffd

// Sanity checks at startup. The arithmetic in the kernel deeply relies on these.
func init() {
	if BaseFieldSize_Int.BitLen() != BaseFieldBitLength {
		panic("mont381 / common: BaseFieldSize has unexpected bit length")
	}
	if BaseFieldSize_Int.Cmp(utils.InitIntFromString("0x1a0111ea_397fe69a_4b1ba7b6_434bacd7_64774b84_f38512bf_6730d2a0_f6b0f624_1eabfffe_b153ffff_b9feffff_ffffaaab")) != 0 {
		panic("mont381 / common: BaseFieldSize_string and BaseFieldSize differ")
	}
	// N * N' == -1 mod 2^64
	var nLow uint64 = BaseFieldSize & 0xFFFFFFFF_FFFFFFFF
	var nPrime uint64 = MontgomeryNPrime
	if nLow*nPrime != 0xFFFFFFFF_FFFFFFFF {
		panic("mont381 / common: MontgomeryNPrime is not -1/BaseFieldSize mod 2^64")
	}
}
