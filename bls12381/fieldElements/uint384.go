package fieldElements

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/GottfriedHerold/mont381/bls12381/common"
	"github.com/GottfriedHerold/mont381/internal/utils"
)

// Uint384 is a 384-bit unsigned integer stored as six 64-bit words, least significant word first.
//
// The arithmetic in this package works with Uint384 both for plain integers and for residues in Montgomery form;
// which of the two a given value is depends on context. Values that are meant as field elements are < BaseFieldSize.
type Uint384 [6]uint64 // low-endian

// ToBigInt converts z to a [*big.Int], without any Montgomery conversions.
func (z *Uint384) ToBigInt() *big.Int {
	return utils.UIntarrayToInt((*[6]uint64)(z))
}

// BigIntToUint384 converts x to Uint384 without any Montgomery conversions. It panics unless 0 <= x < 2^384.
func BigIntToUint384(x *big.Int) Uint384 {
	return utils.BigIntToUIntArray(x)
}

// SetBigInt sets z to x, without any Montgomery conversions. It panics unless 0 <= x < 2^384.
func (z *Uint384) SetBigInt(x *big.Int) {
	*z = utils.BigIntToUIntArray(x)
}

// IsZero checks whether z == 0.
func (z *Uint384) IsZero() bool {
	return z[0]|z[1]|z[2]|z[3]|z[4]|z[5] == 0
}

// IsReduced checks whether z < BaseFieldSize, i.e. whether z is a valid input to the modular arithmetic.
func (z *Uint384) IsReduced() bool {
	var trial Uint384
	return subChain384(&trial, z, &baseFieldSize_uint384) == 1
}

// String returns a big-endian hex representation of z with 0x prefix.
func (z Uint384) String() string {
	return fmt.Sprintf("0x%016x%016x%016x%016x%016x%016x", z[5], z[4], z[3], z[2], z[1], z[0])
}

// Bytes returns the 48-byte encoding of z in the given byte order.
func (z *Uint384) Bytes(endianness common.FieldElementEndianness) (ret [BaseFieldByteLength]byte) {
	endianness.PutUint384(ret[:], *z)
	return
}

// SetBytes sets z from the first 48 bytes of in, read in the given byte order. It panics if in is too short.
func (z *Uint384) SetBytes(in []byte, endianness common.FieldElementEndianness) {
	*z = endianness.Uint384(in)
}

// InitUint384FromString initializes a Uint384 from a string literal as understood by [big.Int.SetString] with base 0.
// It panics on failure; this is meant for package-level initialization and test vectors.
func InitUint384FromString(input string) Uint384 {
	ret, err := ParseUint384(input)
	if err != nil {
		panic(err)
	}
	return ret
}

// ParseUint384 parses a string literal (decimal or 0x/0o/0b-prefixed, "_"-separators allowed) into a Uint384.
// The value must be in [0, 2^384). No Montgomery conversion is performed.
func ParseUint384(input string) (Uint384, error) {
	x, ok := new(big.Int).SetString(input, 0)
	if !ok {
		return Uint384{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, input)
	}
	if x.Sign() < 0 || x.BitLen() > 384 {
		return Uint384{}, fmt.Errorf("%w: %v is not in [0, 2^384)", ErrOutOfRange, input)
	}
	return BigIntToUint384(x), nil
}

// ParseReduced is like [ParseUint384], but additionally requires the value to be < BaseFieldSize.
func ParseReduced(input string) (Uint384, error) {
	ret, err := ParseUint384(input)
	if err != nil {
		return ret, err
	}
	if !ret.IsReduced() {
		return Uint384{}, fmt.Errorf("%w: %v is not smaller than the modulus %v", ErrOutOfRange, input, BaseFieldSize_string)
	}
	return ret, nil
}

// The following helpers are the carry and borrow chains that all the portable code in this package is built from.
// Add, Sub and the final reduction step of the Go multiplication tiers use them rather than spelling out their own chains.

// addChain384 computes z = x + y mod 2^384 and returns the carry out (0 or 1).
func addChain384(z, x, y *Uint384) (carry uint64) {
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	z[4], carry = bits.Add64(x[4], y[4], carry)
	z[5], carry = bits.Add64(x[5], y[5], carry)
	return
}

// subChain384 computes z = x - y mod 2^384 and returns the borrow out (0 or 1).
func subChain384(z, x, y *Uint384) (borrow uint64) {
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], borrow = bits.Sub64(x[3], y[3], borrow)
	z[4], borrow = bits.Sub64(x[4], y[4], borrow)
	z[5], borrow = bits.Sub64(x[5], y[5], borrow)
	return
}

// maskSelect384 sets z to ifOnes if mask == 0xFFFFFFFF_FFFFFFFF and to ifZeros if mask == 0.
// Other values of mask mix bits. Aliasing between all arguments is allowed.
func maskSelect384(z *Uint384, mask uint64, ifOnes, ifZeros *Uint384) {
	z[0] = (ifOnes[0] & mask) | (ifZeros[0] &^ mask)
	z[1] = (ifOnes[1] & mask) | (ifZeros[1] &^ mask)
	z[2] = (ifOnes[2] & mask) | (ifZeros[2] &^ mask)
	z[3] = (ifOnes[3] & mask) | (ifZeros[3] &^ mask)
	z[4] = (ifOnes[4] & mask) | (ifZeros[4] &^ mask)
	z[5] = (ifOnes[5] & mask) | (ifZeros[5] &^ mask)
}

// reduceOnce384 sets z = x - BaseFieldSize if that does not underflow and z = x otherwise.
// For x in [0, 2*BaseFieldSize), the result is the reduced representative of x.
func reduceOnce384(z, x *Uint384) {
	var trial Uint384
	borrow := subChain384(&trial, x, &baseFieldSize_uint384)
	maskSelect384(z, -borrow, x, &trial)
}
